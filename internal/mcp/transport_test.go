package mcp

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransportReadMessage(t *testing.T) {
	tr := NewTransport(strings.NewReader("\n  {\"a\":1}  \r\n\n{\"b\":2}"), &bytes.Buffer{})

	msg, err := tr.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, `{"a":1}`, string(msg))

	msg, err = tr.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, `{"b":2}`, string(msg))

	_, err = tr.ReadMessage()
	require.ErrorIs(t, err, ErrTransportClosed)
}

func TestTransportLongLine(t *testing.T) {
	long := `{"text":"` + strings.Repeat("x", 200*1024) + `"}`
	tr := NewTransport(strings.NewReader(long+"\n"), &bytes.Buffer{})

	msg, err := tr.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, long, string(msg))
}

func TestTransportConcurrentWrites(t *testing.T) {
	var out bytes.Buffer
	tr := NewTransport(strings.NewReader(""), &out)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			require.NoError(t, tr.WriteMessage(map[string]int{"n": i}))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 50)
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, `{"n":`), line)
	}
}
