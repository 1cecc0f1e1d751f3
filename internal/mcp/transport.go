package mcp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
)

// maxMessageSize bounds a single incoming line.
const maxMessageSize = 10 * 1024 * 1024

// ErrTransportClosed is returned by ReadMessage once the input is exhausted.
var ErrTransportClosed = errors.New("transport closed")

// Transport reads and writes newline-delimited JSON messages.
// Writes are safe for concurrent use; reads are not.
type Transport struct {
	reader *bufio.Reader
	mu     sync.Mutex
	writer io.Writer
}

// NewTransport creates a transport over r and w.
func NewTransport(r io.Reader, w io.Writer) *Transport {
	return &Transport{
		reader: bufio.NewReaderSize(r, 64*1024),
		writer: w,
	}
}

// ReadMessage returns the next non-blank line, without its line terminator.
func (t *Transport) ReadMessage() ([]byte, error) {
	for {
		line, err := t.readLine()
		if err != nil {
			return nil, err
		}
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			return line, nil
		}
	}
}

func (t *Transport) readLine() ([]byte, error) {
	var buf []byte
	for {
		chunk, isPrefix, err := t.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(buf) > 0 {
					return buf, nil
				}
				return nil, ErrTransportClosed
			}
			return nil, fmt.Errorf("read message: %w", err)
		}
		buf = append(buf, chunk...)
		if len(buf) > maxMessageSize {
			return nil, fmt.Errorf("read message: line exceeds %d bytes", maxMessageSize)
		}
		if !isPrefix {
			return buf, nil
		}
	}
}

// WriteMessage encodes msg as one line.
func (t *Transport) WriteMessage(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	data = append(data, '\n')

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.writer.Write(data); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}
