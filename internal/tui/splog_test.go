package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplogConsole(t *testing.T) {
	var buf bytes.Buffer
	splog, err := NewSplogWithConfig(&buf, "")
	require.NoError(t, err)

	splog.Info("hello %s", "world")
	splog.Warn("careful")
	splog.Error("broken: %d", 3)
	splog.Tip("run %s", "git push")

	require.Equal(t, "hello world\n⚠️  careful\n❌ broken: 3\n💡 run git push\n", buf.String())
}

func TestSplogQuiet(t *testing.T) {
	var buf bytes.Buffer
	splog, err := NewSplogWithConfig(&buf, "")
	require.NoError(t, err)

	splog.SetQuiet(true)
	require.True(t, splog.IsQuiet())
	splog.Info("hidden")
	splog.Page("also hidden")
	require.Empty(t, buf.String())
}

func TestSplogFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "commitkit.log")

	splog, err := NewSplogWithConfig(&buf, path)
	require.NoError(t, err)

	splog.Info("visible")
	splog.Logger().Info("group committed", "group", 1)
	require.NoError(t, splog.Close())

	require.Equal(t, "visible\n", buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "msg=visible")
	require.Contains(t, string(data), `msg="group committed" group=1`)
}

func TestSplogLoggerWithoutFile(t *testing.T) {
	var buf bytes.Buffer
	splog, err := NewSplogWithConfig(&buf, "")
	require.NoError(t, err)

	splog.Logger().Info("dropped")
	require.Empty(t, buf.String())
}

func TestRotationSettingsFromEnv(t *testing.T) {
	t.Setenv("COMMITKIT_LOG_MAX_SIZE", "5")
	t.Setenv("COMMITKIT_LOG_MAX_BACKUPS", "0")
	t.Setenv("COMMITKIT_LOG_MAX_AGE", "bogus")

	w := newRotatingWriter("x.log")
	require.Equal(t, 5, w.MaxSize)
	require.Equal(t, 0, w.MaxBackups)
	require.Equal(t, 30, w.MaxAge)
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("COMMITKIT_LOG_FILE", "/tmp/custom.log")
	require.Equal(t, "/tmp/custom.log", GetLogFilePath())

	t.Setenv("COMMITKIT_LOG_FILE", "")
	require.Equal(t, filepath.Join(".commitkit", "logs", "commitkit.log"), tailPath(GetLogFilePath(), 3))
}

func tailPath(p string, n int) string {
	parts := []string{}
	for i := 0; i < n; i++ {
		parts = append([]string{filepath.Base(p)}, parts...)
		p = filepath.Dir(p)
	}
	return filepath.Join(parts...)
}
