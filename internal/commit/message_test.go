package commit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"commitkit.dev/commitkit/internal/commit"
)

func countBullets(msg string) int {
	n := 0
	for _, line := range strings.Split(msg, "\n") {
		if strings.HasPrefix(line, "- ") {
			n++
		}
	}
	return n
}

func TestCompose(t *testing.T) {
	t.Run("header only without details", func(t *testing.T) {
		msg := commit.Compose(commit.Lookup("fix"), "null check", nil)
		require.Equal(t, "🐛 fix: null check", msg)
		require.NotContains(t, msg, commit.DetailsMarker)
	})

	t.Run("empty slice behaves like nil", func(t *testing.T) {
		msg := commit.Compose(commit.Lookup("docs"), "readme", []string{})
		require.Equal(t, "📝 docs: readme", msg)
	})

	t.Run("details rendered as bullets", func(t *testing.T) {
		details := []string{"guard against nil input", "add regression test", "update changelog"}
		msg := commit.Compose(commit.Lookup("fix"), "null check", details)

		require.Equal(t, "🐛 fix: null check\n\nDetails:\n- guard against nil input\n- add regression test\n- update changelog", msg)
		require.Equal(t, len(details), countBullets(msg))
	})

	t.Run("unknown classification uses default header", func(t *testing.T) {
		msg := commit.Compose(commit.Lookup("nope"), "x", nil)
		require.Equal(t, "✨ feat: x", msg)
	})

	t.Run("long summary is not truncated", func(t *testing.T) {
		summary := strings.Repeat("a", 120)
		msg := commit.Compose(commit.Lookup("chore"), summary, nil)
		require.True(t, strings.HasSuffix(msg, summary))
	})

	t.Run("deterministic", func(t *testing.T) {
		c := commit.Lookup("refactor")
		d := []string{"one"}
		require.Equal(t, commit.Compose(c, "s", d), commit.Compose(c, "s", d))
	})
}
