package commit

import (
	"fmt"
	"strings"
)

// DetailsMarker introduces the bullet list of a multi-line commit message.
const DetailsMarker = "Details:"

// Header renders the single-line commit header for c and summary.
func Header(c Classification, summary string) string {
	return fmt.Sprintf("%s %s: %s", c.Emoji, c.Key, summary)
}

// Compose builds a commit message. With no details the message is the
// header alone; otherwise a blank line, DetailsMarker and one "- " bullet
// per detail follow. The summary is passed through untouched, even when it
// exceeds the conventional 50 characters.
func Compose(c Classification, summary string, details []string) string {
	header := Header(c, summary)
	if len(details) == 0 {
		return header
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(DetailsMarker)
	for _, d := range details {
		b.WriteString("\n- ")
		b.WriteString(d)
	}
	return b.String()
}
