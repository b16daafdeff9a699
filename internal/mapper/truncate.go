package mapper

import (
	"strings"
	"unicode/utf8"

	"github.com/Brommah/contentfinal-sub002/internal/remote"
)

// TruncationMarker is appended to text cut to fit the remote limit.
const TruncationMarker = "..."

// Truncate limits s to remote.MaxRichTextLength characters. Longer text is
// cut at the limit minus the marker length and the marker is appended, so
// the result is exactly at the limit.
func Truncate(s string) string {
	if utf8.RuneCountInString(s) <= remote.MaxRichTextLength {
		return s
	}
	keep := remote.MaxRichTextLength - utf8.RuneCountInString(TruncationMarker)

	// Режем по границе руны, а не байта
	var b strings.Builder
	b.Grow(len(s))
	n := 0
	for _, r := range s {
		if n == keep {
			break
		}
		b.WriteRune(r)
		n++
	}
	b.WriteString(TruncationMarker)
	return b.String()
}

// IsTruncated reports whether s looks like the output of Truncate applied
// to a longer text.
func IsTruncated(s string) bool {
	return utf8.RuneCountInString(s) == remote.MaxRichTextLength && strings.HasSuffix(s, TruncationMarker)
}
