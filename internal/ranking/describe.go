package ranking

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/tradepath/internal/types"
)

const (
	descriptionWindow = 50
	previewLength     = 100
)

// contextLabels is checked in order; the first label whose key is
// contained in any segment topic wins.
var contextLabels = []struct {
	key   string
	label string
}{
	{"safety", "Safety and precautions"},
	{"component", "Circuit components"},
	{"calculation", "Mathematical calculations"},
	{"practical", "Hands-on demonstration"},
	{"theory", "Theoretical concepts"},
	{"troubleshooting", "Problem solving"},
}

// DefaultContext labels segments whose topics match no known context.
const DefaultContext = "Circuit design fundamentals"

// Describe returns a window of text around the first keyword found in the
// segment, or the opening of the segment when none is found. The result
// always ends in "...".
func Describe(seg types.TranscriptSegment, keywords []string) string {
	text := []rune(seg.Text)
	lower := strings.ToLower(seg.Text)

	for _, kw := range keywords {
		idx := strings.Index(lower, kw)
		if idx == -1 {
			continue
		}
		pos := utf8.RuneCountInString(lower[:idx])
		start := max(0, pos-descriptionWindow)
		end := min(len(text), pos+descriptionWindow)
		start = min(start, end)
		return string(text[start:end]) + "..."
	}

	return Truncate(seg.Text, previewLength) + "..."
}

// Context maps a segment's topics to a short label.
func Context(seg types.TranscriptSegment) string {
	for _, c := range contextLabels {
		for _, topic := range seg.Topics {
			if strings.Contains(strings.ToLower(topic), c.key) {
				return c.label
			}
		}
	}
	return DefaultContext
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
