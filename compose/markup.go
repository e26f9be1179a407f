package compose

import "strings"

// Segment is one tokenized span of inline-marked text.
type Segment struct {
	Text string
	Bold bool
}

// emphasisDelimiter is the two-character inline marker the content strings
// carry: text between a pair of delimiters renders bold.
const emphasisDelimiter = "**"

// ParseInlineMarkup tokenizes s into alternating plain/bold segments.
// Even-indexed splits are plain, odd-indexed bold. An unpaired trailing
// delimiter leaves a dangling bold segment running to end of string; that
// is deliberate, not an error. Empty segments are dropped.
func ParseInlineMarkup(s string) []Segment {
	parts := strings.Split(s, emphasisDelimiter)
	out := make([]Segment, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, Segment{Text: part, Bold: i%2 == 1})
	}
	return out
}
