package footnote

import "strings"

// SpaceAdjacent inserts a single space between an inline marker and the
// non-whitespace character immediately before it, so [^1][^2] becomes
// [^1] [^2]. The insert never fires when the preceding character sits at
// the start of a line, and a marker at line start is never matched at all.
func (d Dialect) SpaceAdjacent(text string) string {
	matches := findOverlapping(d.adjacent, text)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(matches))
	prev := 0
	for _, m := range matches {
		if m[0] == 0 || text[m[0]-1] == '\n' {
			continue
		}
		// m[2]:m[3] is the preceding character, m[4]:m[5] the marker.
		b.WriteString(text[prev:m[3]])
		b.WriteByte(' ')
		prev = m[4]
	}
	b.WriteString(text[prev:])
	return b.String()
}
