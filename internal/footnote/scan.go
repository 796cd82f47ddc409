package footnote

import (
	"regexp"
	"strings"
)

// Marker is one inline footnote reference together with the character
// immediately before it. By construction that character is never a newline:
// markers at the start of a line are unsupported and never scanned.
type Marker struct {
	Preceding string
	Label     string
}

// Definition is one footnote definition block. Content may span multiple
// lines: it runs from the text after the colon to the line before the next
// definition block, or to the end of the document.
type Definition struct {
	Label   string
	Content string
}

// Markers returns every inline marker in document order, duplicates
// included. Markers inside definition content are scanned too, exactly like
// markers in prose.
func (d Dialect) Markers(text string) []Marker {
	var markers []Marker
	for _, m := range findOverlapping(d.marker, text) {
		markers = append(markers, Marker{
			Preceding: text[m[2]:m[3]],
			Label:     text[m[4]:m[5]],
		})
	}
	return markers
}

// findOverlapping matches re repeatedly, resuming the search one byte
// before the end of each match. The marker patterns consume the character
// before the marker, so plain FindAll would skip a marker that touches the
// previous one: in a[^1][^2] the closing bracket of [^1] must also serve
// as the preceding character of [^2].
func findOverlapping(re *regexp.Regexp, text string) [][]int {
	var matches [][]int
	pos := 0
	for pos < len(text) {
		m := re.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			break
		}
		for i := range m {
			if m[i] >= 0 {
				m[i] += pos
			}
		}
		matches = append(matches, m)
		pos = m[1] - 1
	}
	return matches
}

// Definitions returns every definition block in document order, duplicates
// included.
func (d Dialect) Definitions(text string) []Definition {
	blocks := d.scanDefinitions(text)
	defs := make([]Definition, len(blocks))
	for i, blk := range blocks {
		defs[i] = blk.Definition
	}
	return defs
}

// StripDefinitions removes every definition block from the text. The
// newline separating consecutive blocks is left behind; callers trim the
// result.
func (d Dialect) StripDefinitions(text string) string {
	blocks := d.scanDefinitions(text)
	if len(blocks) == 0 {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, blk := range blocks {
		b.WriteString(text[prev:blk.start])
		prev = blk.end
	}
	b.WriteString(text[prev:])
	return b.String()
}

// defBlock is a definition plus its byte span in the scanned text. The span
// of a block followed by another block excludes the newline between them.
type defBlock struct {
	Definition
	start int
	end   int
}

// scanDefinitions walks the text line by line. A line matching the
// definition pattern at column zero opens a block and closes the previous
// one; every other line extends the open block's content. Content therefore
// swallows anything between a definition line and the next one, including
// blank lines and ordinary prose.
func (d Dialect) scanDefinitions(text string) []defBlock {
	var blocks []defBlock
	cur := -1

	for lineStart := 0; lineStart < len(text); {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(text)
		} else {
			lineEnd += lineStart
		}
		line := text[lineStart:lineEnd]

		if m := d.defLine.FindStringSubmatch(line); m != nil {
			if cur >= 0 {
				blocks[cur].end = lineStart - 1
			}
			blocks = append(blocks, defBlock{
				Definition: Definition{Label: m[1], Content: m[2]},
				start:      lineStart,
			})
			cur = len(blocks) - 1
		} else if cur >= 0 {
			blocks[cur].Content += "\n" + line
		}

		lineStart = lineEnd + 1
	}

	if cur >= 0 {
		blocks[cur].end = len(text)
	}
	for i := range blocks {
		blocks[i].Content = strings.TrimLeft(blocks[i].Content, " \t\r\n")
	}
	return blocks
}

// contentByLabel collapses definitions into a label lookup. A label defined
// more than once keeps its last definition.
func contentByLabel(defs []Definition) map[string]string {
	contents := make(map[string]string, len(defs))
	for _, def := range defs {
		contents[def.Label] = def.Content
	}
	return contents
}
