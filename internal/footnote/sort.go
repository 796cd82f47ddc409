package footnote

import (
	"fmt"
	"strings"
	"unicode"
)

// MissingFootnoteError reports an inline marker whose label has no
// definition anywhere in the document.
type MissingFootnoteError struct {
	Label string
}

// Error implements the error interface.
func (e *MissingFootnoteError) Error() string {
	return fmt.Sprintf("missing footnote definition for [^%s]", e.Label)
}

// Result is the outcome of a sort: the rewritten document and the canonical
// label order it was built from.
type Result struct {
	Text  string
	Order []string
}

// Order returns the distinct marker labels in order of first appearance.
// A label referenced more than once keeps the position of its first use.
func Order(markers []Marker) []string {
	var order []string
	seen := make(map[string]bool, len(markers))
	for _, m := range markers {
		if !seen[m.Label] {
			seen[m.Label] = true
			order = append(order, m.Label)
		}
	}
	return order
}

// Sort reorders, relocates, and (unless keepNames is set) renumbers the
// footnotes in text. Definitions move to the end of the document in
// first-reference order, separated from the body by one blank line; the
// output ends in exactly one newline.
func (d Dialect) Sort(text string, keepNames bool) (Result, error) {
	text = strings.TrimRightFunc(text, unicode.IsSpace)

	markers := d.Markers(text)
	contents := contentByLabel(d.Definitions(text))
	order := Order(markers)

	newDefs := make([]string, len(order))
	for i, label := range order {
		content, ok := contents[label]
		if !ok {
			return Result{}, &MissingFootnoteError{Label: label}
		}
		if keepNames {
			newDefs[i] = fmt.Sprintf("[^%s]: %s", label, content)
		} else {
			newDefs[i] = fmt.Sprintf("[^%d]: %s", i+1, content)
		}
	}

	body := strings.TrimSpace(d.StripDefinitions(text))
	out := body + "\n\n" + strings.Join(newDefs, "\n")
	if !keepNames {
		out = d.renumber(out, order)
	}
	return Result{Text: out + "\n", Order: order}, nil
}

// renumber rewrites every inline marker to its 1-based position in order,
// keeping the preceding character in place. It runs over the rebuilt
// document and reuses the order computed from the original scan: the new
// numeric definition labels sit at line starts and are never matched, so
// the rewrite cannot perturb them.
func (d Dialect) renumber(text string, order []string) string {
	ordinal := make(map[string]int, len(order))
	for i, label := range order {
		ordinal[label] = i + 1
	}

	matches := findOverlapping(d.marker, text)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, m := range matches {
		n, ok := ordinal[text[m[4]:m[5]]]
		if !ok {
			continue
		}
		b.WriteString(text[prev:m[3]])
		fmt.Fprintf(&b, "[^%d]", n)
		prev = m[1]
	}
	b.WriteString(text[prev:])
	return b.String()
}
