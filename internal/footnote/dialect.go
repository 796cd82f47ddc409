// Package footnote implements scanning, ordering, and rewriting of Markdown
// footnote markers and definition blocks.
package footnote

import "regexp"

// Dialect holds the compiled patterns for one footnote syntax. It is a
// value constructed once and passed explicitly, so tests can substitute
// alternate dialects without touching shared state.
type Dialect struct {
	// marker matches an inline reference [^label] together with the one
	// character immediately before it. A marker at the start of a line is
	// preceded by a newline and therefore never matches.
	marker *regexp.Regexp

	// defLine matches a single line that opens a definition block:
	// [^label]: content, starting at column zero.
	defLine *regexp.Regexp

	// adjacent matches an inline marker glued to a non-whitespace
	// character, the pattern the adjacency fixer separates.
	adjacent *regexp.Regexp
}

// Default returns the standard Markdown footnote dialect: inline markers of
// the form [^label] where label is one or more word characters, and
// definition lines of the form [^label]: content.
func Default() Dialect {
	return Dialect{
		marker:   regexp.MustCompile(`([^\n])\[\^(\w+)\]`),
		defLine:  regexp.MustCompile(`^\[\^([^\]]+)\]:[ \t]*(.*)$`),
		adjacent: regexp.MustCompile(`(\S)(\[\^\w+\])`),
	}
}
