package metadoc

import (
	"regexp"
	"strings"
)

// tagExpr matches an "@name rest" directive at the start of comment content.
var tagExpr = regexp.MustCompile(`^@([a-zA-Z][a-zA-Z0-9_]*)\s*(.*)`)

// lineSplitExpr splits source text into physical lines, collapsing runs of
// line terminators.
var lineSplitExpr = regexp.MustCompile(`[\r\n]+`)

// Syntax describes the comment markers of a [Dialect].
type Syntax struct {
	// Open matches the line that starts a documentation block.
	Open *regexp.Regexp
	// Content matches a line inside a block. The first submatch is the
	// comment content with its prefix stripped.
	Content *regexp.Regexp
	// Close, when set, is searched anywhere in the line and ends the block.
	// The first submatch is the text preceding the close marker. Without a
	// Close pattern, blocks only end at the first line that is not a
	// comment line.
	Close *regexp.Regexp

	// OpenIsContent makes the opener line also count as the first content
	// line of the block.
	OpenIsContent bool
	// ReopenInBlock lets an opener line restart the block from any state,
	// not only from idle.
	ReopenInBlock bool
	// FileScoped keeps tags across every block of a file. The accumulated
	// record is bound once, by [Binder.Close], at the end of the file.
	FileScoped bool
}

// TagKind classifies how a tag contributes to a [Parameter].
type TagKind int

const (
	// TagField is copied verbatim into [Parameter.Fields].
	TagField TagKind = iota
	// TagAttr is consumed into a dedicated [Parameter] attribute.
	TagAttr
	// TagFlag is a presence flag; its value is ignored.
	TagFlag
	// TagMulti splits its value into a sub-key and sub-value.
	TagMulti
)

// Vocabulary is the set of tags a dialect accepts.
type Vocabulary map[string]TagKind

// Kind returns the kind of the named tag and whether it is known.
func (v Vocabulary) Kind(name string) (TagKind, bool) {
	k, ok := v[name]

	return k, ok
}

// IsMulti reports whether the named tag is multi-valued.
func (v Vocabulary) IsMulti(name string) bool {
	k, ok := v[name]

	return ok && k == TagMulti
}

// SplitLines splits content into trimmed, non-empty logical lines.
func SplitLines(content string) []string {
	parts := lineSplitExpr.Split(content, -1)
	lines := make([]string, 0, len(parts))

	for _, line := range parts {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lines = append(lines, line)
	}

	return lines
}
