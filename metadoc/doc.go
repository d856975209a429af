// Package metadoc extracts documentation metadata from annotated source
// text.
//
// Sources carry documentation blocks made of a short description, an
// optional long description, and "@tag value" directives. A [Dialect]
// supplies the comment markers ([Syntax]), the accepted tags
// ([Vocabulary]), and a [Binder] that attaches completed blocks to the
// declarations that follow them. The same engine serves every dialect.
//
// # Scanning
//
// Each file is split into trimmed, non-empty lines and fed through a
// comment state machine with the states of [State]:
//
//	idle -> wait-short -> wait-short-end -> wait-long -> wait-long-end
//	                \____________________________________/
//	                             wait-tag-end
//
// An empty content line ends the short description. A tag line opens
// wait-tag-end, and following plain lines continue the most recently
// opened tag (joined with "\n"). A line inside a block that is neither a
// content line nor a closing line drops the block without a diagnostic.
//
// When a block closes, the scanner moves to comment-processed and hands the
// record to [Binder.Declare] together with the next line only. If that
// line declares nothing, the record is discarded.
//
// # Sessions
//
// A [Session] owns the groups of one run and the [Defaults] table shared by
// its files. [Session.Parse] is order-sensitive: a default override only
// reaches declarations parsed after it. [Session.ParseAll] first collects
// the overrides of every file, then parses, so file order no longer
// matters. A file that fails contributes no parameter.
//
// [Session.Validate] runs the dialect's cross-record checks once over the
// whole session and returns a [Report]. Violations are accumulated in
// order; [WithFailFast] stops at the first one.
//
// # Ordering
//
// Field, enum, bitmask, and output keys are sorted alphabetically, then
// stably by descending [Priority]. Groups are sorted by name, then by
// class, then by the dialect's group priority.
package metadoc
