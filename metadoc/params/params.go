package params

import (
	"cmp"
	"fmt"
	"regexp"

	"go.jacobcolvin.com/px4meta/metadoc"
)

// DefaultGroup is the group of parameters without a @group tag.
const DefaultGroup = "Miscellaneous"

var syntax = metadoc.Syntax{
	Open:          regexp.MustCompile(`^/\*\*`),
	Content:       regexp.MustCompile(`^\*\s*(.*)`),
	Close:         regexp.MustCompile(`(.*?)\s*\*/`),
	ReopenInBlock: true,
}

var vocabulary = metadoc.Vocabulary{
	"group":           metadoc.TagAttr,
	"category":        metadoc.TagAttr,
	"board":           metadoc.TagField,
	"min":             metadoc.TagField,
	"max":             metadoc.TagField,
	"unit":            metadoc.TagField,
	"decimal":         metadoc.TagField,
	"increment":       metadoc.TagField,
	"reboot_required": metadoc.TagField,
	"value":           metadoc.TagMulti,
	"bit":             metadoc.TagMulti,
	"boolean":         metadoc.TagFlag,
	"volatile":        metadoc.TagFlag,
}

// FieldPriority orders parameter fields for display.
var FieldPriority = metadoc.Priority{
	string(metadoc.FieldBoard):     9,
	string(metadoc.FieldShortDesc): 8,
	string(metadoc.FieldLongDesc):  7,
	string(metadoc.FieldMin):       5,
	string(metadoc.FieldMax):       4,
	string(metadoc.FieldUnit):      3,
	string(metadoc.FieldDecimal):   2,
}

var groupPriority = metadoc.Priority{
	DefaultGroup: -10,
}

// Dialect parses runtime parameter definitions documented with /** ... */
// blocks and declared with PARAM_DEFINE_* or PX4_PARAM_DEFINE_* macros.
type Dialect struct{}

// New creates the parameter [Dialect].
func New() *Dialect {
	return &Dialect{}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "params"
}

// Syntax returns the C block comment syntax.
func (d *Dialect) Syntax() metadoc.Syntax {
	return syntax
}

// Vocabulary returns the accepted tags.
func (d *Dialect) Vocabulary() metadoc.Vocabulary {
	return vocabulary
}

// Extensions returns the C and C++ source extensions.
func (d *Dialect) Extensions() []string {
	return []string{".c", ".cpp"}
}

// Open returns a [metadoc.Binder] that matches parameter declarations
// against defaults.
func (d *Dialect) Open(path string, defaults *metadoc.Defaults) (metadoc.Binder, error) {
	if defaults == nil {
		return nil, fmt.Errorf("%w: nil defaults table for %s", metadoc.ErrInvalidOption, path)
	}

	return &binder{defaults: defaults}, nil
}

// GroupPriority demotes [DefaultGroup] below every other group.
func (d *Dialect) GroupPriority() metadoc.Priority {
	return groupPriority
}

// Compare orders parameters by name.
func (d *Dialect) Compare(a, b *metadoc.Parameter) int {
	return cmp.Compare(a.Name, b.Name)
}
