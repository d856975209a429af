package airframes

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go.jacobcolvin.com/px4meta/metadoc"
)

// DefaultMaintainer is used when an airframe has no @maintainer tag.
const DefaultMaintainer = "John Doe <john@example.com>"

// PostSuffix is the suffix of an optional post-startup script next to an
// airframe file.
const PostSuffix = ".post"

var syntax = metadoc.Syntax{
	Open:          regexp.MustCompile(`^#\s`),
	Content:       regexp.MustCompile(`^#\s*(.*)`),
	OpenIsContent: true,
	FileScoped:    true,
}

var vocabulary = metadoc.Vocabulary{
	"name":       metadoc.TagAttr,
	"type":       metadoc.TagAttr,
	"class":      metadoc.TagAttr,
	"maintainer": metadoc.TagAttr,
	"url":        metadoc.TagField,
	"arch":       metadoc.TagField,
	"desc":       metadoc.TagField,
	"output":     metadoc.TagMulti,
	"board":      metadoc.TagMulti,
}

// FieldPriority orders airframe fields and outputs for display. Auxiliary
// outputs sort after main outputs.
var FieldPriority = metadoc.Priority{
	string(metadoc.FieldBoard):     9,
	string(metadoc.FieldShortDesc): 8,
	string(metadoc.FieldLongDesc):  7,
	string(metadoc.FieldMin):       5,
	string(metadoc.FieldMax):       4,
	string(metadoc.FieldUnit):      3,
	"AUX1":                         -10,
	"AUX2":                         -10,
	"AUX3":                         -10,
	"AUX4":                         -10,
	"AUX5":                         -10,
	"AUX6":                         -10,
	"AUX7":                         -10,
	"AUX8":                         -10,
}

var groupPriority = metadoc.Priority{
	"Miscellaneous": -10,
}

// Dialect parses airframe startup scripts documented with "#" comments.
// An airframe's identity comes from its file name ("<id>_<name>") and its
// @name, @type and @class tags.
type Dialect struct{}

// New creates the airframe [Dialect].
func New() *Dialect {
	return &Dialect{}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "airframes"
}

// Syntax returns the shell comment syntax.
func (d *Dialect) Syntax() metadoc.Syntax {
	return syntax
}

// Vocabulary returns the accepted tags.
func (d *Dialect) Vocabulary() metadoc.Vocabulary {
	return vocabulary
}

// Extensions returns the accepted file extensions: none, or ".hil".
func (d *Dialect) Extensions() []string {
	return []string{"", ".hil"}
}

// Open derives the airframe id from the file name. Files whose name does
// not start with a numeric id are skipped.
func (d *Dialect) Open(path string, _ *metadoc.Defaults) (metadoc.Binder, error) {
	id, _, _ := strings.Cut(filepath.Base(path), "_")

	_, err := strconv.ParseFloat(id, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: non-numeric airframe id %q", metadoc.ErrSkipFile, path, id)
	}

	return &binder{path: path, id: id}, nil
}

// GroupPriority demotes the "Miscellaneous" group.
func (d *Dialect) GroupPriority() metadoc.Priority {
	return groupPriority
}

// Compare orders airframes by numeric id.
func (d *Dialect) Compare(a, b *metadoc.Parameter) int {
	ai, aErr := strconv.ParseFloat(a.ID, 64)
	bi, bErr := strconv.ParseFloat(b.ID, 64)

	if aErr != nil || bErr != nil {
		return cmp.Compare(a.ID, b.ID)
	}

	return cmp.Or(cmp.Compare(ai, bi), cmp.Compare(a.ID, b.ID))
}

// Validate reports airframes that share a name (and board field).
func (d *Dialect) Validate(groups []*metadoc.Group, r *metadoc.Report) {
	seen := make(map[string]bool)

	for _, g := range groups {
		for _, p := range g.Parameters() {
			key := p.BoardKey()
			if !seen[key] {
				seen[key] = true

				continue
			}

			diag := metadoc.Diagnosef(metadoc.ErrDuplicate, "Duplicate parameter definition: %s", key)
			if !r.Add(diag.WithName(p.Name).WithPath(p.Path)) {
				return
			}
		}
	}
}

// binder builds the single airframe of a file from its file-scoped record.
type binder struct {
	path string
	id   string
}

func (b *binder) Declare(_ string, _ *metadoc.Comment) (*metadoc.Parameter, error) {
	return nil, nil
}

func (b *binder) Close(c *metadoc.Comment) (*metadoc.Parameter, error) {
	if tag, bad := c.Check(vocabulary); bad {
		return nil, metadoc.Diagnosef(metadoc.ErrInvalidTag,
			"Aborting due to invalid documentation tag: '%s'", tag).WithPath(b.path)
	}

	identity := make(map[string]string, 3)

	for _, tag := range []string{"type", "class", "name"} {
		v, ok := c.Tag(tag)
		if !ok {
			return nil, metadoc.Diagnosef(metadoc.ErrMissingIdentity,
				"Aborting due to missing @%s tag in file: '%s'", tag, b.path).WithPath(b.path)
		}

		identity[tag] = v
	}

	p := metadoc.NewParameter(identity["name"], identity["type"], FieldPriority)
	p.Group = identity["type"]
	p.Class = identity["class"]
	p.ID = b.id
	p.Path = b.path
	p.Maintainer = DefaultMaintainer

	if isFile(b.path + PostSuffix) {
		p.PostPath = b.path + PostSuffix
	}

	for _, tag := range c.Tags() {
		switch tag.Name {
		case "name", "type", "class":
			// Already consumed as identity.
		case "maintainer":
			p.Maintainer = tag.Value
		default:
			p.Fields[metadoc.Field(tag.Name)] = tag.Value
		}
	}

	for output, desc := range c.Multi("output") {
		p.Outputs[output] = desc
	}

	for board, desc := range c.Multi("board") {
		p.Archs[board] = desc
	}

	return p, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}
