package params

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"go.jacobcolvin.com/px4meta/metadoc"
)

// MaxShortDescription is the maximum length, in characters, of a short
// description.
const MaxShortDescription = 150

var newlinesExpr = regexp.MustCompile(`\n+`)

// binder assembles parameters for one file. Default overrides are written
// to the session table as soon as they are seen.
type binder struct {
	defaults *metadoc.Defaults
}

func (b *binder) Declare(line string, comment *metadoc.Comment) (*metadoc.Parameter, error) {
	override, decl := Match(line)
	if override != nil {
		b.defaults.Set(override.Symbol, override.Value)

		return nil, nil
	}

	if decl == nil {
		return nil, nil
	}

	def := decl.Default
	if decl.Indirect {
		def, _ = b.defaults.Lookup(decl.Name + DefaultSuffix)
	}

	p := metadoc.NewParameter(decl.Name, decl.Type, FieldPriority)
	p.Default = NormalizeDefault(def)
	p.Group = DefaultGroup
	p.Fields[metadoc.FieldShortDesc] = decl.Name

	if comment == nil {
		return p, nil
	}

	err := apply(p, comment)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (b *binder) Close(_ *metadoc.Comment) (*metadoc.Parameter, error) {
	return nil, nil
}

// apply copies a comment record into p.
func apply(p *metadoc.Parameter, c *metadoc.Comment) error {
	if c.Short != "" {
		if strings.Contains(c.Short, "\n") {
			return metadoc.Diagnosef(metadoc.ErrDescriptionMultiline,
				"short description must be a single line (parameter: %s)", p.Name).WithName(p.Name)
		}

		n := utf8.RuneCountInString(c.Short)
		if n > MaxShortDescription {
			return metadoc.Diagnosef(metadoc.ErrDescriptionTooLong,
				"short description too long (%d max, is %d, parameter: %s)",
				MaxShortDescription, n, p.Name).WithName(p.Name)
		}

		p.Fields[metadoc.FieldShortDesc] = strings.TrimRight(c.Short, ".")
	}

	if c.Long != "" {
		p.Fields[metadoc.FieldLongDesc] = newlinesExpr.ReplaceAllString(c.Long, " ")
	}

	if tag, bad := c.Check(vocabulary); bad {
		return metadoc.Diagnosef(metadoc.ErrInvalidTag,
			"Skipping invalid documentation tag: '%s'", tag).WithName(p.Name)
	}

	for _, tag := range c.Tags() {
		switch tag.Name {
		case "group":
			p.Group = tag.Value
		case "category":
			p.Category = tag.Value
		case "volatile":
			p.Volatile = true
		case "boolean":
			p.Boolean = true
		default:
			p.Fields[metadoc.Field(tag.Name)] = tag.Value
		}
	}

	for code, desc := range c.Multi("value") {
		p.Enum[code] = desc
	}

	for bit, desc := range c.Multi("bit") {
		p.Bitmask[bit] = desc
	}

	return nil
}
