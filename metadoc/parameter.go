package metadoc

// Field is a field code of a [Parameter].
type Field string

// Known field codes. Each dialect accepts a subset of them.
const (
	FieldShortDesc      Field = "short_desc"
	FieldLongDesc       Field = "long_desc"
	FieldBoard          Field = "board"
	FieldMin            Field = "min"
	FieldMax            Field = "max"
	FieldUnit           Field = "unit"
	FieldDecimal        Field = "decimal"
	FieldIncrement      Field = "increment"
	FieldRebootRequired Field = "reboot_required"
	FieldURL            Field = "url"
	FieldDesc           Field = "desc"
	FieldArch           Field = "arch"
)

// Parameter is one documented record: a runtime parameter or an airframe
// preset, depending on the dialect that produced it.
//
// Create instances with [NewParameter].
type Parameter struct {
	Fields map[Field]string

	// Enum maps numeric codes to descriptions (parameter dialect).
	Enum map[string]string
	// Bitmask maps bit indexes to descriptions (parameter dialect).
	Bitmask map[string]string
	// Outputs maps output names to descriptions (airframe dialect).
	Outputs map[string]string
	// Archs maps board names to descriptions (airframe dialect).
	Archs map[string]string

	priority Priority

	Name    string
	Type    string
	Default string

	// Group and Class identify the owning [Group].
	Group string
	Class string

	Category string

	// Airframe identity.
	ID         string
	Maintainer string
	Path       string
	PostPath   string

	Volatile bool
	Boolean  bool
}

// NewParameter creates a [Parameter] whose key views are ordered by
// priority.
func NewParameter(name, typ string, priority Priority) *Parameter {
	return &Parameter{
		Name:     name,
		Type:     typ,
		Fields:   make(map[Field]string),
		Enum:     make(map[string]string),
		Bitmask:  make(map[string]string),
		Outputs:  make(map[string]string),
		Archs:    make(map[string]string),
		priority: priority,
	}
}

// Field returns the value of field f.
func (p *Parameter) Field(f Field) (string, bool) {
	v, ok := p.Fields[f]

	return v, ok
}

// FieldKeys returns the field codes in display order.
func (p *Parameter) FieldKeys() []Field {
	return SortedKeys(p.Fields, p.priority)
}

// EnumKeys returns the enum codes in display order.
func (p *Parameter) EnumKeys() []string {
	return SortedKeys(p.Enum, p.priority)
}

// BitmaskKeys returns the bitmask bit indexes in display order.
func (p *Parameter) BitmaskKeys() []string {
	return SortedKeys(p.Bitmask, p.priority)
}

// OutputKeys returns the output names in display order.
func (p *Parameter) OutputKeys() []string {
	return SortedKeys(p.Outputs, p.priority)
}

// ArchKeys returns the board names in display order.
func (p *Parameter) ArchKeys() []string {
	return SortedKeys(p.Archs, p.priority)
}

// BoardKey returns the "name+board" identity used for duplicate detection.
func (p *Parameter) BoardKey() string {
	return p.Name + "+" + p.Fields[FieldBoard]
}

// groupKey returns the internal key of the owning group. Groups with the
// same name but different classes stay distinct.
func (p *Parameter) groupKey() string {
	return p.Group + "\x00" + p.Class
}
