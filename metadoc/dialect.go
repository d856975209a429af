package metadoc

// Dialect describes one annotated-source grammar: its comment syntax, tag
// vocabulary, how records bind to declarations, and how the assembled
// groups are validated.
//
// A Dialect acts as a stateless prototype. [Dialect.Open] returns a fresh
// [Binder] for every input file.
type Dialect interface {
	Name() string
	Syntax() Syntax
	Vocabulary() Vocabulary

	// Extensions returns the file extensions (with leading dot, "" for no
	// extension) this dialect reads.
	Extensions() []string

	// Open prepares a [Binder] for the file at path. It returns an error
	// wrapping [ErrSkipFile] when the file is not an input of the dialect.
	Open(path string, defaults *Defaults) (Binder, error)

	// GroupPriority biases group display order ahead of alphabetical order.
	GroupPriority() Priority

	// Compare orders parameters within a group.
	Compare(a, b *Parameter) int

	// Validate runs cross-record checks over the display-ordered groups,
	// adding violations to r.
	Validate(groups []*Group, r *Report)
}

// Binder turns comment records of one file into [Parameter] values.
type Binder interface {
	// Declare inspects a line outside any comment block. comment is the
	// record of a block closed on the immediately preceding line, or nil.
	// It returns nil when the line declares nothing.
	Declare(line string, comment *Comment) (*Parameter, error)

	// Close is called once after the last line. comment is the file-scoped
	// record for syntaxes with [Syntax.FileScoped] set, and nil otherwise.
	Close(comment *Comment) (*Parameter, error)
}

// Defaults maps default-override symbols to literal default strings. It is
// shared by every file of a [Session].
type Defaults struct {
	values map[string]string
}

// NewDefaults creates an empty [Defaults] table.
func NewDefaults() *Defaults {
	return &Defaults{values: make(map[string]string)}
}

// Set records the literal default for symbol, replacing any earlier value.
func (d *Defaults) Set(symbol, value string) {
	d.values[symbol] = value
}

// Lookup returns the literal default recorded for symbol.
func (d *Defaults) Lookup(symbol string) (string, bool) {
	v, ok := d.values[symbol]

	return v, ok
}

// Len returns the number of recorded symbols.
func (d *Defaults) Len() int {
	return len(d.values)
}
