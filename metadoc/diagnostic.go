package metadoc

import "fmt"

// Diagnostic is a single-line rejection of an input file or record.
//
// Its [Diagnostic.Error] text is the human-readable message reported to the
// user; [errors.Is] matches it against its Kind sentinel (e.g.
// [ErrInvalidTag] or [ErrDuplicate]).
type Diagnostic struct {
	Kind    error
	Path    string // input file, when known
	Name    string // parameter or airframe name, when known
	Message string
}

// Diagnosef creates a [Diagnostic] of the given kind with a formatted
// message.
func Diagnosef(kind error, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithPath sets the input file path and returns d.
func (d *Diagnostic) WithPath(path string) *Diagnostic {
	d.Path = path

	return d
}

// WithName sets the record name and returns d.
func (d *Diagnostic) WithName(name string) *Diagnostic {
	d.Name = name

	return d
}

func (d *Diagnostic) Error() string {
	return d.Message
}

func (d *Diagnostic) Unwrap() error {
	return d.Kind
}
