package metadoc

import "errors"

// Sentinel errors returned while parsing annotated sources.
var (
	ErrInvalidTag           = errors.New("invalid tag")
	ErrMissingIdentity      = errors.New("missing required identity tag")
	ErrDescriptionTooLong   = errors.New("short description too long")
	ErrDescriptionMultiline = errors.New("short description must be a single line")
	ErrInvalidOption        = errors.New("invalid option")
	ErrReadInput            = errors.New("read input")
	ErrWriteOutput          = errors.New("write output")

	// ErrSkipFile is returned by [Dialect.Open] when a file is not an input
	// of the dialect at all (e.g. an airframe file without a numeric id).
	// Sessions skip such files without reporting a failure.
	ErrSkipFile = errors.New("skip file")
)

// Sentinel errors used as [Diagnostic] kinds by dialect validators.
var (
	ErrDuplicate         = errors.New("duplicate definition")
	ErrNameTooLong       = errors.New("name too long")
	ErrInvalidUnit       = errors.New("invalid unit")
	ErrNonNumericDefault = errors.New("non-numeric value")
	ErrDefaultOutOfRange = errors.New("default out of range")
	ErrInvalidEnum       = errors.New("invalid enum entry")
	ErrInvalidBitmask    = errors.New("invalid bitmask entry")
)
