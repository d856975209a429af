// Package export renders a [metadoc.Session] for consumption by
// documentation and code generators.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/goccy/go-yaml"

	"go.jacobcolvin.com/px4meta/metadoc"
)

// Format is an output format.
type Format string

const (
	// FormatYAML renders the document as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON renders the document as indented JSON.
	FormatJSON Format = "json"
	// FormatRepr renders the Go value of the document, for debugging.
	FormatRepr Format = "repr"
)

// ErrUnknownFormat indicates an unrecognized format string.
var ErrUnknownFormat = errors.New("unknown format")

// Formats returns the names of all formats.
func Formats() []string {
	return []string{string(FormatYAML), string(FormatJSON), string(FormatRepr)}
}

// ParseFormat parses a format string.
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if slices.Contains([]Format{FormatYAML, FormatJSON, FormatRepr}, f) {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Document is the rendered view of a session.
type Document struct {
	Dialect string  `json:"dialect" yaml:"dialect"`
	Groups  []Group `json:"groups" yaml:"groups"`
}

// Group is the rendered view of a [metadoc.Group].
type Group struct {
	Name             string      `json:"name" yaml:"name"`
	Class            string      `json:"class,omitempty" yaml:"class,omitempty"`
	Image            string      `json:"image,omitempty" yaml:"image,omitempty"`
	Parameters       []Parameter `json:"parameters" yaml:"parameters"`
	NoCodeGeneration bool        `json:"no_code_generation,omitempty" yaml:"no_code_generation,omitempty"`
}

// Parameter is the rendered view of a [metadoc.Parameter]. Key-value
// views are listed in display order.
type Parameter struct {
	Name       string  `json:"name" yaml:"name"`
	Type       string  `json:"type" yaml:"type"`
	Default    string  `json:"default,omitempty" yaml:"default,omitempty"`
	Category   string  `json:"category,omitempty" yaml:"category,omitempty"`
	ID         string  `json:"id,omitempty" yaml:"id,omitempty"`
	Maintainer string  `json:"maintainer,omitempty" yaml:"maintainer,omitempty"`
	Path       string  `json:"path,omitempty" yaml:"path,omitempty"`
	PostPath   string  `json:"post_path,omitempty" yaml:"post_path,omitempty"`
	Fields     []Entry `json:"fields,omitempty" yaml:"fields,omitempty"`
	Enum       []Entry `json:"enum,omitempty" yaml:"enum,omitempty"`
	Bitmask    []Entry `json:"bitmask,omitempty" yaml:"bitmask,omitempty"`
	Outputs    []Entry `json:"outputs,omitempty" yaml:"outputs,omitempty"`
	Archs      []Entry `json:"archs,omitempty" yaml:"archs,omitempty"`
	Volatile   bool    `json:"volatile,omitempty" yaml:"volatile,omitempty"`
	Boolean    bool    `json:"boolean,omitempty" yaml:"boolean,omitempty"`
}

// Entry is one key-value pair of an ordered view.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// BuildOption configures [Build].
type BuildOption func(*builder)

type builder struct {
	image func(group string) string
}

// WithImages sets the function mapping a group name to the base name of
// the image shown for it.
func WithImages(image func(group string) string) BuildOption {
	return func(b *builder) {
		b.image = image
	}
}

// Build creates the [Document] of s.
func Build(s *metadoc.Session, opts ...BuildOption) *Document {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}

	doc := &Document{Dialect: s.Dialect().Name()}

	for _, g := range s.Groups() {
		view := Group{
			Name:             g.DisplayName,
			Class:            g.Class,
			NoCodeGeneration: g.NoCodeGeneration,
		}

		if b.image != nil {
			view.Image = b.image(g.Name)
		}

		for _, p := range g.Parameters() {
			view.Parameters = append(view.Parameters, buildParameter(p))
		}

		doc.Groups = append(doc.Groups, view)
	}

	return doc
}

func buildParameter(p *metadoc.Parameter) Parameter {
	view := Parameter{
		Name:       p.Name,
		Type:       p.Type,
		Default:    p.Default,
		Category:   p.Category,
		ID:         p.ID,
		Maintainer: p.Maintainer,
		Path:       p.Path,
		PostPath:   p.PostPath,
		Volatile:   p.Volatile,
		Boolean:    p.Boolean,
		Enum:       entries(p.EnumKeys(), p.Enum),
		Bitmask:    entries(p.BitmaskKeys(), p.Bitmask),
		Outputs:    entries(p.OutputKeys(), p.Outputs),
		Archs:      entries(p.ArchKeys(), p.Archs),
	}

	for _, f := range p.FieldKeys() {
		view.Fields = append(view.Fields, Entry{Key: string(f), Value: p.Fields[f]})
	}

	return view
}

func entries(keys []string, m map[string]string) []Entry {
	if len(keys) == 0 {
		return nil
	}

	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Key: k, Value: m[k]})
	}

	return out
}

// Write renders doc to w in format f.
func Write(w io.Writer, doc *Document, f Format) error {
	var (
		out []byte
		err error
	)

	switch f {
	case FormatYAML:
		out, err = yaml.MarshalWithOptions(doc, yaml.IndentSequence(true))
	case FormatJSON:
		out, err = json.MarshalIndent(doc, "", "  ")
		out = append(out, '\n')
	case FormatRepr:
		out = []byte(repr.String(doc, repr.Indent("  ")) + "\n")
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", metadoc.ErrWriteOutput, err)
	}

	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("%w: %w", metadoc.ErrWriteOutput, err)
	}

	return nil
}
