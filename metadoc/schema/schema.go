// Package schema builds a JSON Schema describing parameter value files from
// a parsed parameter session, and checks value files against it.
//
// The schema is an object with one property per parameter. Parameter types
// map to JSON types (INT32 to "integer", FLOAT to "number"); @min and @max
// become "minimum" and "maximum"; @value codes become "enum"; the short and
// long descriptions become "title" and "description".
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/px4meta/metadoc"
)

// Draft7 is the $schema URI of generated schemas.
const Draft7 = "http://json-schema.org/draft-07/schema#"

// Sentinel errors returned by [CheckValues].
var (
	ErrInvalidValues = errors.New("invalid parameter values")
	ErrInvalidSchema = errors.New("invalid schema")
)

const (
	typeObject  = "object"
	typeInteger = "integer"
	typeNumber  = "number"
)

type options struct {
	title  string
	strict bool
}

// Option configures [Generate].
type Option func(*options)

// WithTitle sets the schema title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithStrict rejects values for unknown parameters.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// Generate builds the schema of the parameters in s. Properties appear in
// display order.
func Generate(s *metadoc.Session, opts ...Option) *jsonschema.Schema {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	root := &jsonschema.Schema{
		Schema:     Draft7,
		Title:      o.title,
		Type:       typeObject,
		Properties: make(map[string]*jsonschema.Schema),
	}

	for _, g := range s.Groups() {
		for _, p := range g.Parameters() {
			if _, ok := root.Properties[p.Name]; ok {
				// Board variants share one value.
				continue
			}

			root.Properties[p.Name] = parameterSchema(g, p)
			root.PropertyOrder = append(root.PropertyOrder, p.Name)
		}
	}

	if o.strict {
		root.AdditionalProperties = &jsonschema.Schema{Not: &jsonschema.Schema{}}
	} else {
		root.AdditionalProperties = &jsonschema.Schema{}
	}

	return root
}

func parameterSchema(g *metadoc.Group, p *metadoc.Parameter) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Title:       p.Fields[metadoc.FieldShortDesc],
		Description: p.Fields[metadoc.FieldLongDesc],
		Comment:     comment(g, p),
	}

	switch strings.ToUpper(p.Type) {
	case "INT32":
		s.Type = typeInteger
	case "FLOAT":
		s.Type = typeNumber
	}

	if v, ok := number(p.Default, s.Type); ok {
		s.Default = mustJSON(v)
	}

	if v, ok := number(p.Fields[metadoc.FieldMin], typeNumber); ok {
		s.Minimum = jsonschema.Ptr(v.(float64))
	}

	if v, ok := number(p.Fields[metadoc.FieldMax], typeNumber); ok {
		s.Maximum = jsonschema.Ptr(v.(float64))
	}

	for _, code := range p.EnumKeys() {
		if v, ok := number(code, typeNumber); ok {
			s.Enum = append(s.Enum, v)
		}
	}

	return s
}

func comment(g *metadoc.Group, p *metadoc.Parameter) string {
	parts := []string{"group: " + g.DisplayName}

	if unit := p.Fields[metadoc.FieldUnit]; unit != "" {
		parts = append(parts, "unit: "+unit)
	}

	return strings.Join(parts, "; ")
}

// number parses s as a JSON number of the given schema type. Integers are
// returned as int64, everything else as float64.
func number(s, typ string) (any, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, false
	}

	if typ == typeInteger && f == math.Trunc(f) {
		return int64(f), true
	}

	return f, true
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	return b
}

// CheckValues validates a YAML (or JSON) document mapping parameter names
// to values against s.
func CheckValues(s *jsonschema.Schema, content []byte) error {
	var raw any

	err := yaml.Unmarshal(content, &raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValues, err)
	}

	// Normalize YAML scalars to JSON types.
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValues, err)
	}

	var instance any

	err = json.Unmarshal(b, &instance)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValues, err)
	}

	// Validate against a copy without the $schema keyword: the draft is
	// only advertised to consumers of the generated file.
	check := *s
	check.Schema = ""

	resolved, err := check.Resolve(nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	err = resolved.Validate(instance)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValues, err)
	}

	return nil
}
