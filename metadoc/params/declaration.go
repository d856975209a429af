package params

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

const (
	definePrefix    = "PARAM_DEFINE_"
	px4DefinePrefix = "PX4_PARAM_DEFINE_"
	overridePrefix  = "PARAM_"

	// DefaultSuffix is appended to a parameter name to find its default in
	// the session defaults table.
	DefaultSuffix = "_DEFAULT"
)

var (
	numberPrefixExpr  = regexp.MustCompile(`^-?[0-9.]`)
	typeSpecifierExpr = regexp.MustCompile(`[a-z]+$`)
	identExpr         = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)

	declLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Define", Pattern: `#define`},
		{Name: "Head", Pattern: `[A-Za-z0-9_]+\s*\(`},
		{Name: "Punct", Pattern: `[,);]`},
		{Name: "Value", Pattern: `[^\s,)]+`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	declParser = participle.MustBuild[declLine](
		participle.Lexer(declLexer),
		participle.Elide("Whitespace"),
	)
)

// declLine is a source line that either defines a default override or
// declares a parameter.
type declLine struct {
	Define *defineDirective `parser:"  @@"`
	Macro  *macroCall       `parser:"| @@"`
}

// defineDirective is "#define PARAM_<SYMBOL> <value>".
type defineDirective struct {
	Symbol string `parser:"Define @Value"`
	Value  string `parser:"@Value"`
}

// macroCall is "<MACRO>(<NAME>[, <default>]);". Head includes the opening
// parenthesis.
type macroCall struct {
	Head string   `parser:"@Head"`
	Name string   `parser:"@Value"`
	Args []string `parser:"( \",\" @Value )* \")\" \";\""`
}

// Override is a default-value override directive.
type Override struct {
	Symbol string
	Value  string
}

// Declaration is a parameter declaration.
type Declaration struct {
	Type    string
	Name    string
	Default string
	// Indirect is set when the default comes from the defaults table.
	Indirect bool
}

// Match classifies a line outside a comment block. At most one of the
// results is non-nil.
func Match(line string) (*Override, *Declaration) {
	parsed, err := declParser.ParseString("", line, participle.AllowTrailing(true))
	if err != nil {
		return nil, nil
	}

	switch {
	case parsed.Define != nil:
		symbol, ok := strings.CutPrefix(parsed.Define.Symbol, overridePrefix)
		if !ok || !identExpr.MatchString(symbol) {
			return nil, nil
		}

		return &Override{Symbol: symbol, Value: parsed.Define.Value}, nil

	case parsed.Macro != nil:
		return nil, matchMacro(parsed.Macro)
	}

	return nil, nil
}

func matchMacro(m *macroCall) *Declaration {
	macro := strings.TrimSpace(strings.TrimSuffix(m.Head, "("))
	if !identExpr.MatchString(m.Name) {
		return nil
	}

	if typ, ok := strings.CutPrefix(macro, px4DefinePrefix); ok {
		if !identExpr.MatchString(typ) || len(m.Args) != 0 {
			return nil
		}

		return &Declaration{Type: typ, Name: m.Name, Indirect: true}
	}

	if typ, ok := strings.CutPrefix(macro, definePrefix); ok {
		if !identExpr.MatchString(typ) || len(m.Args) != 1 {
			return nil
		}

		return &Declaration{Type: typ, Name: m.Name, Default: m.Args[0]}
	}

	return nil
}

// NormalizeDefault strips a trailing type suffix from numeric literals, so
// "0.1f" becomes "0.1". Other values are returned unchanged.
func NormalizeDefault(value string) string {
	if value == "" || !numberPrefixExpr.MatchString(value) {
		return value
	}

	return typeSpecifierExpr.ReplaceAllString(value, "")
}
