package metadoc_test

import (
	"cmp"
	"fmt"
	"regexp"
	"strings"

	"go.jacobcolvin.com/px4meta/metadoc"
)

// fixture is a minimal dialect: "/** ... */" blocks document "DECL <name>"
// lines, and "SET <symbol> <value>" lines record defaults.
type fixture struct {
	comments map[string]*metadoc.Comment
	syntax   metadoc.Syntax
}

var fixtureVocabulary = metadoc.Vocabulary{
	"group": metadoc.TagAttr,
	"class": metadoc.TagAttr,
	"min":   metadoc.TagField,
	"max":   metadoc.TagField,
	"value": metadoc.TagMulti,
	"flag":  metadoc.TagFlag,
}

func newFixture() *fixture {
	return &fixture{
		comments: make(map[string]*metadoc.Comment),
		syntax: metadoc.Syntax{
			Open:          regexp.MustCompile(`^/\*\*`),
			Content:       regexp.MustCompile(`^\*\s*(.*)`),
			Close:         regexp.MustCompile(`(.*?)\s*\*/`),
			ReopenInBlock: true,
		},
	}
}

func (f *fixture) Name() string                    { return "fixture" }
func (f *fixture) Syntax() metadoc.Syntax          { return f.syntax }
func (f *fixture) Vocabulary() metadoc.Vocabulary  { return fixtureVocabulary }
func (f *fixture) Extensions() []string            { return []string{".fix"} }
func (f *fixture) GroupPriority() metadoc.Priority { return metadoc.Priority{"Misc": -10} }

func (f *fixture) Open(path string, defaults *metadoc.Defaults) (metadoc.Binder, error) {
	if strings.HasSuffix(path, ".skip") {
		return nil, fmt.Errorf("%w: %s", metadoc.ErrSkipFile, path)
	}

	return &fixtureBinder{f: f, defaults: defaults}, nil
}

func (f *fixture) Compare(a, b *metadoc.Parameter) int {
	return cmp.Compare(a.Name, b.Name)
}

func (f *fixture) Validate(groups []*metadoc.Group, r *metadoc.Report) {
	seen := make(map[string]bool)

	for _, g := range groups {
		for _, p := range g.Parameters() {
			if seen[p.Name] {
				d := metadoc.Diagnosef(metadoc.ErrDuplicate, "Duplicate parameter definition: %s", p.Name)
				if !r.Add(d.WithName(p.Name)) {
					return
				}
			}

			seen[p.Name] = true
		}
	}
}

type fixtureBinder struct {
	f        *fixture
	defaults *metadoc.Defaults
}

func (b *fixtureBinder) Declare(line string, c *metadoc.Comment) (*metadoc.Parameter, error) {
	if rest, ok := strings.CutPrefix(line, "SET "); ok {
		symbol, value, _ := strings.Cut(rest, " ")
		b.defaults.Set(symbol, value)

		return nil, nil
	}

	name, ok := strings.CutPrefix(line, "DECL ")
	if !ok {
		return nil, nil
	}

	if name == "BAD" {
		return nil, metadoc.Diagnosef(metadoc.ErrInvalidTag, "Skipping invalid documentation tag: '%s'", "bad")
	}

	b.f.comments[name] = c

	p := metadoc.NewParameter(name, "INT32", nil)
	p.Group = "Misc"
	p.Default, _ = b.defaults.Lookup(name)

	if c == nil {
		return p, nil
	}

	if g, ok := c.Tag("group"); ok {
		p.Group = g
	}

	if class, ok := c.Tag("class"); ok {
		p.Class = class
	}

	return p, nil
}

func (b *fixtureBinder) Close(_ *metadoc.Comment) (*metadoc.Parameter, error) {
	return nil, nil
}
