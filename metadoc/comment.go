package metadoc

import "strings"

// Tag is a single "@name value" directive of a [Comment].
type Tag struct {
	Name  string
	Value string
}

// Comment is a documentation record collected from one comment block (or,
// for file-scoped syntaxes, from every block of a file).
type Comment struct {
	index     map[string]int
	multi     map[string]map[string]string
	malformed map[string]bool

	// Short is the short description, or empty when absent.
	Short string
	// Long is the long description, or empty when absent.
	Long string

	tags  []Tag
	order []string

	// Most recently opened tag, for continuation lines.
	lastTag string
	lastKey string
}

func newComment() *Comment {
	return &Comment{
		index:     make(map[string]int),
		multi:     make(map[string]map[string]string),
		malformed: make(map[string]bool),
	}
}

// Tags returns the ordinary tags in the order they first appeared.
func (c *Comment) Tags() []Tag {
	return c.tags
}

// Tag returns the value of the named ordinary tag.
func (c *Comment) Tag(name string) (string, bool) {
	i, ok := c.index[name]
	if !ok {
		return "", false
	}

	return c.tags[i].Value, true
}

// Multi returns the sub-key to sub-value map of a multi-valued tag. The
// returned map is nil when the tag never appeared.
func (c *Comment) Multi(name string) map[string]string {
	return c.multi[name]
}

// Check returns the name of the first tag (in source order) that is not
// part of v, or that is multi-valued but lacks a sub-key. It returns false
// when every tag is acceptable.
func (c *Comment) Check(v Vocabulary) (string, bool) {
	for _, name := range c.order {
		if _, ok := v.Kind(name); !ok {
			return name, true
		}

		if c.malformed[name] {
			return name, true
		}
	}

	return "", false
}

// resetDescriptions clears the short and long descriptions.
func (c *Comment) resetDescriptions() {
	c.Short = ""
	c.Long = ""
}

// addTag records a tag directive. Multi-valued tags split rest on the first
// space into a sub-key and sub-value.
func (c *Comment) addTag(name, rest string, v Vocabulary) {
	if _, seen := c.index[name]; !seen && c.multi[name] == nil && !c.malformed[name] {
		c.order = append(c.order, name)
	}

	c.lastTag = name
	c.lastKey = ""

	if !v.IsMulti(name) {
		if i, ok := c.index[name]; ok {
			c.tags[i].Value = rest

			return
		}

		c.index[name] = len(c.tags)
		c.tags = append(c.tags, Tag{Name: name, Value: rest})

		return
	}

	key, value, ok := strings.Cut(rest, " ")
	if !ok {
		c.malformed[name] = true

		return
	}

	if c.multi[name] == nil {
		c.multi[name] = make(map[string]string)
	}

	c.multi[name][key] = value
	c.lastKey = key
}

// appendTag appends a continuation line to the most recently opened tag.
func (c *Comment) appendTag(content string) {
	if c.lastKey != "" {
		c.multi[c.lastTag][c.lastKey] += "\n" + content

		return
	}

	i, ok := c.index[c.lastTag]
	if !ok {
		// Continuation of a malformed multi-valued tag.
		return
	}

	c.tags[i].Value += "\n" + content
}
