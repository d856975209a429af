package metadoc

import "fmt"

// State is a state of the comment scanner.
type State int

// Scanner states. The zero value is [StateIdle].
const (
	StateIdle State = iota
	StateWaitShort
	StateWaitShortEnd
	StateWaitLong
	StateWaitLongEnd
	StateWaitTagEnd
	StateCommentProcessed

	numStates
)

var stateNames = [numStates]string{
	StateIdle:             "idle",
	StateWaitShort:        "wait-short",
	StateWaitShortEnd:     "wait-short-end",
	StateWaitLong:         "wait-long",
	StateWaitLongEnd:      "wait-long-end",
	StateWaitTagEnd:       "wait-tag-end",
	StateCommentProcessed: "comment-processed",
}

func (s State) String() string {
	if s < 0 || s >= numStates {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return stateNames[s]
}

// InBlock reports whether s is one of the states inside an open block.
func (s State) InBlock() bool {
	return s >= StateWaitShort && s <= StateWaitTagEnd
}

// contentHandler consumes a non-empty, non-tag content line and returns the
// next state.
type contentHandler func(c *Comment, content string) State

var contentHandlers = [numStates]contentHandler{
	StateWaitShort: func(c *Comment, content string) State {
		c.Short = content

		return StateWaitShortEnd
	},
	StateWaitShortEnd: func(c *Comment, content string) State {
		c.Short += "\n" + content

		return StateWaitShortEnd
	},
	StateWaitLong: func(c *Comment, content string) State {
		c.Long = content

		return StateWaitLongEnd
	},
	StateWaitLongEnd: func(c *Comment, content string) State {
		c.Long += "\n" + content

		return StateWaitLongEnd
	},
	StateWaitTagEnd: func(c *Comment, content string) State {
		c.appendTag(content)

		return StateWaitTagEnd
	},
}

func init() {
	for s := range numStates {
		if s.InBlock() != (contentHandlers[s] != nil) {
			panic(fmt.Sprintf("metadoc: content handler table out of sync for state %s", s))
		}
	}
}

// visitFunc receives a line outside any comment block. pending is the
// record of the block closed on the previous line, or nil.
type visitFunc func(line string, pending *Comment) error

// scanner runs the comment state machine over the lines of one file.
type scanner struct {
	comment *Comment
	vocab   Vocabulary
	syntax  Syntax
	state   State
}

func newScanner(syntax Syntax, vocab Vocabulary) *scanner {
	return &scanner{
		syntax: syntax,
		vocab:  vocab,
	}
}

// Scan runs the state machine over lines, calling visit for every line
// outside a comment block. It stops at the first error returned by visit.
func (s *scanner) Scan(lines []string, visit visitFunc) error {
	for _, line := range lines {
		if s.syntax.Open.MatchString(line) && (s.state == StateIdle || s.syntax.ReopenInBlock) {
			s.open()

			if !s.syntax.OpenIsContent {
				continue
			}
		}

		if s.state.InBlock() {
			s.block(line)

			continue
		}

		var pending *Comment
		if s.state == StateCommentProcessed {
			pending = s.comment
		}

		s.state = StateIdle

		err := visit(line, pending)
		if err != nil {
			return err
		}
	}

	return nil
}

// FileComment returns the record accumulated over the whole file for
// file-scoped syntaxes. It never returns nil.
func (s *scanner) FileComment() *Comment {
	if s.comment == nil {
		return newComment()
	}

	return s.comment
}

func (s *scanner) open() {
	s.state = StateWaitShort

	if s.syntax.FileScoped && s.comment != nil {
		s.comment.resetDescriptions()

		return
	}

	s.comment = newComment()
}

// block handles one line while a block is open.
func (s *scanner) block(line string) {
	ends := false

	if s.syntax.Close != nil {
		m := s.syntax.Close.FindStringSubmatch(line)
		if m != nil {
			line = m[1]
			ends = true
		}
	}

	m := s.syntax.Content.FindStringSubmatch(line)

	switch {
	case m != nil:
		s.content(m[1])
	case !ends:
		// Malformed block: drop everything buffered for it.
		s.state = StateIdle

		if !s.syntax.FileScoped {
			s.comment = nil
		}

		return
	}

	if ends {
		s.state = StateCommentProcessed
	}
}

func (s *scanner) content(content string) {
	if content == "" {
		if s.state == StateWaitShortEnd {
			s.state = StateWaitLong
		}

		return
	}

	m := tagExpr.FindStringSubmatch(content)
	if m != nil {
		s.comment.addTag(m[1], m[2], s.vocab)
		s.state = StateWaitTagEnd

		return
	}

	s.state = contentHandlers[s.state](s.comment, content)
}
