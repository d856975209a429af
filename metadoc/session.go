package metadoc

import (
	"errors"
	"fmt"
	"log/slog"
)

// Source is one input file.
type Source struct {
	Path    string
	Content []byte
}

// Session accumulates the groups parsed from a set of files of one
// [Dialect], together with the default-value table shared by those files.
//
// Parsing is sequential: a default-override directive only reaches
// declarations parsed after it, unless [Session.ParseAll] (or an explicit
// [Session.Collect] pass) is used.
//
// Create instances with [NewSession].
type Session struct {
	dialect  Dialect
	logger   *slog.Logger
	defaults *Defaults
	groups   map[string]*Group
	failFast bool
}

// Option configures a [Session].
type Option func(*Session)

// WithLogger sets the logger that receives diagnostics. The default is
// [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithFailFast makes [Session.Validate] stop at the first violation.
func WithFailFast(failFast bool) Option {
	return func(s *Session) {
		s.failFast = failFast
	}
}

// NewSession creates an empty [Session] for dialect d.
func NewSession(d Dialect, opts ...Option) *Session {
	s := &Session{
		dialect:  d,
		logger:   slog.Default(),
		defaults: NewDefaults(),
		groups:   make(map[string]*Group),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Dialect returns the session's dialect.
func (s *Session) Dialect() Dialect {
	return s.dialect
}

// Defaults returns the session's default-value table.
func (s *Session) Defaults() *Defaults {
	return s.defaults
}

// Parse parses one file and adds its parameters to the session. A file
// that fails to parse contributes no parameters.
func (s *Session) Parse(path string, content []byte) error {
	params, err := s.parse(path, content, false)
	if errors.Is(err, ErrSkipFile) {
		s.logger.Debug("skip file", slog.String("path", path))

		return nil
	}

	if err != nil {
		return s.reject(path, err)
	}

	for _, p := range params {
		s.add(p)
	}

	s.logger.Debug("parsed file",
		slog.String("path", path),
		slog.Int("parameters", len(params)),
	)

	return nil
}

// Collect scans one file for default-override directives only. No
// parameter is added and parse errors are ignored.
func (s *Session) Collect(path string, content []byte) {
	_, err := s.parse(path, content, true)
	if err != nil && !errors.Is(err, ErrSkipFile) {
		s.logger.Debug("collect defaults",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
}

// ParseAll collects the default-override directives of every source, then
// parses each source in order. It stops at the first file that fails.
func (s *Session) ParseAll(sources []Source) error {
	for _, src := range sources {
		s.Collect(src.Path, src.Content)
	}

	for _, src := range sources {
		err := s.Parse(src.Path, src.Content)
		if err != nil {
			return err
		}
	}

	return nil
}

// Groups returns the session's groups in display order, with display names
// resolved.
func (s *Session) Groups() []*Group {
	groups := make([]*Group, 0, len(s.groups))
	for _, g := range s.groups {
		groups = append(groups, g)
	}

	orderGroups(groups, s.dialect.GroupPriority())

	return groups
}

// Len returns the number of parameters in the session.
func (s *Session) Len() int {
	n := 0
	for _, g := range s.groups {
		n += g.Len()
	}

	return n
}

// Validate runs the dialect's cross-record checks over the whole session.
// Each violation is also logged at error level.
func (s *Session) Validate() *Report {
	r := &Report{failFast: s.failFast}
	s.dialect.Validate(s.Groups(), r)

	for _, d := range r.Violations {
		s.logger.Error(d.Message, slog.String("name", d.Name))
	}

	return r
}

// parse runs the scanner over one file. In collect mode, binder errors and
// parameters are discarded so that only side effects on the default table
// remain.
func (s *Session) parse(path string, content []byte, collect bool) ([]*Parameter, error) {
	binder, err := s.dialect.Open(path, s.defaults)
	if err != nil {
		return nil, err
	}

	var params []*Parameter

	sc := newScanner(s.dialect.Syntax(), s.dialect.Vocabulary())

	err = sc.Scan(SplitLines(string(content)), func(line string, pending *Comment) error {
		p, declErr := binder.Declare(line, pending)
		if collect {
			return nil
		}

		if declErr != nil {
			return declErr
		}

		if p != nil {
			params = append(params, p)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if collect {
		return nil, nil
	}

	var fileComment *Comment
	if s.dialect.Syntax().FileScoped {
		fileComment = sc.FileComment()
	}

	p, err := binder.Close(fileComment)
	if err != nil {
		return nil, err
	}

	if p != nil {
		params = append(params, p)
	}

	return params, nil
}

func (s *Session) add(p *Parameter) {
	key := p.groupKey()

	g, ok := s.groups[key]
	if !ok {
		g = newGroup(p.Group, p.Class, s.dialect.Compare)
		s.groups[key] = g
	}

	g.add(p)
}

func (s *Session) reject(path string, err error) error {
	var d *Diagnostic
	if errors.As(err, &d) && d.Path == "" {
		d.Path = path
	}

	s.logger.Error(err.Error(), slog.String("path", path))

	return fmt.Errorf("%s: %w", path, err)
}
