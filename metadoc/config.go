package metadoc

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for metadata extraction, allowing callers to
// customize flag names while keeping sensible defaults.
type Flags struct {
	Output     string
	Format     string
	FailFast   string
	NoValidate string
	TwoPass    string
}

// Config holds CLI flag values for metadata extraction.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewSession] to create a [Session].
type Config struct {
	Flags Flags
	// Formats lists the output formats offered as completions.
	Formats    []string
	Output     string
	Format     string
	FailFast   bool
	NoValidate bool
	TwoPass    bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Output:     "output",
		Format:     "format",
		FailFast:   "fail-fast",
		NoValidate: "no-validate",
		TwoPass:    "two-pass",
	}

	return &Config{Flags: f, TwoPass: true}
}

// RegisterFlags adds extraction flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
	flags.StringVarP(&c.Format, c.Flags.Format, "f", "yaml",
		"output format")
	flags.BoolVar(&c.FailFast, c.Flags.FailFast, false,
		"stop validation at the first violation")
	flags.BoolVar(&c.NoValidate, c.Flags.NoValidate, false,
		"skip cross-record validation")
	flags.BoolVar(&c.TwoPass, c.Flags.TwoPass, true,
		"collect default overrides from all files before parsing declarations")
}

// RegisterCompletions registers shell completions for extraction flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(c.Formats, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	return nil
}

// NewSession creates a [Session] for dialect d using this [Config].
func (c *Config) NewSession(d Dialect, logger *slog.Logger) *Session {
	opts := []Option{WithFailFast(c.FailFast)}

	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}

	return NewSession(d, opts...)
}

// Load parses sources into s, in one or two passes depending on
// [Config.TwoPass]. It stops at the first file that fails.
func (c *Config) Load(s *Session, sources []Source) error {
	if c.TwoPass {
		return s.ParseAll(sources)
	}

	for _, src := range sources {
		err := s.Parse(src.Path, src.Content)
		if err != nil {
			return err
		}
	}

	return nil
}
