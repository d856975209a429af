// Package main provides the CLI entry point for metadoc, a tool that
// extracts parameter and airframe metadata from annotated firmware sources.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/px4meta/log"
	"go.jacobcolvin.com/px4meta/metadoc"
	"go.jacobcolvin.com/px4meta/metadoc/airframes"
	"go.jacobcolvin.com/px4meta/metadoc/export"
	"go.jacobcolvin.com/px4meta/metadoc/params"
	"go.jacobcolvin.com/px4meta/metadoc/schema"
	"go.jacobcolvin.com/px4meta/version"
)

const formatSchema = "schema"

// ErrValidation indicates that cross-record validation failed.
var ErrValidation = errors.New("validation failed")

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	logCfg := log.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "metadoc",
		Short: "Extract metadata from annotated firmware sources",
		Long: `metadoc reads C/C++ sources and airframe scripts, parses their structured
documentation comments, validates the result and renders it as YAML, JSON or
(for parameters) a JSON Schema.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	completionErr := logCfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	rootCmd.AddCommand(
		newParamsCmd(logCfg),
		newAirframesCmd(logCfg),
		version.NewCommand(rootCmd.Name()),
	)

	return rootCmd
}

func newParamsCmd(logCfg *log.Config) *cobra.Command {
	cfg := metadoc.NewConfig()
	cfg.Formats = append(export.Formats(), formatSchema)

	var values string

	cmd := &cobra.Command{
		Use:   "params [flags] <path> [path ...]",
		Short: "Extract parameter definitions from C/C++ sources",
		Long: `params parses the /** ... */ comments preceding PARAM_DEFINE_* and
PX4_PARAM_DEFINE_* declarations. Directories are searched recursively for
.c and .cpp files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, logCfg, cfg, params.New(), values, args)
		},
	}

	cfg.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVar(&values, "values", "",
		"YAML file of parameter values to check against the generated schema")

	registerCompletions(cmd, cfg)

	return cmd
}

func newAirframesCmd(logCfg *log.Config) *cobra.Command {
	cfg := metadoc.NewConfig()
	cfg.Formats = export.Formats()

	cmd := &cobra.Command{
		Use:   "airframes [flags] <path> [path ...]",
		Short: "Extract airframe descriptions from startup scripts",
		Long: `airframes parses the # comment header of airframe startup scripts named
<id>_<name>. Directories are searched recursively for files without an
extension and .hil files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, logCfg, cfg, airframes.New(), "", args)
		},
	}

	cfg.RegisterFlags(cmd.Flags())
	registerCompletions(cmd, cfg)

	return cmd
}

func registerCompletions(cmd *cobra.Command, cfg *metadoc.Config) {
	err := cfg.RegisterCompletions(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}
}

func run(
	cmd *cobra.Command,
	logCfg *log.Config,
	cfg *metadoc.Config,
	d metadoc.Dialect,
	values string,
	args []string,
) error {
	logger, err := logCfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if values != "" && cfg.Format != formatSchema {
		return fmt.Errorf("%w: --values requires --%s=%s",
			metadoc.ErrInvalidOption, cfg.Flags.Format, formatSchema)
	}

	sources, err := metadoc.ReadSources(args, d.Extensions())
	if err != nil {
		return err
	}

	s := cfg.NewSession(d, logger)

	err = cfg.Load(s, sources)
	if err != nil {
		return err
	}

	if !cfg.NoValidate {
		report := s.Validate()
		if !report.OK() {
			return fmt.Errorf("%w: %w", ErrValidation, report.First())
		}
	}

	var buf bytes.Buffer

	err = render(&buf, s, cfg.Format, values)
	if err != nil {
		return err
	}

	return write(cmd.OutOrStdout(), cfg.Output, buf.Bytes())
}

func render(w io.Writer, s *metadoc.Session, format, values string) error {
	if format == formatSchema {
		if s.Dialect().Name() != params.New().Name() {
			return fmt.Errorf("%w: %q", export.ErrUnknownFormat, format)
		}

		return renderSchema(w, s, values)
	}

	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}

	var opts []export.BuildOption
	if s.Dialect().Name() == airframes.New().Name() {
		opts = append(opts, export.WithImages(airframes.ImageName))
	}

	return export.Write(w, export.Build(s, opts...), f)
}

func renderSchema(w io.Writer, s *metadoc.Session, values string) error {
	js := schema.Generate(s, schema.WithTitle("parameters"), schema.WithStrict(values != ""))

	if values != "" {
		data, err := os.ReadFile(values)
		if err != nil {
			return fmt.Errorf("%w: %w", metadoc.ErrReadInput, err)
		}

		err = schema.CheckValues(js, data)
		if err != nil {
			return fmt.Errorf("%s: %w", values, err)
		}
	}

	out, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", metadoc.ErrWriteOutput, err)
	}

	out = append(out, '\n')

	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("%w: %w", metadoc.ErrWriteOutput, err)
	}

	return nil
}

func write(stdout io.Writer, output string, out []byte) error {
	if output == "" || output == "-" {
		_, err := stdout.Write(out)
		if err != nil {
			return fmt.Errorf("%w: %w", metadoc.ErrWriteOutput, err)
		}

		return nil
	}

	err := os.WriteFile(output, out, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", metadoc.ErrWriteOutput, err)
	}

	return nil
}
