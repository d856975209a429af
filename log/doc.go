// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports three output formats ([FormatJSON], [FormatLogfmt], and
// [FormatText]) and four severity levels. [FormatText] renders through
// charm.land/log and is the default on terminals; elsewhere the default is
// [FormatLogfmt].
//
// Typical usage creates a [Config], registers flags, then builds a logger
// at startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	logger, err := cfg.NewLogger(os.Stderr)
//	session := metadoc.NewSession(params.New(), metadoc.WithLogger(logger))
//
// Diagnostics about rejected inputs are logged at error level, one line
// each.
package log
