// Package cmd provides the CLI command for minigrep.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/minigrep/configs"
	"github.com/Aman-CERP/minigrep/internal/config"
	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/logging"
	"github.com/Aman-CERP/minigrep/internal/profiling"
	"github.com/Aman-CERP/minigrep/internal/runner"
	"github.com/Aman-CERP/minigrep/pkg/version"
)

// rootOptions holds CLI flags.
type rootOptions struct {
	ignoreCase  bool
	debug       bool
	logLevel    string
	printConfig bool
	profile     profiling.Options
}

// NewRootCmd creates the root command reading the process environment.
func NewRootCmd() *cobra.Command {
	return newRootCmd(config.ProcessEnv)
}

// newRootCmd creates the root command with an injected environment lookup.
func newRootCmd(env config.LookupFunc) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "minigrep [flags] <query> <file>",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep reads a file and prints every line containing the query,
in file order, with no decoration.

Matching is case-sensitive unless the CASE_INSENSITIVE environment
variable is set (to any value) or --ignore-case is given.

Examples:
  minigrep to poem.txt
  CASE_INSENSITIVE=1 minigrep to poem.txt
  minigrep -i -- -flag notes.txt`,
		Version:       version.Short(),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.printConfig {
				_, err := fmt.Fprint(cmd.OutOrStdout(), configs.UserConfigTemplate)
				return err
			}
			return runSearch(cmd, args, env, opts)
		},
	}

	cmd.SetVersionTemplate(version.String() + "\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return mgerrors.UsageError(mgerrors.ErrCodeInvalidFlag, err.Error())
	})

	cmd.Flags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "Match case-insensitively (same as setting CASE_INSENSITIVE)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging to ~/.minigrep/logs/")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Stderr log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&opts.printConfig, "print-config", false, "Print an annotated settings file and exit")

	cmd.Flags().StringVar(&opts.profile.CPU, "profile-cpu", "", "Write CPU profile to file")
	cmd.Flags().StringVar(&opts.profile.Heap, "profile-mem", "", "Write memory profile to file")
	cmd.Flags().StringVar(&opts.profile.Trace, "profile-trace", "", "Write execution trace to file")

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// runSearch resolves the configuration, sets up logging and profiling, and
// hands off to the runner. Positional args arrive without the program name.
// Usage errors are reported before settings, log files or profiles are touched.
func runSearch(cmd *cobra.Command, args []string, env config.LookupFunc, opts rootOptions) (err error) {
	argv := append([]string{cmd.Name()}, args...)
	cfg, err := config.Resolve(argv, env, config.WithIgnoreCase(opts.ignoreCase))
	if err != nil {
		return err
	}

	settings, err := config.LoadSettings(env)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		settings.LogLevel = opts.logLevel
		if err := settings.Validate(); err != nil {
			return mgerrors.UsageError(mgerrors.ErrCodeInvalidFlag, err.Error())
		}
	}

	restoreLogging, err := setupLogging(cmd.ErrOrStderr(), settings, opts.debug)
	if err != nil {
		return err
	}
	defer restoreLogging()

	session, err := profiling.Start(opts.profile)
	if err != nil {
		return mgerrors.InternalError("failed to start profiling", err)
	}
	defer func() {
		if stopErr := session.Stop(); stopErr != nil && err == nil {
			err = mgerrors.InternalError("failed to write profiles", stopErr)
		}
	}()
	if opts.profile.Enabled() {
		slog.Debug("profiling_started",
			slog.String("cpu", opts.profile.CPU),
			slog.String("heap", opts.profile.Heap),
			slog.String("trace", opts.profile.Trace))
	}

	slog.Debug("search_started",
		slog.String("query", cfg.Query),
		slog.String("file", cfg.FilePath),
		slog.Bool("case_sensitive", cfg.CaseSensitive))

	if _, err := runner.Run(cmd.Context(), cfg, cmd.OutOrStdout()); err != nil {
		slog.Debug("search_failed", mgerrors.FormatForLog(err)...)
		return err
	}
	return nil
}

// setupLogging installs the default slog logger for this run and returns a
// function restoring the previous one.
func setupLogging(stderr io.Writer, settings config.Settings, debug bool) (func(), error) {
	previous := slog.Default()

	if !debug {
		slog.SetDefault(logging.NewConsole(stderr, settings.LogLevel))
		return func() { slog.SetDefault(previous) }, nil
	}

	logCfg := logging.DebugConfig()
	if settings.LogFile != "" {
		logCfg.FilePath = settings.LogFile
	}
	logCfg.MaxSizeMB = settings.LogMaxSizeMB
	logCfg.MaxBackups = settings.LogMaxBackups
	logCfg.WriteToStderr = settings.LogToStderr

	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return nil, mgerrors.InternalError(fmt.Sprintf("failed to setup debug logging at %s", logCfg.FilePath), err)
	}
	slog.SetDefault(logger)
	slog.Info("Debug logging enabled",
		slog.String("log_file", logCfg.FilePath),
		slog.String("version", version.Short()))

	return func() {
		slog.Info("Debug logging stopped")
		cleanup()
		slog.SetDefault(previous)
	}, nil
}
