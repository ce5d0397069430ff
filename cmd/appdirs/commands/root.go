// Package commands implements the CLI commands for appdirs.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/appdirs/cmd"
	"github.com/thoreinstein/appdirs/internal/config"
	"github.com/thoreinstein/appdirs/internal/errors"
	"github.com/thoreinstein/appdirs/internal/logging"
	"github.com/thoreinstein/appdirs/pkg/appdirs"
)

// Identity flags shared by every subcommand.
var (
	authorFlag     string
	appVersionFlag string
	roamingFlag    bool
	platformFlag   string
	opinionFlag    bool
)

// Logging and config flags.
var (
	verbosity  int
	quiet      bool
	logFormat  string
	logFile    string
	configFile string
)

// cfg holds the loaded configuration; configLoadErr any error from
// loading it, reported on first command run.
var (
	cfg           *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&authorFlag, "author", "",
		"author or organization path segment (Windows and macOS only)")
	pf.StringVar(&appVersionFlag, "app-version", "",
		`version appended as the final path segment, e.g. "1.2"`)
	pf.BoolVar(&roamingFlag, "roaming", false,
		"use the Windows roaming app-data root for user data")
	pf.StringVar(&platformFlag, "platform", "",
		"force a platform: windows, darwin, unix (default: host)")
	pf.BoolVar(&opinionFlag, "opinion", true,
		"append the conventional Cache/Logs/log segments to cache and log dirs")
	pf.CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	pf.BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	pf.StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	pf.StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	pf.StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml, then the user config dir)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("appdirs version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "appdirs",
	Short: "Resolve standard application directories for any platform",
	Long: `appdirs resolves the standard per-OS filesystem locations for a named
application: user and system-wide data, config, cache, state, and log
directories.

Paths follow each platform's documented conventions: the XDG Base
Directory Specification on Unix-likes, ~/Library on macOS, and the
known-folder system on Windows. Environment overrides like
$XDG_DATA_HOME are honored. Nothing is created on disk; the tool only
computes paths.

Use --platform to resolve for a platform other than the host, for
example to preview the Windows layout from a Linux machine.`,
	Example: `  # All directories for an application
  appdirs list SuperApp --author Acme

  # Just the user config dir, for scripting
  appdirs show user-config SuperApp

  # Preview XDG-style paths regardless of host OS
  appdirs list SuperApp --platform unix

  # Versioned layout
  appdirs list SuperApp --app-version 1.2`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if configLoadErr != nil {
			return errors.NewUserError(configLoadErr, "Check your config file syntax")
		}
		applyConfigDefaults(cmd)
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("APPDIRS_DEBUG"); ok && (val == "1" || val == "true") {
				v = 1
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primary slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primary = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primary = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primary}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// applyConfigDefaults fills identity flags from the config file for flags
// the user did not pass explicitly. Flags always win.
func applyConfigDefaults(cmd *cobra.Command) {
	if cfg == nil {
		return
	}
	f := cmd.Flags()
	if !f.Changed("author") && cfg.Author != "" {
		authorFlag = cfg.Author
	}
	if !f.Changed("roaming") {
		roamingFlag = cfg.Roaming
	}
	if !f.Changed("opinion") {
		opinionFlag = cfg.Opinion
	}
	if !f.Changed("platform") && cfg.Platform != "" {
		platformFlag = cfg.Platform
	}
}

// newAppDirs builds a resolver for the given application name from the
// identity flags.
func newAppDirs(name string) (*appdirs.AppDirs, error) {
	a := appdirs.New().
		SetName(name).
		SetAuthor(authorFlag).
		SetVersion(appVersionFlag).
		SetRoaming(roamingFlag)

	if platformFlag != "" {
		p, err := parsePlatform(platformFlag)
		if err != nil {
			return nil, err
		}
		a.SetPlatform(p)
	}
	return a, nil
}

// parsePlatform maps a --platform flag value to a Platform.
func parsePlatform(name string) (appdirs.Platform, error) {
	switch name {
	case "windows":
		return appdirs.Windows, nil
	case "darwin", "macos":
		return appdirs.Darwin, nil
	case "unix", "linux", "xdg":
		return appdirs.XDGUnix, nil
	default:
		err := errors.Wrapf(errors.ErrUnknownPlatform, "%q (valid: windows, darwin, unix)", name)
		return 0, errors.NewUserError(err, "Run 'appdirs --help' to see valid platforms")
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
