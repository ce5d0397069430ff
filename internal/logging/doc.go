// Package logging provides structured logging for the appdirs CLI using
// slog.
//
// Text output goes through a TTY-aware handler that colorizes levels and
// attribute keys when the destination supports it; JSON output uses the
// standard slog JSON handler. A MultiHandler fans records out to several
// destinations, which the CLI uses for simultaneous stderr and log-file
// output.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("resolved", "kind", "data", "path", dir)
//
// # Testing
//
// [ForTest] returns a logger whose output lands in the test log, so it is
// shown only on failure or with -v.
package logging
