// Package errors provides error handling conventions for the appdirs CLI.
//
// It defines sentinel errors for common failure conditions, an ExitError
// type carrying a process exit code and an optional suggestion, and thin
// re-exports of the cockroachdb/errors helpers so command code imports a
// single errors package.
//
// # Sentinel Errors
//
// Callers check for specific conditions with [Is]:
//
//	if errors.Is(err, errors.ErrUnknownKind) {
//	    // handle bad kind argument
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): command completed successfully
//   - ExitUser (1): user error (bad flag, unknown kind, bad config)
//   - ExitSystem (2): system error (folder resolution, I/O)
//
// main unwraps [ExitError] via [As] to pick the process exit code and
// print the suggestion when present.
package errors
