package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewUserError(ErrUnknownKind, "see appdirs show --help"),
			want: "unknown directory kind",
		},
		{
			name: "with wrapped error",
			err:  NewUserError(fmt.Errorf("loading config: %w", ErrInvalidConfig), ""),
			want: "loading config: invalid configuration",
		},
		{
			name: "nil underlying error",
			err:  &ExitError{Code: ExitSystem},
			want: "exit code 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	err := NewSystemError(fmt.Errorf("resolving folder: %w", ErrUnknownPlatform), "")

	if !errors.Is(err, ErrUnknownPlatform) {
		t.Error("errors.Is did not find the wrapped sentinel")
	}
	if errors.Is(err, ErrUnknownKind) {
		t.Error("errors.Is matched an unrelated sentinel")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"user error", NewUserError(ErrUnknownKind, ""), ExitUser},
		{"system error", NewSystemError(ErrUnknownPlatform, ""), ExitSystem},
		{"wrapped exit error", fmt.Errorf("run: %w", NewSystemError(nil, "")), ExitSystem},
		{"plain error", errors.New("boom"), ExitUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
