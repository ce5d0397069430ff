package appdirs

import "os"

// Environment provides read-only access to process environment variables
// and the user's home directory. Lookup must distinguish an unset variable
// from one set to the empty string; only absence triggers the documented
// fallbacks, never the empty string itself.
type Environment interface {
	// Lookup returns the value of the named variable and whether it is set.
	Lookup(key string) (string, bool)

	// Home returns the current user's home directory.
	Home() string
}

// OSEnvironment reads from the real process environment. It is the
// Environment used by [New].
type OSEnvironment struct{}

// Lookup implements Environment via os.LookupEnv.
func (OSEnvironment) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Home implements Environment via os.UserHomeDir.
// It returns an empty string if the home directory cannot be determined.
func (OSEnvironment) Home() string {
	home, _ := os.UserHomeDir()
	return home
}
