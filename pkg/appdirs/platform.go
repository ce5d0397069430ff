package appdirs

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform selects which operating system's directory conventions are
// applied. The set is closed; passing any other value to a query panics.
type Platform int

const (
	// Windows uses the known-folder system (AppData, ProgramData).
	Windows Platform = iota

	// Darwin uses ~/Library and /Library conventions.
	Darwin

	// XDGUnix follows the XDG Base Directory Specification and covers
	// Linux, the BSDs, and every other Unix-like.
	XDGUnix
)

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	case Darwin:
		return "darwin"
	case XDGUnix:
		return "xdg-unix"
	default:
		return fmt.Sprintf("Platform(%d)", int(p))
	}
}

// DetectPlatform maps a human-readable OS name to a Platform by prefix:
// names starting with "Windows" ("Windows XP", "Windows 11") select
// Windows, names starting with "Mac" ("Mac OS X") select Darwin, and
// everything else ("Linux", "FreeBSD", "SunOS") selects XDGUnix.
func DetectPlatform(osName string) Platform {
	switch {
	case strings.HasPrefix(osName, "Windows"):
		return Windows
	case strings.HasPrefix(osName, "Mac"):
		return Darwin
	default:
		return XDGUnix
	}
}

// hostPlatform returns the Platform for the running process.
func hostPlatform() Platform {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return Darwin
	default:
		return XDGUnix
	}
}
