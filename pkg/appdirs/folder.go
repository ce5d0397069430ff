package appdirs

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Folder identifies a Windows known folder used as a directory root.
type Folder int

const (
	// RoamingAppData is the per-user folder synchronized across machines
	// on roaming-profile networks (%APPDATA%).
	RoamingAppData Folder = iota

	// LocalAppData is the per-user, machine-local folder (%LOCALAPPDATA%).
	LocalAppData

	// CommonAppData is the all-users folder (%PROGRAMDATA%).
	CommonAppData
)

// String returns the known-folder name.
func (f Folder) String() string {
	switch f {
	case RoamingAppData:
		return "RoamingAppData"
	case LocalAppData:
		return "LocalAppData"
	case CommonAppData:
		return "CommonAppData"
	default:
		return fmt.Sprintf("Folder(%d)", int(f))
	}
}

// ErrFolderUnavailable indicates a Windows known folder could not be
// resolved, either because the OS call failed or because native
// resolution is not available on this host.
var ErrFolderUnavailable = errors.New("windows folder unavailable")

// FolderResolver maps a Windows known folder to its absolute path.
// Implementations are injected into [AppDirs]; tests supply fakes so the
// Windows branches run on any host.
type FolderResolver interface {
	Resolve(f Folder) (string, error)
}

// FolderResolverFunc adapts a function to the FolderResolver interface.
type FolderResolverFunc func(f Folder) (string, error)

// Resolve calls fn(f).
func (fn FolderResolverFunc) Resolve(f Folder) (string, error) {
	return fn(f)
}
