//go:build !windows

package appdirs

import (
	"runtime"

	"github.com/cockroachdb/errors"
)

// NativeFolderResolver returns a FolderResolver whose Resolve always fails
// with [ErrFolderUnavailable]: known folders only exist on Windows.
// Forcing the Windows platform on another host requires injecting a
// resolver via [AppDirs.SetFolderResolver].
func NativeFolderResolver() FolderResolver {
	return FolderResolverFunc(func(f Folder) (string, error) {
		return "", errors.Wrapf(ErrFolderUnavailable, "resolving %s on %s", f, runtime.GOOS)
	})
}
