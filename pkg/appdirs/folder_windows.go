//go:build windows

package appdirs

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

// NativeFolderResolver returns a FolderResolver backed by the Windows
// known-folder API. If a resolved path contains characters outside the
// single-byte range, the 8.3 short form is substituted when the OS can
// supply one; callers of such paths frequently hand them to tools that
// mangle non-ANSI characters.
func NativeFolderResolver() FolderResolver {
	return FolderResolverFunc(resolveKnownFolder)
}

func resolveKnownFolder(f Folder) (string, error) {
	var id *windows.KNOWNFOLDERID
	switch f {
	case RoamingAppData:
		id = windows.FOLDERID_RoamingAppData
	case LocalAppData:
		id = windows.FOLDERID_LocalAppData
	case CommonAppData:
		id = windows.FOLDERID_ProgramData
	default:
		return "", errors.Wrapf(ErrFolderUnavailable, "unknown folder %s", f)
	}

	dir, err := windows.KnownFolderPath(id, windows.KF_FLAG_DEFAULT)
	if err != nil {
		return "", errors.Wrapf(ErrFolderUnavailable, "resolving %s: %v", f, err)
	}
	return downgradeHighChars(dir), nil
}

// downgradeHighChars substitutes the short (8.3) path form when the long
// form contains any rune above U+00FF. Failure to obtain a short form is
// not an error; the long form is kept as-is.
func downgradeHighChars(dir string) string {
	hasHigh := false
	for _, r := range dir {
		if r > 0xFF {
			hasHigh = true
			break
		}
	}
	if !hasHigh {
		return dir
	}

	long, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return dir
	}
	buf := make([]uint16, windows.MAX_LONG_PATH)
	n, err := windows.GetShortPathName(long, &buf[0], uint32(len(buf)))
	if err != nil || n == 0 || int(n) > len(buf) {
		return dir
	}
	return windows.UTF16ToString(buf[:n])
}
