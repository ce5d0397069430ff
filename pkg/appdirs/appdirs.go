package appdirs

import (
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// AppDirs resolves application-specific directories for one platform.
//
// Construct with [New], configure through the fluent setters, then query
// any number of times. All fields are optional: with no name set, queries
// return the platform's bare system directory. An AppDirs is not safe for
// concurrent use; [AppDirs.UserLogDir] mutates the stored version.
type AppDirs struct {
	name    string
	author  string
	version string
	roaming bool

	platform Platform
	env      Environment
	folders  FolderResolver
}

// New returns an AppDirs for the host platform, reading the real process
// environment and, on Windows, the native known-folder API.
func New() *AppDirs {
	return &AppDirs{
		platform: hostPlatform(),
		env:      OSEnvironment{},
		folders:  NativeFolderResolver(),
	}
}

// SetName sets the application name. When unset, queries return just the
// system directory with no app-specific segment.
func (a *AppDirs) SetName(name string) *AppDirs {
	a.name = name
	return a
}

// SetAuthor sets the author or distributing organization, typically the
// owning company name. It adds a path segment above the name on Windows
// and macOS; Unix conventions have no per-publisher segment, so it is
// ignored there. Site-data and cache queries on Windows fall back to the
// application name when no author is set.
func (a *AppDirs) SetAuthor(author string) *AppDirs {
	a.author = author
	return a
}

// SetVersion sets an optional version path element appended as the final
// segment, typically "major.minor". Useful when multiple versions of the
// app must run independently. Only applied when a name is also set.
func (a *AppDirs) SetVersion(version string) *AppDirs {
	a.version = version
	return a
}

// SetRoaming selects the Windows roaming app-data root for the user data
// directory, so the data syncs on login for users on roaming-profile
// networks. It has no effect on other platforms.
func (a *AppDirs) SetRoaming(roaming bool) *AppDirs {
	a.roaming = roaming
	return a
}

// SetPlatform overrides the detected platform, for example to force
// XDG-style directories on macOS or Windows.
func (a *AppDirs) SetPlatform(p Platform) *AppDirs {
	a.platform = p
	return a
}

// SetEnvironment overrides the environment accessor. Mainly for tests.
func (a *AppDirs) SetEnvironment(env Environment) *AppDirs {
	a.env = env
	return a
}

// SetFolderResolver overrides the Windows known-folder resolver. Required
// when forcing the Windows platform on a non-Windows host.
func (a *AppDirs) SetFolderResolver(r FolderResolver) *AppDirs {
	a.folders = r
	return a
}

// Platform returns the active platform.
func (a *AppDirs) Platform() Platform {
	return a.platform
}

// UserDataDir returns the user-specific data directory.
//
// Typical results:
//
//	macOS:                 ~/Library/Application Support/<author>/<name>
//	Unix:                  ~/.local/share/<name> (or $XDG_DATA_HOME)
//	Windows (not roaming): C:\Users\<user>\AppData\Local\<author>\<name>
//	Windows (roaming):     C:\Users\<user>\AppData\Roaming\<author>\<name>
func (a *AppDirs) UserDataDir() (string, error) {
	var path string
	switch a.platform {
	case Windows:
		folder := LocalAppData
		if a.roaming {
			folder = RoamingAppData
		}
		root, err := a.folders.Resolve(folder)
		if err != nil {
			return "", errors.Wrap(err, "resolving user data dir")
		}
		path = a.joinApp(root, a.author)
	case Darwin:
		path = a.joinApp(filepath.Join(a.env.Home(), "Library", "Application Support"), a.author)
	case XDGUnix:
		root, ok := a.env.Lookup("XDG_DATA_HOME")
		if !ok || root == "" {
			root = filepath.Join(a.env.Home(), ".local", "share")
		}
		path = a.joinApp(root, "")
	default:
		panic(unsupported(a.platform))
	}
	return a.joinVersion(path), nil
}

// SiteDataDirs returns the system-wide data directories as an ordered
// search list, highest priority first.
//
// On Windows and macOS the list has a single element (under ProgramData
// and /Library/Application Support respectively). On Unix the list covers
// $XDG_DATA_DIRS (default /usr/local/share and /usr/share): first every
// bare root, then every root joined with <name>[/<version>].
//
// On Windows an unset author falls back to the name for this call only.
func (a *AppDirs) SiteDataDirs() ([]string, error) {
	switch a.platform {
	case Windows:
		author := a.author
		if author == "" {
			author = a.name
		}
		root, err := a.folders.Resolve(CommonAppData)
		if err != nil {
			return nil, errors.Wrap(err, "resolving site data dir")
		}
		return []string{a.joinVersion(a.joinApp(root, author))}, nil
	case Darwin:
		return []string{a.joinVersion(a.joinApp("/Library/Application Support", a.author))}, nil
	case XDGUnix:
		return a.xdgSiteDirs("XDG_DATA_DIRS", []string{"/usr/local/share", "/usr/share"}), nil
	default:
		panic(unsupported(a.platform))
	}
}

// UserConfigDir returns the user-specific configuration directory.
//
// Typical results:
//
//	macOS:   ~/Library/Preferences/<name>
//	Unix:    ~/.config/<name> (or $XDG_CONFIG_HOME)
//	Windows: same as [AppDirs.UserDataDir]
func (a *AppDirs) UserConfigDir() (string, error) {
	var path string
	switch a.platform {
	case Windows:
		return a.UserDataDir()
	case Darwin:
		path = a.joinApp(filepath.Join(a.env.Home(), "Library", "Preferences"), "")
	case XDGUnix:
		root, ok := a.env.Lookup("XDG_CONFIG_HOME")
		if !ok {
			root = filepath.Join(a.env.Home(), ".config")
		}
		path = a.joinApp(root, "")
	default:
		panic(unsupported(a.platform))
	}
	return a.joinVersion(path), nil
}

// SiteConfigDirs returns the system-wide configuration directories as an
// ordered search list.
//
// On Unix the list covers $XDG_CONFIG_DIRS (default /etc/xdg) with the
// same bare-roots-then-suffixed-roots shape as [AppDirs.SiteDataDirs].
// On macOS it is /Library/Preferences/<name> with no version segment.
//
// On Windows the result is the site data dir with the version appended a
// second time; historical appdirs behavior, kept so existing layouts keep
// resolving to the same place.
func (a *AppDirs) SiteConfigDirs() ([]string, error) {
	switch a.platform {
	case Windows:
		dirs, err := a.SiteDataDirs()
		if err != nil {
			return nil, err
		}
		path := dirs[0]
		if a.name != "" && a.version != "" {
			path = filepath.Join(path, a.version)
		}
		return []string{path}, nil
	case Darwin:
		return []string{a.joinApp("/Library/Preferences", "")}, nil
	case XDGUnix:
		return a.xdgSiteDirs("XDG_CONFIG_DIRS", []string{"/etc/xdg"}), nil
	default:
		panic(unsupported(a.platform))
	}
}

// UserCacheDir returns the user-specific cache directory.
//
// Typical results:
//
//	macOS:   ~/Library/Caches/<author>/<name>
//	Unix:    ~/.cache/<name> (or $XDG_CACHE_HOME)
//	Windows: C:\Users\<user>\AppData\Local\<author>\<name>\Cache
//
// Windows has no dedicated cache folder, so by convention caches go in a
// "Cache" subdirectory of the local app data dir; opinion false disables
// that extra segment. The flag has no effect on macOS or Unix, and an
// unset author falls back to the name for this call only.
func (a *AppDirs) UserCacheDir(opinion bool) (string, error) {
	var path string
	switch a.platform {
	case Windows:
		author := a.author
		if author == "" {
			author = a.name
		}
		root, err := a.folders.Resolve(LocalAppData)
		if err != nil {
			return "", errors.Wrap(err, "resolving user cache dir")
		}
		path = a.joinApp(root, author)
		if a.name != "" && opinion {
			path = filepath.Join(path, "Cache")
		}
	case Darwin:
		path = a.joinApp(filepath.Join(a.env.Home(), "Library", "Caches"), a.author)
	case XDGUnix:
		root, ok := a.env.Lookup("XDG_CACHE_HOME")
		if !ok {
			root = filepath.Join(a.env.Home(), ".cache")
		}
		path = a.joinApp(root, "")
	default:
		panic(unsupported(a.platform))
	}
	return a.joinVersion(path), nil
}

// UserStateDir returns the user-specific state directory, for data that
// should persist between restarts but is not portable enough for the data
// dir (logs, history, current layout).
//
// Unix follows the $XDG_STATE_HOME extension (default ~/.local/state);
// Windows and macOS have no separate state location, so the result equals
// [AppDirs.UserDataDir].
func (a *AppDirs) UserStateDir() (string, error) {
	switch a.platform {
	case Windows, Darwin:
		return a.UserDataDir()
	case XDGUnix:
		root, ok := a.env.Lookup("XDG_STATE_HOME")
		if !ok {
			root = filepath.Join(a.env.Home(), ".local", "state")
		}
		return a.joinVersion(a.joinApp(root, "")), nil
	default:
		panic(unsupported(a.platform))
	}
}

// UserLogDir returns the user-specific log directory.
//
// Typical results:
//
//	macOS:   ~/Library/Logs/<author>/<name>
//	Unix:    ~/.cache/<name>/log
//	Windows: C:\Users\<user>\AppData\Local\<author>\<name>\Logs
//
// Windows derives from the user data dir and Unix from the cache dir,
// with opinion false disabling the trailing "Logs"/"log" segment.
//
// Compatibility hazard, historical appdirs behavior: on Windows and Unix
// this call clears the stored version, and the clear persists for every
// later query on this AppDirs. Query log dirs last, or use a dedicated
// AppDirs for them.
func (a *AppDirs) UserLogDir(opinion bool) (string, error) {
	var path string
	switch a.platform {
	case Darwin:
		path = a.joinApp(filepath.Join(a.env.Home(), "Library", "Logs"), a.author)
	case Windows:
		dataDir, err := a.UserDataDir()
		if err != nil {
			return "", errors.Wrap(err, "resolving user log dir")
		}
		path = dataDir
		a.version = ""
		if opinion {
			path = filepath.Join(path, "Logs")
		}
	case XDGUnix:
		cacheDir, err := a.UserCacheDir(true)
		if err != nil {
			return "", errors.Wrap(err, "resolving user log dir")
		}
		path = cacheDir
		a.version = ""
		if opinion {
			path = filepath.Join(path, "log")
		}
	default:
		panic(unsupported(a.platform))
	}
	return a.joinVersion(path), nil
}

// joinApp appends the app-specific segments to root: author then name
// when both are set, name alone otherwise. With no name set the root is
// returned unchanged.
func (a *AppDirs) joinApp(root, author string) string {
	if a.name == "" {
		return root
	}
	if author != "" {
		return filepath.Join(root, author, a.name)
	}
	return filepath.Join(root, a.name)
}

// joinVersion appends the version as the final segment when both name and
// version are set.
func (a *AppDirs) joinVersion(path string) string {
	if a.name != "" && a.version != "" {
		return filepath.Join(path, a.version)
	}
	return path
}

// xdgSiteDirs resolves an XDG search-list variable into the combined
// sequence of bare roots followed by name-qualified roots. The roots come
// from the variable split on the host list separator, or from fallback
// when the variable is unset.
func (a *AppDirs) xdgSiteDirs(key string, fallback []string) []string {
	roots := fallback
	if v, ok := a.env.Lookup(key); ok {
		roots = filepath.SplitList(v)
	}
	if a.name == "" {
		return roots
	}
	suffix := a.name
	if a.version != "" {
		suffix = filepath.Join(a.name, a.version)
	}
	dirs := make([]string, 0, 2*len(roots))
	dirs = append(dirs, roots...)
	for _, root := range roots {
		dirs = append(dirs, filepath.Join(root, suffix))
	}
	return dirs
}

func unsupported(p Platform) string {
	return fmt.Sprintf("appdirs: unsupported platform %s", p)
}
