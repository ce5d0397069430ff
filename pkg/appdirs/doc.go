// Package appdirs computes standard, per-operating-system filesystem
// locations (user and system-wide data, config, cache, state, and log
// directories) for a named application.
//
// Callers describe an application with a name, an optional author or
// organization, and an optional version, then query one directory kind at
// a time. Paths follow each platform's documented conventions: the XDG
// Base Directory Specification on Unix-likes, ~/Library on macOS, and the
// known-folder system on Windows.
//
// # Basic Usage
//
//	dirs := appdirs.New().SetName("SuperApp").SetAuthor("Acme")
//	data, err := dirs.UserDataDir()
//	// Linux:   ~/.local/share/SuperApp
//	// macOS:   ~/Library/Application Support/Acme/SuperApp
//	// Windows: C:\Users\<user>\AppData\Local\Acme\SuperApp
//
// # Platform Selection
//
// The platform is detected once at construction from the host OS and can
// be overridden, for example to force XDG-style paths everywhere:
//
//	dirs := appdirs.New().SetPlatform(appdirs.XDGUnix)
//
// # Search Lists
//
// [AppDirs.SiteDataDirs] and [AppDirs.SiteConfigDirs] return ordered
// search lists rather than a single path, because Unix defines multiple
// system-wide roots ($XDG_DATA_DIRS, $XDG_CONFIG_DIRS). On Windows and
// macOS the list has exactly one element.
//
// # Injected Collaborators
//
// Environment access and Windows known-folder resolution are injected via
// the [Environment] and [FolderResolver] interfaces, so every platform
// branch is testable on every host. [New] wires the process environment
// and the native resolver for the current OS.
//
// The package performs pure string construction: it never creates
// directories, checks existence, or touches permissions.
package appdirs
