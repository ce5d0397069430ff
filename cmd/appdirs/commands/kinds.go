package commands

import (
	"strings"

	"github.com/thoreinstein/appdirs/internal/errors"
	"github.com/thoreinstein/appdirs/pkg/appdirs"
)

// dirKind binds a directory-kind name to its resolver query. Search-list
// kinds (multi=true) return more than one path on Unix.
type dirKind struct {
	name  string
	multi bool

	resolve func(a *appdirs.AppDirs, opinion bool) ([]string, error)
}

func single(f func() (string, error)) ([]string, error) {
	dir, err := f()
	if err != nil {
		return nil, err
	}
	return []string{dir}, nil
}

// dirKinds lists every kind in display order. Resolving user-log mutates
// the resolver's stored version, so callers iterating over kinds must use
// a fresh resolver per kind.
var dirKinds = []dirKind{
	{
		name: "user-data",
		resolve: func(a *appdirs.AppDirs, _ bool) ([]string, error) {
			return single(a.UserDataDir)
		},
	},
	{
		name: "user-config",
		resolve: func(a *appdirs.AppDirs, _ bool) ([]string, error) {
			return single(a.UserConfigDir)
		},
	},
	{
		name: "user-cache",
		resolve: func(a *appdirs.AppDirs, opinion bool) ([]string, error) {
			return single(func() (string, error) { return a.UserCacheDir(opinion) })
		},
	},
	{
		name: "user-state",
		resolve: func(a *appdirs.AppDirs, _ bool) ([]string, error) {
			return single(a.UserStateDir)
		},
	},
	{
		name: "user-log",
		resolve: func(a *appdirs.AppDirs, opinion bool) ([]string, error) {
			return single(func() (string, error) { return a.UserLogDir(opinion) })
		},
	},
	{
		name:  "site-data",
		multi: true,
		resolve: func(a *appdirs.AppDirs, _ bool) ([]string, error) {
			return a.SiteDataDirs()
		},
	},
	{
		name:  "site-config",
		multi: true,
		resolve: func(a *appdirs.AppDirs, _ bool) ([]string, error) {
			return a.SiteConfigDirs()
		},
	},
}

// kindByName looks up a directory kind by its CLI name.
func kindByName(name string) (dirKind, error) {
	for _, k := range dirKinds {
		if k.name == name {
			return k, nil
		}
	}
	err := errors.Wrapf(errors.ErrUnknownKind, "%q (valid: %s)", name, strings.Join(kindNames(), ", "))
	return dirKind{}, errors.NewUserError(err, "Run 'appdirs show --help' to see valid kinds")
}

// kindNames returns the CLI names of all directory kinds in display order.
func kindNames() []string {
	names := make([]string, len(dirKinds))
	for i, k := range dirKinds {
		names[i] = k.name
	}
	return names
}
