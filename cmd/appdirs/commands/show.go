package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/appdirs/internal/errors"
	"github.com/thoreinstein/appdirs/internal/logging"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [kind] <app>",
	Short: "Resolve one directory kind for an application",
	Long: `Resolve a single directory kind and print the path, one per line for
search-list kinds. Output is plain, for use in scripts:

  cp settings.json "$(appdirs show user-config SuperApp)"

Kinds: ` + strings.Join(kindNames(), ", ") + `

With only an application argument on a terminal, the kind is picked
interactively with a fuzzy finder previewing each resolved path.

Examples:
  # Print the user cache dir
  appdirs show user-cache SuperApp

  # Without the conventional Cache suffix on Windows
  appdirs show user-cache SuperApp --platform windows --opinion=false

  # Pick the kind interactively
  appdirs show SuperApp`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	if len(args) == 2 {
		kind, err := kindByName(args[0])
		if err != nil {
			return err
		}
		return printKind(cmd.OutOrStdout(), kind, args[1])
	}

	app := args[0]
	if !logging.IsTTY(os.Stdout) {
		err := errors.Newf("no kind given (valid: %s)", strings.Join(kindNames(), ", "))
		return errors.NewUserError(err, "Interactive selection needs a terminal; pass the kind explicitly")
	}

	kind, aborted, err := pickKind(app)
	if err != nil {
		return err
	}
	if aborted {
		return nil
	}
	return printKind(cmd.OutOrStdout(), kind, app)
}

// pickKind selects a directory kind interactively, previewing the
// resolved path(s) for the highlighted kind.
func pickKind(app string) (dirKind, bool, error) {
	idx, err := fuzzyfinder.Find(
		dirKinds,
		func(i int) string {
			return dirKinds[i].name
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			dirs, err := resolveKind(dirKinds[i], app)
			if err != nil {
				return fmt.Sprintf("error: %v", err)
			}
			return fmt.Sprintf("Kind: %s\nApp: %s\n\n%s",
				dirKinds[i].name, app, strings.Join(dirs, "\n"))
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return dirKind{}, true, nil
		}
		return dirKind{}, false, errors.Wrap(err, "interactive kind selection failed")
	}
	return dirKinds[idx], false, nil
}

func printKind(w io.Writer, kind dirKind, app string) error {
	dirs, err := resolveKind(kind, app)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		fmt.Fprintln(w, dir)
	}
	return nil
}

// resolveKind resolves one kind on a fresh resolver, so the user-log
// version-clearing side effect cannot leak between calls.
func resolveKind(kind dirKind, app string) ([]string, error) {
	a, err := newAppDirs(app)
	if err != nil {
		return nil, err
	}
	dirs, err := kind.resolve(a, opinionFlag)
	if err != nil {
		return nil, errors.NewSystemError(err, "")
	}
	return dirs, nil
}
