package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/appdirs/internal/errors"
)

var listFormat string

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "",
		"output format: table, json, yaml, toml")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list <app>",
	Short: "Resolve every directory kind for an application",
	Long: `Resolve all seven directory kinds for an application and print them
together: user data, config, cache, state, and log directories, plus the
system-wide data and config search lists.

Examples:
  # Tabular overview
  appdirs list SuperApp --author Acme

  # Machine-readable
  appdirs list SuperApp --format json

  # Versioned Windows layout from any host
  appdirs list SuperApp --platform windows --app-version 1.2`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

// listOutput is the machine-readable shape for json/yaml/toml output.
type listOutput struct {
	Name       string   `json:"name" yaml:"name" toml:"name"`
	Platform   string   `json:"platform" yaml:"platform" toml:"platform"`
	UserData   string   `json:"user_data" yaml:"user_data" toml:"user_data"`
	UserConfig string   `json:"user_config" yaml:"user_config" toml:"user_config"`
	UserCache  string   `json:"user_cache" yaml:"user_cache" toml:"user_cache"`
	UserState  string   `json:"user_state" yaml:"user_state" toml:"user_state"`
	UserLog    string   `json:"user_log" yaml:"user_log" toml:"user_log"`
	SiteData   []string `json:"site_data" yaml:"site_data" toml:"site_data"`
	SiteConfig []string `json:"site_config" yaml:"site_config" toml:"site_config"`
}

func runList(cmd *cobra.Command, args []string) error {
	format := listFormat
	if format == "" {
		format = "table"
		if cfg != nil && cfg.Format != "" {
			format = cfg.Format
		}
	}
	return runListWithWriter(cmd.OutOrStdout(), args[0], format)
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(w io.Writer, name, format string) error {
	resolved := make(map[string][]string, len(dirKinds))
	for _, k := range dirKinds {
		// Fresh resolver per kind: user-log clears the stored version
		// and must not poison the other queries.
		a, err := newAppDirs(name)
		if err != nil {
			return err
		}
		dirs, err := k.resolve(a, opinionFlag)
		if err != nil {
			return errors.NewSystemError(err, "")
		}
		resolved[k.name] = dirs
		slog.Debug("resolved", "kind", k.name, "paths", len(dirs))
	}

	a, err := newAppDirs(name)
	if err != nil {
		return err
	}
	platform := a.Platform().String()

	switch format {
	case "table":
		return writeTable(w, name, platform, resolved)
	case "json", "yaml", "toml":
		return writeEncoded(w, format, listOutput{
			Name:       name,
			Platform:   platform,
			UserData:   resolved["user-data"][0],
			UserConfig: resolved["user-config"][0],
			UserCache:  resolved["user-cache"][0],
			UserState:  resolved["user-state"][0],
			UserLog:    resolved["user-log"][0],
			SiteData:   resolved["site-data"],
			SiteConfig: resolved["site-config"],
		})
	default:
		err := errors.Wrapf(errors.ErrUnknownFormat, "%q (valid: table, json, yaml, toml)", format)
		return errors.NewUserError(err, "")
	}
}

func writeTable(w io.Writer, name, platform string, resolved map[string][]string) error {
	fmt.Fprintf(w, "%sApplication: %s%s (%s)\n\n", colorCyan+colorBold, name, colorReset, platform)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sKIND%s\t%sPATH%s\n", colorBold, colorReset, colorBold, colorReset)
	for _, k := range dirKinds {
		for i, dir := range resolved[k.name] {
			label := ""
			if i == 0 {
				label = colorGreen + k.name + colorReset
			}
			fmt.Fprintf(tw, "%s\t%s\n", label, dir)
		}
	}
	return tw.Flush()
}

func writeEncoded(w io.Writer, format string, out listOutput) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(out)
	case "toml":
		return toml.NewEncoder(w).Encode(out)
	default:
		return errors.Wrapf(errors.ErrUnknownFormat, "%q", format)
	}
}
