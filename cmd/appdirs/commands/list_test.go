package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// resetFlags restores the package-level flag state and pins the identity
// to a deterministic unix resolution for the duration of the test.
func resetFlags(t *testing.T) {
	t.Helper()

	authorFlag = ""
	appVersionFlag = ""
	roamingFlag = false
	platformFlag = "unix"
	opinionFlag = true
	cfg = nil

	t.Setenv("HOME", "/home/test")
	for _, key := range []string{
		"XDG_DATA_HOME", "XDG_DATA_DIRS",
		"XDG_CONFIG_HOME", "XDG_CONFIG_DIRS",
		"XDG_CACHE_HOME", "XDG_STATE_HOME",
	} {
		// t.Setenv registers the restore; the resolver must see the
		// variable as unset, not empty.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestListCommand_Metadata(t *testing.T) {
	if listCmd.Use != "list <app>" {
		t.Errorf("Use = %q, want %q", listCmd.Use, "list <app>")
	}
	if listCmd.Short == "" {
		t.Error("Short description should not be empty")
	}
	if listCmd.Flags().Lookup("format") == nil {
		t.Error("--format flag should be defined")
	}
}

func TestRunList_Table(t *testing.T) {
	resetFlags(t)

	var buf bytes.Buffer
	if err := runListWithWriter(&buf, "superapp", "table"); err != nil {
		t.Fatalf("runListWithWriter() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"superapp",
		"user-data",
		"/home/test/.local/share/superapp",
		"site-config",
		"/etc/xdg/superapp",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRunList_JSON(t *testing.T) {
	resetFlags(t)

	var buf bytes.Buffer
	if err := runListWithWriter(&buf, "superapp", "json"); err != nil {
		t.Fatalf("runListWithWriter() error = %v", err)
	}

	var out listOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if out.Name != "superapp" {
		t.Errorf("name = %q, want %q", out.Name, "superapp")
	}
	if out.Platform != "xdg-unix" {
		t.Errorf("platform = %q, want %q", out.Platform, "xdg-unix")
	}
	if want := "/home/test/.local/share/superapp"; out.UserData != want {
		t.Errorf("user_data = %q, want %q", out.UserData, want)
	}
	if want := "/home/test/.cache/superapp/log"; out.UserLog != want {
		t.Errorf("user_log = %q, want %q", out.UserLog, want)
	}
	wantSite := []string{"/usr/local/share", "/usr/share", "/usr/local/share/superapp", "/usr/share/superapp"}
	if len(out.SiteData) != len(wantSite) {
		t.Fatalf("site_data = %v, want %v", out.SiteData, wantSite)
	}
	for i := range wantSite {
		if out.SiteData[i] != wantSite[i] {
			t.Errorf("site_data[%d] = %q, want %q", i, out.SiteData[i], wantSite[i])
		}
	}
}

func TestRunList_YAML(t *testing.T) {
	resetFlags(t)
	appVersionFlag = "1.0"

	var buf bytes.Buffer
	if err := runListWithWriter(&buf, "superapp", "yaml"); err != nil {
		t.Fatalf("runListWithWriter() error = %v", err)
	}

	var out listOutput
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if want := "/home/test/.local/share/superapp/1.0"; out.UserData != want {
		t.Errorf("user_data = %q, want %q", out.UserData, want)
	}
	// The version suffix never applies to the log dir.
	if want := "/home/test/.cache/superapp/1.0/log"; out.UserLog != want {
		t.Errorf("user_log = %q, want %q", out.UserLog, want)
	}
}

func TestRunList_VersionNotPoisonedByLogKind(t *testing.T) {
	resetFlags(t)
	appVersionFlag = "2.0"

	var buf bytes.Buffer
	if err := runListWithWriter(&buf, "superapp", "json"); err != nil {
		t.Fatalf("runListWithWriter() error = %v", err)
	}

	var out listOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	// Each kind resolves on a fresh resolver, so user-log clearing the
	// version must not strip it from the other kinds.
	if want := "/home/test/.local/share/superapp/2.0"; out.UserData != want {
		t.Errorf("user_data = %q, want %q", out.UserData, want)
	}
	if want := "/home/test/.local/state/superapp/2.0"; out.UserState != want {
		t.Errorf("user_state = %q, want %q", out.UserState, want)
	}
}

func TestRunList_UnknownFormat(t *testing.T) {
	resetFlags(t)

	var buf bytes.Buffer
	err := runListWithWriter(&buf, "superapp", "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("error = %v, want unknown output format", err)
	}
}

func TestRunList_UnknownPlatform(t *testing.T) {
	resetFlags(t)
	platformFlag = "beos"

	var buf bytes.Buffer
	if err := runListWithWriter(&buf, "superapp", "table"); err == nil {
		t.Fatal("expected error for unknown platform")
	}
}
