package commands

import (
	"testing"

	"github.com/thoreinstein/appdirs/internal/config"
	"github.com/thoreinstein/appdirs/internal/errors"
	"github.com/thoreinstein/appdirs/pkg/appdirs"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in      string
		want    appdirs.Platform
		wantErr bool
	}{
		{in: "windows", want: appdirs.Windows},
		{in: "darwin", want: appdirs.Darwin},
		{in: "macos", want: appdirs.Darwin},
		{in: "unix", want: appdirs.XDGUnix},
		{in: "linux", want: appdirs.XDGUnix},
		{in: "xdg", want: appdirs.XDGUnix},
		{in: "beos", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePlatform(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrUnknownPlatform) {
					t.Errorf("parsePlatform(%q) error = %v, want ErrUnknownPlatform", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePlatform(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parsePlatform(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyConfigDefaults(t *testing.T) {
	resetFlags(t)
	platformFlag = ""
	cfg = &config.Config{
		Author:   "Acme",
		Roaming:  true,
		Opinion:  false,
		Platform: "darwin",
	}

	// No flags were marked changed on the root command, so every config
	// value applies.
	applyConfigDefaults(rootCmd)

	if authorFlag != "Acme" {
		t.Errorf("authorFlag = %q, want %q", authorFlag, "Acme")
	}
	if !roamingFlag {
		t.Error("roamingFlag = false, want true")
	}
	if opinionFlag {
		t.Error("opinionFlag = true, want false")
	}
	if platformFlag != "darwin" {
		t.Errorf("platformFlag = %q, want %q", platformFlag, "darwin")
	}
}

func TestNewAppDirsUsesIdentityFlags(t *testing.T) {
	resetFlags(t)
	platformFlag = "darwin"
	authorFlag = "Acme"
	appVersionFlag = "1.0"

	a, err := newAppDirs("SuperApp")
	if err != nil {
		t.Fatalf("newAppDirs() error = %v", err)
	}
	if a.Platform() != appdirs.Darwin {
		t.Errorf("Platform() = %v, want Darwin", a.Platform())
	}

	got, err := a.UserDataDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := "/home/test/Library/Application Support/Acme/SuperApp/1.0"; got != want {
		t.Errorf("UserDataDir() = %q, want %q", got, want)
	}
}
