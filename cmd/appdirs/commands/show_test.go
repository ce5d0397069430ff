package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestShowCommand_Metadata(t *testing.T) {
	if showCmd.Use != "show [kind] <app>" {
		t.Errorf("Use = %q, want %q", showCmd.Use, "show [kind] <app>")
	}
	if showCmd.Short == "" {
		t.Error("Short description should not be empty")
	}
	// Every kind must be listed in the long help.
	for _, name := range kindNames() {
		if !strings.Contains(showCmd.Long, name) {
			t.Errorf("Long help missing kind %q", name)
		}
	}
}

func TestPrintKind_Single(t *testing.T) {
	resetFlags(t)

	kind, err := kindByName("user-config")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := printKind(&buf, kind, "superapp"); err != nil {
		t.Fatalf("printKind() error = %v", err)
	}
	if got, want := buf.String(), "/home/test/.config/superapp\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrintKind_SearchList(t *testing.T) {
	resetFlags(t)

	kind, err := kindByName("site-data")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := printKind(&buf, kind, "superapp"); err != nil {
		t.Fatalf("printKind() error = %v", err)
	}

	want := "/usr/local/share\n/usr/share\n/usr/local/share/superapp\n/usr/share/superapp\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrintKind_OpinionFlag(t *testing.T) {
	resetFlags(t)
	opinionFlag = false

	kind, err := kindByName("user-log")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := printKind(&buf, kind, "superapp"); err != nil {
		t.Fatalf("printKind() error = %v", err)
	}
	if got, want := buf.String(), "/home/test/.cache/superapp\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestKindByName(t *testing.T) {
	for _, name := range kindNames() {
		if _, err := kindByName(name); err != nil {
			t.Errorf("kindByName(%q) error = %v", name, err)
		}
	}

	_, err := kindByName("user-scratch")
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if !strings.Contains(err.Error(), "unknown directory kind") {
		t.Errorf("error = %v, want unknown directory kind", err)
	}
}
