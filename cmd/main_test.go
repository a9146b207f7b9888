package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version", "--short"})

	if err := root.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out.String(), "dev") {
		t.Fatalf("expected dev version, got %q", out.String())
	}
}

func TestRootCommandFlags(t *testing.T) {
	root := newRootCommand()
	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Fatalf("missing verbose flag")
	}
	found := false
	for _, cmd := range root.Commands() {
		if cmd.Name() == "version" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing version subcommand")
	}
}
