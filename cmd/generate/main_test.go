package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{dir, "--only", "data/*.yaml"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "data", "projects.yaml")); err != nil {
		t.Errorf("projects.yaml not created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "templates")); err == nil {
		t.Error("templates should be filtered out")
	}
	if !strings.Contains(out.String(), "2 created, 0 skipped") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestGenerateCommandRequiresDir(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err == nil {
		t.Error("expected missing argument error")
	}
}
