package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const circleSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24">
  <circle cx="12" cy="12" r="10" fill="#1a73e8"/>
</svg>`

// chdirTemp switches into a fresh directory holding icons/icon.svg.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "icons"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, source), []byte(circleSVG), 0644); err != nil {
		t.Fatal(err)
	}
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestRunPrintsStatusLines(t *testing.T) {
	dir := chdirTemp(t)

	var out bytes.Buffer
	if err := run(&out, source, "canvas", false); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	want := []string{
		"Created icon16.png",
		"Created icon48.png",
		"Created icon128.png",
		"All icons created successfully!",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}

	for _, name := range []string{"icon16.png", "icon48.png", "icon128.png"} {
		if _, err := os.Stat(filepath.Join(dir, "icons", name)); err != nil {
			t.Errorf("%s not created: %v", name, err)
		}
	}
}

func TestRunManifest(t *testing.T) {
	chdirTemp(t)

	var out bytes.Buffer
	if err := run(&out, source, "oksvg", true); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "All icons created successfully!\n{") {
		t.Errorf("manifest should follow the completion line:\n%s", s)
	}
	if !strings.Contains(s, `"icons/icon128.png"`) {
		t.Errorf("manifest missing icon128 entry:\n%s", s)
	}
}

func TestRunUnknownRenderer(t *testing.T) {
	dir := chdirTemp(t)

	var out bytes.Buffer
	if err := run(&out, source, "cairo", false); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
	files, _ := filepath.Glob(filepath.Join(dir, "icons", "*.png"))
	if len(files) != 0 {
		t.Errorf("expected no png files, got %v", files)
	}
}

func TestRunMissingSource(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	if err := run(&out, filepath.Join(dir, source), "canvas", false); err == nil {
		t.Fatal("expected error for missing icons/icon.svg")
	}
	if strings.Contains(out.String(), "Created") {
		t.Errorf("no Created line expected, got %q", out.String())
	}
}
