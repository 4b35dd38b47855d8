package app

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEnumerateInputsSingleFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "page.html")
	if err := os.WriteFile(file, []byte("<html></html>"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	files, err := enumerateInputs(file)
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if !reflect.DeepEqual(files, []string{file}) {
		t.Fatalf("files = %v", files)
	}
}

func TestEnumerateInputsDirectorySortedHTMLOnly(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.html", "a.html", "notes.txt", "c.HTML"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.html"), 0o755); err != nil {
		t.Fatalf("seed dir: %v", err)
	}

	files, err := enumerateInputs(dir)
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.html"),
		filepath.Join(dir, "b.html"),
		filepath.Join(dir, "c.HTML"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
}

func TestEnumerateInputsMissingPathFails(t *testing.T) {
	if _, err := enumerateInputs(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatalf("expected error for missing input path")
	}
}

func TestBaseNameOf(t *testing.T) {
	if got := baseNameOf("/data/in/report.html"); got != "report" {
		t.Fatalf("baseNameOf = %q", got)
	}
	if got := baseNameOf("plain"); got != "plain" {
		t.Fatalf("baseNameOf = %q", got)
	}
}
