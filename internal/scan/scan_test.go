package scan

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"

	"namesim/internal/errs"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func entryNames(entries []Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

func TestRootsWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "report_final.txt", "a")
	writeFile(t, dir, "nested/report_final_v2.txt", "bb")
	writeFile(t, dir, "unrelated.csv", "ccc")

	entries, err := Roots(context.Background(), []string{dir}, nil, Options{IncludeHidden: true})
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}

	got := entryNames(entries)
	want := []string{"report_final.txt", "report_final_v2.txt", "unrelated.csv"}
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entries = %v, want %v", got, want)
		}
	}
}

func TestRootsRecordsSizes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.bin", "12345")

	entries, err := Roots(context.Background(), []string{dir}, nil, Options{IncludeHidden: true})
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Size != 5 {
		t.Errorf("Size = %d, want 5", entries[0].Size)
	}
}

func TestRootsAppliesPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.txt", "x")
	writeFile(t, dir, "drop.csv", "x")

	entries, err := Roots(context.Background(), []string{dir}, nil, Options{
		Pattern:       regexp.MustCompile(`\.txt$`),
		IncludeHidden: true,
	})
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "keep.txt" {
		t.Fatalf("entries = %v, want only keep.txt", entryNames(entries))
	}
}

func TestRootsExplicitFileBypassesPattern(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "drop.csv", "x")

	entries, err := Roots(context.Background(), []string{path}, nil, Options{
		Pattern: regexp.MustCompile(`\.txt$`),
	})
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "drop.csv" {
		t.Fatalf("explicit file should bypass the pattern, got %v", entryNames(entries))
	}
}

func TestRootsSkipsHidden(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".hidden.txt", "x")
	writeFile(t, dir, ".git/config.txt", "x")
	writeFile(t, dir, "visible.txt", "x")

	entries, err := Roots(context.Background(), []string{dir}, nil, Options{IncludeHidden: false})
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "visible.txt" {
		t.Fatalf("entries = %v, want only visible.txt", entryNames(entries))
	}
}

func TestRootsMissingPath(t *testing.T) {
	_, err := Roots(context.Background(), []string{"/nonexistent/namesim-test"}, nil, Options{})
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if !strings.Contains(err.Error(), "input error") {
		t.Errorf("expected input error classification, got %v", err)
	}
}

func TestRootsDeduplicatesPaths(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "once.txt", "x")

	entries, err := Roots(context.Background(), []string{path, path, dir}, nil, Options{IncludeHidden: true})
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after dedupe, got %d", len(entries))
	}
}

func TestRootsStdinNames(t *testing.T) {
	input := strings.NewReader("report_final.txt\n\n  report_final_v2.txt  \n")

	entries, err := Roots(context.Background(), []string{"-"}, input, Options{})
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}
	got := entryNames(entries)
	if len(got) != 2 || got[0] != "report_final.txt" || got[1] != "report_final_v2.txt" {
		t.Fatalf("entries = %v", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestRootsStdinReadError(t *testing.T) {
	_, err := Roots(context.Background(), []string{"-"}, io.MultiReader(strings.NewReader("a.txt\n"), failingReader{}), Options{})
	if err == nil {
		t.Fatal("expected error for failing stdin")
	}
	if !errs.IsInput(err) {
		t.Errorf("expected input error classification, got %v", err)
	}
	if !strings.Contains(err.Error(), "device gone") {
		t.Errorf("expected underlying cause in message, got %v", err)
	}
}

func TestFromNames(t *testing.T) {
	entries := FromNames([]string{"a.txt", "", "a.txt", " b.txt "})
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "a.txt" || entries[1].Name != "b.txt" {
		t.Fatalf("entries = %v", entryNames(entries))
	}
}

func TestRootsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Roots(ctx, []string{t.TempDir()}, nil, Options{})
	if err == nil {
		t.Fatal("expected context error")
	}
}
