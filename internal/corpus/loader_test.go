package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "First.\n")
	writeFile(t, dir, "b.md", "Second.\n")
	writeFile(t, dir, "c.txt", "ignored")
	writeFile(t, dir, "d.MD", "case differs")
	writeFile(t, dir, ".md", "dotfile has no extension")
	writeFile(t, dir, "md", "no extension")
	if err := os.Mkdir(filepath.Join(dir, "sub.md"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "sub.md"), "nested.md", "not recursed")

	docs, err := Load(context.Background(), dir, "md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d: %v", len(docs), docs.Paths())
	}
	if docs[0].Path != filepath.Join(dir, "a.md") || docs[0].Text != "First.\n" {
		t.Errorf("unexpected first document: %+v", docs[0])
	}
	if docs[1].Path != filepath.Join(dir, "b.md") || docs[1].Text != "Second.\n" {
		t.Errorf("unexpected second document: %+v", docs[1])
	}
}

func TestLoad_LeadingDotExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "x")

	docs, err := Load(context.Background(), dir, ".md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("expected 1 document, got %d", len(docs))
	}
}

func TestLoad_NoMarkdownFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "x")
	writeFile(t, dir, "image.png", "x")

	docs, err := Load(context.Background(), dir, "md")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if docs == nil || len(docs) != 0 {
		t.Errorf("expected empty corpus, got %v", docs)
	}
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing"), "md")
	if err == nil {
		t.Fatal("expected error")
	}

	var dirErr *DirectoryError
	if !errors.As(err, &dirErr) {
		t.Fatalf("expected *DirectoryError, got %T", err)
	}
	if !errors.Is(err, ErrDirectory) || errors.Is(err, ErrRead) {
		t.Errorf("unexpected error kind: %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected cause to be ErrNotExist, got %v", err)
	}
}

func TestLoad_NotADirectory(t *testing.T) {
	path := writeFile(t, t.TempDir(), "file.md", "x")

	_, err := Load(context.Background(), path, "md")
	if !errors.Is(err, ErrDirectory) {
		t.Fatalf("expected directory error, got %v", err)
	}
}

func TestLoad_InvalidUTF8AbortsLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "Fine.\n")
	writeFile(t, dir, "b.md", "bad \xff\xfe bytes")

	docs, err := NewLoader(Options{Workers: 4}).Load(context.Background(), dir, "md")
	if docs != nil {
		t.Errorf("expected no partial corpus, got %d documents", len(docs))
	}

	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected *ReadError, got %T (%v)", err, err)
	}
	if readErr.Path != filepath.Join(dir, "b.md") {
		t.Errorf("unexpected path %s", readErr.Path)
	}
	if !errors.Is(err, ErrNotText) || !errors.Is(err, ErrRead) {
		t.Errorf("unexpected error chain: %v", err)
	}
}

func TestLoad_PreservesOrderWithManyWorkers(t *testing.T) {
	dir := t.TempDir()
	names := []string{"01.md", "02.md", "03.md", "04.md", "05.md", "06.md", "07.md", "08.md"}
	for _, name := range names {
		writeFile(t, dir, name, name)
	}

	loader := NewLoader(Options{Workers: 8, ReadsPerSecond: 1000, Burst: 8})
	docs, err := loader.Load(context.Background(), dir, "md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(docs) != len(names) {
		t.Fatalf("expected %d documents, got %d", len(names), len(docs))
	}
	for i, name := range names {
		if docs[i].Text != name {
			t.Errorf("document %d: expected %s, got %s", i, name, docs[i].Text)
		}
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, dir, "md")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "Any extension works.\n")

	docs, err := LoadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(docs) != 1 || docs[0].Text != "Any extension works.\n" {
		t.Errorf("unexpected corpus: %+v", docs)
	}

	_, err = LoadFile(context.Background(), filepath.Join(dir, "missing.md"))
	if !errors.Is(err, ErrRead) {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"post.md", "md", true},
		{"archive.tar.md", "md", true},
		{"README", "", false},
		{".md", "", false},
		{"trailing.", "", true},
	}
	for _, tt := range tests {
		got, ok := extension(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("extension(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}
