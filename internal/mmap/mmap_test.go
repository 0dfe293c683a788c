package mmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenReadClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob")
	content := []byte("mapped content")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(m.Bytes()); got != string(content) {
		t.Fatalf("got %q, want %q", got, content)
	}
	if m.Size() != len(content) {
		t.Fatalf("size %d, want %d", m.Size(), len(content))
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if m.Bytes() != nil {
		t.Fatal("bytes should be nil after close")
	}
	if err := m.Close(); err != nil {
		t.Fatal("second close should be a no-op")
	}
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Size() != 0 {
		t.Fatalf("size %d, want 0", m.Size())
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
