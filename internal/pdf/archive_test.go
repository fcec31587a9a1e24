package pdf

import (
	"path/filepath"
	"testing"
)

func TestArchivePath_DeterministicPerAddress(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := archive.Path("a@b.com")
	second := archive.Path("a@b.com")
	if first != second {
		t.Fatalf("expected stable path, got %s and %s", first, second)
	}
	if filepath.Base(first) != "a@b.com_offer.pdf" {
		t.Fatalf("unexpected file name %s", filepath.Base(first))
	}
}

func TestArchiveSave_OverwritesPreviousLetter(t *testing.T) {
	archive, err := NewArchive(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := archive.Save("a@b.com", []byte("first")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path, err := archive.Save("a@b.com", []byte("second"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	letter, err := archive.Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(letter) != "second" {
		t.Fatalf("expected overwrite, got %q", letter)
	}
}
