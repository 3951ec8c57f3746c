package model

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func buildZip(t *testing.T, files map[string]string) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestExtractArchive(t *testing.T) {
	r := buildZip(t, map[string]string{
		"bundle/nlu_engine.json":        `{}`,
		"bundle/parser/metadata.json":   `{}`,
		"bundle/resources/en/words.txt": "please",
	})
	dest := t.TempDir()

	root, err := ExtractArchive(r, r.Size(), dest)
	if err != nil {
		t.Fatalf("ExtractArchive failed: %v", err)
	}
	if root != filepath.Join(dest, "bundle") {
		t.Errorf("root = %q, want %q", root, filepath.Join(dest, "bundle"))
	}

	data, err := os.ReadFile(filepath.Join(root, "resources", "en", "words.txt"))
	if err != nil {
		t.Fatalf("extracted file missing: %v", err)
	}
	if string(data) != "please" {
		t.Errorf("extracted content = %q", data)
	}
}

func TestExtractArchiveRejectsMultipleRoots(t *testing.T) {
	r := buildZip(t, map[string]string{
		"one/nlu_engine.json": `{}`,
		"two/nlu_engine.json": `{}`,
	})

	_, err := ExtractArchive(r, r.Size(), t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "single root") {
		t.Fatalf("expected single-root error, got %v", err)
	}
}

func TestExtractArchiveRejectsTraversal(t *testing.T) {
	r := buildZip(t, map[string]string{
		"../escape.json": `{}`,
	})

	_, err := ExtractArchive(r, r.Size(), t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "invalid entry") {
		t.Fatalf("expected invalid entry error, got %v", err)
	}
}

func TestExtractArchiveEmpty(t *testing.T) {
	r := buildZip(t, nil)

	_, err := ExtractArchive(r, r.Size(), t.TempDir())
	if err == nil {
		t.Fatal("expected error for empty archive")
	}
}
