package model

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractArchive unpacks a zipped model bundle into dest and returns the
// path of the bundle root inside dest. The archive must contain a single
// top-level directory holding the bundle tree.
func ExtractArchive(r io.ReaderAt, size int64, dest string) (string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open model archive: %w", err)
	}

	var root string
	for _, f := range zr.File {
		name := filepath.Clean(f.Name)
		if name == "." || strings.HasPrefix(name, "..") {
			return "", fmt.Errorf("model archive contains invalid entry %q", f.Name)
		}

		top := name
		if i := strings.IndexRune(name, filepath.Separator); i >= 0 {
			top = name[:i]
		}
		switch root {
		case "":
			root = top
		case top:
		default:
			return "", fmt.Errorf("model archive must have a single root directory, found %q and %q", root, top)
		}

		target := filepath.Join(dest, name)
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return "", err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return "", err
		}
		if err := extractFile(f, target); err != nil {
			return "", fmt.Errorf("extract %s: %w", f.Name, err)
		}
	}
	if root == "" {
		return "", fmt.Errorf("model archive is empty")
	}
	return filepath.Join(dest, root), nil
}

func extractFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
