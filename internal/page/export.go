package page

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
)

// Export writes index.html and the static assets into dir and returns the
// number of bytes written.
func Export(dir string, tmpl *template.Template, v View) (int64, error) {
	if err := os.MkdirAll(filepath.Join(dir, "static"), 0o755); err != nil {
		return 0, fmt.Errorf("page: create %s: %w", dir, err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, tmpl, v); err != nil {
		return 0, err
	}
	total := int64(buf.Len())
	if err := os.WriteFile(filepath.Join(dir, IndexTemplate), buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("page: write index: %w", err)
	}

	static := Static()
	err := fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(dir, "static", filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return err
		}
		total += int64(len(data))
		return nil
	})
	if err != nil {
		return total, fmt.Errorf("page: write static assets: %w", err)
	}
	return total, nil
}
