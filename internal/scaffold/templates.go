package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// TemplateFiles is the fixed set of tooling files copied verbatim into a
// new project. A name missing from the source filesystem is skipped, so a
// slimmed-down template bundle still produces a working project.
var TemplateFiles = []string{
	"tsconfig.json",
	"vite.config.ts",
	"tailwind.config.js",
	"postcss.config.js",
	".eslintrc.cjs",
	".prettierrc",
}

// ScaffoldDirs are the empty directories every project starts with.
var ScaffoldDirs = []string{"src", "public"}

// Materialize copies the template files from fsys into dir byte for byte
// and creates the standard project directories. It returns the names it
// actually wrote.
func Materialize(dir string, fsys fs.FS) ([]string, error) {
	for _, d := range ScaffoldDirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", d, err)
		}
	}

	var written []string
	for _, name := range TemplateFiles {
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return written, fmt.Errorf("reading template %s: %w", name, err)
		}
		dst := filepath.Join(dir, name)
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", dst, err)
		}
		written = append(written, name)
	}
	return written, nil
}
