// Package scaffold writes the files that make up a generated project:
// the manifest, copied templates, the configuration module, and the
// database/auth/container sub-generators.
package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chittyos/chitty-cli/pkg/version"
)

// Scripts is the fixed script block of the generated manifest.
type Scripts struct {
	Dev       string `json:"dev"`
	Build     string `json:"build"`
	Preview   string `json:"preview"`
	Lint      string `json:"lint"`
	Typecheck string `json:"typecheck"`
}

// Manifest is the generated project descriptor consumed by the package
// manager. Field order is the wire order downstream tooling expects.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Type            string            `json:"type"`
	Scripts         Scripts           `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// NewManifest builds the initial manifest for a fresh project. Dependency
// maps start empty (the package manager fills them in) but must be non-nil
// so they serialize as {} rather than null.
func NewManifest(name string) Manifest {
	return Manifest{
		Name:    name,
		Version: "0.1.0",
		Type:    "module",
		Scripts: Scripts{
			Dev:       "vite",
			Build:     "vite build",
			Preview:   "vite preview",
			Lint:      "eslint .",
			Typecheck: "tsc --noEmit",
		},
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
	}
}

// WriteManifest writes package.json into dir.
func WriteManifest(dir, name string) error {
	m := NewManifest(name)

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, "package.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// frameworkVersion is the version stamped into generated files.
var frameworkVersion = version.Framework
