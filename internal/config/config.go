// Package config loads optional installer defaults from a .chittyrc.yaml
// file in the working directory. Defaults pre-seed the prompts; explicit
// flags still win.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/chittyos/chitty-cli/internal/installer"
)

// FileName is the defaults file looked up in the working directory.
const FileName = ".chittyrc.yaml"

// Defaults mirrors the answer set of the installer prompts. Bool fields
// are pointers so an absent key stays distinguishable from false.
type Defaults struct {
	Tier     string   `yaml:"tier"`
	Apps     []string `yaml:"apps"`
	Database *bool    `yaml:"database"`
	Auth     *bool    `yaml:"auth"`
	Docker   *bool    `yaml:"docker"`
}

// Load reads dir/.chittyrc.yaml. A missing file is not an error and
// returns empty defaults.
func Load(dir string) (*Defaults, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Defaults{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &d, nil
}

// Apply seeds unset fields of cfg from the defaults. Fields already set
// (by flags) are left alone.
func (d *Defaults) Apply(cfg *installer.Config) {
	if cfg.Tier == "" && d.Tier != "" {
		cfg.Tier = installer.Tier(d.Tier)
	}
	if len(cfg.Apps) == 0 && len(d.Apps) > 0 {
		cfg.Apps = append([]string(nil), d.Apps...)
	}
	if d.Database != nil {
		cfg.Features.Database = *d.Database
	}
	if d.Auth != nil {
		cfg.Features.Auth = *d.Auth
	}
	if d.Docker != nil {
		cfg.Features.Docker = *d.Docker
	}
}
