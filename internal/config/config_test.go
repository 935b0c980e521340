package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chittyos/chitty-cli/internal/installer"
)

func TestLoadMissingFile(t *testing.T) {
	d, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Defaults{}, d)
}

func TestLoadAndApply(t *testing.T) {
	dir := t.TempDir()
	rc := `tier: custom
apps:
  - chittytrace
database: true
docker: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(rc), 0o644))

	d, err := Load(dir)
	require.NoError(t, err)

	cfg := installer.Config{Name: "my-chittyapp"}
	d.Apply(&cfg)

	assert.Equal(t, installer.TierCustom, cfg.Tier)
	assert.Equal(t, []string{"chittytrace"}, cfg.Apps)
	assert.True(t, cfg.Features.Database)
	assert.False(t, cfg.Features.Docker)
	assert.False(t, cfg.Features.Auth) // absent key stays untouched
}

func TestApplyDoesNotOverrideFlags(t *testing.T) {
	d := &Defaults{Tier: "full", Apps: []string{"chittycounsel"}}

	cfg := installer.Config{Tier: installer.TierMinimal, Apps: []string{"chittytrace"}}
	d.Apply(&cfg)

	assert.Equal(t, installer.TierMinimal, cfg.Tier)
	assert.Equal(t, []string{"chittytrace"}, cfg.Apps)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("tier: [broken"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
