package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/chittyos/chitty-cli/internal/errors"
	"github.com/chittyos/chitty-cli/internal/pm"
	"github.com/chittyos/chitty-cli/internal/scaffold"
	"github.com/chittyos/chitty-cli/internal/ui"
)

// testTemplates is a minimal template bundle for pipeline tests.
func testTemplates() fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, name := range scaffold.TemplateFiles {
		fsys[name] = &fstest.MapFile{Data: []byte("// " + name + "\n")}
	}
	return fsys
}

// newTestInstaller wires an Installer to a Recorder with a healthy
// environment scripted, writing into a fresh temp dir.
func newTestInstaller(t *testing.T, cfg Config, opts ...InstallerOption) (*Installer, *pm.Recorder) {
	t.Helper()

	rec := pm.NewRecorder()
	rec.Results["node --version"] = pm.Result{Stdout: "v22.1.0\n"}
	rec.Results["npm --version"] = pm.Result{Stdout: "10.9.0\n"}

	base := []InstallerOption{
		WithRunner(rec),
		WithManagerKind(pm.Npm),
		WithOutput(&bytes.Buffer{}),
		WithStyles(ui.NoColorStyles()),
	}
	in := New(cfg, t.TempDir(), testTemplates(), append(base, opts...)...)
	return in, rec
}

func TestRunStandardWithDatabase(t *testing.T) {
	cfg := Config{
		Name:     "my-chittyapp",
		Tier:     TierStandard,
		Features: scaffold.Features{Database: true},
	}
	in, rec := newTestInstaller(t, cfg)

	require.NoError(t, in.Run(context.Background()))
	target := in.Target()

	// Generated files for this scenario.
	assert.FileExists(t, filepath.Join(target, "package.json"))
	assert.FileExists(t, filepath.Join(target, "chitty.config.js"))
	assert.FileExists(t, filepath.Join(target, ".gitignore"))
	assert.FileExists(t, filepath.Join(target, "tsconfig.json"))

	env, err := os.ReadFile(filepath.Join(target, ".env"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(env)), "\n"), 2)

	assert.NoFileExists(t, filepath.Join(target, "src", "auth", "schema.js"))
	assert.NoFileExists(t, filepath.Join(target, "Dockerfile"))

	appCfg, err := os.ReadFile(filepath.Join(target, "chitty.config.js"))
	require.NoError(t, err)
	assert.Contains(t, string(appCfg), "apps: ['chittyresolution', 'chittychronicle'],")

	cmds := rec.CommandStrings()
	assert.Contains(t, cmds, "npm install @chittyos/core")
	assert.Contains(t, cmds, "npm install @chittyos/chittyresolution")
	assert.Contains(t, cmds, "npm install @chittyos/chittychronicle")
	assert.Contains(t, cmds, "npm install")
	assert.Contains(t, cmds, "git init")
}

func TestRunMinimalSkipsOptionalGenerators(t *testing.T) {
	// Toggles default true; minimal still skips all three sub-generators.
	cfg := Config{
		Name:     "bare-app",
		Tier:     TierMinimal,
		Features: scaffold.Features{Database: true, Auth: true, Docker: true},
	}
	in, rec := newTestInstaller(t, cfg)

	require.NoError(t, in.Run(context.Background()))
	target := in.Target()

	assert.NoFileExists(t, filepath.Join(target, ".env"))
	assert.NoFileExists(t, filepath.Join(target, "src", "auth", "schema.js"))
	assert.NoFileExists(t, filepath.Join(target, "Dockerfile"))

	appCfg, err := os.ReadFile(filepath.Join(target, "chitty.config.js"))
	require.NoError(t, err)
	assert.Contains(t, string(appCfg), "apps: [],")
	assert.Contains(t, string(appCfg), "database: false,")

	for _, cmd := range rec.CommandStrings() {
		assert.NotContains(t, cmd, "@chittyos/chitty")
	}
}

func TestRunCustomPreservesComponentOrder(t *testing.T) {
	cfg := Config{
		Name: "picky-app",
		Tier: TierCustom,
		Apps: []string{"chittytrace", "chittyresolution"},
	}
	in, rec := newTestInstaller(t, cfg)

	require.NoError(t, in.Run(context.Background()))

	var installs []string
	for _, cmd := range rec.CommandStrings() {
		if strings.HasPrefix(cmd, "npm install @chittyos/chitty") {
			installs = append(installs, cmd)
		}
	}
	assert.Equal(t, []string{
		"npm install @chittyos/chittytrace",
		"npm install @chittyos/chittyresolution",
	}, installs)
}

func TestFeatureCombinations(t *testing.T) {
	for _, db := range []bool{false, true} {
		for _, auth := range []bool{false, true} {
			for _, docker := range []bool{false, true} {
				name := fmt.Sprintf("db=%t_auth=%t_docker=%t", db, auth, docker)
				t.Run(name, func(t *testing.T) {
					cfg := Config{
						Name:     "combo-app",
						Tier:     TierStandard,
						Features: scaffold.Features{Database: db, Auth: auth, Docker: docker},
					}
					in, _ := newTestInstaller(t, cfg)
					require.NoError(t, in.Run(context.Background()))
					target := in.Target()

					appCfg, err := os.ReadFile(filepath.Join(target, "chitty.config.js"))
					require.NoError(t, err)
					assert.Contains(t, string(appCfg), fmt.Sprintf("database: %t,", db))
					assert.Contains(t, string(appCfg), fmt.Sprintf("authentication: %t,", auth))
					assert.Contains(t, string(appCfg), fmt.Sprintf("docker: %t,", docker))

					assertExists(t, db, filepath.Join(target, ".env"))
					assertExists(t, auth, filepath.Join(target, "src", "auth", "session.js"))
					assertExists(t, docker, filepath.Join(target, "docker-compose.yml"))
				})
			}
		}
	}
}

func assertExists(t *testing.T, want bool, path string) {
	t.Helper()
	if want {
		assert.FileExists(t, path)
	} else {
		assert.NoFileExists(t, path)
	}
}

func TestDeclinedOverwriteWritesNothing(t *testing.T) {
	cfg := Config{Name: "existing-app", Tier: TierStandard}
	in, rec := newTestInstaller(t, cfg, WithConfirmer(func(string) (bool, error) {
		return false, nil
	}))

	target := in.Target()
	require.NoError(t, os.MkdirAll(target, 0o755))
	marker := filepath.Join(target, "keep.txt")
	require.NoError(t, os.WriteFile(marker, []byte("precious"), 0o644))

	err := in.Run(context.Background())
	require.Error(t, err)
	assert.True(t, cerr.IsCancelled(err))

	// Old contents untouched, nothing new under the target.
	assert.FileExists(t, marker)
	entries, readErr := os.ReadDir(target)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1)

	for _, cmd := range rec.CommandStrings() {
		assert.NotContains(t, cmd, "install")
	}
}

func TestAcceptedOverwriteRemovesOldContents(t *testing.T) {
	cfg := Config{Name: "existing-app", Tier: TierMinimal}
	in, _ := newTestInstaller(t, cfg, WithConfirmer(func(string) (bool, error) {
		return true, nil
	}))

	target := in.Target()
	require.NoError(t, os.MkdirAll(filepath.Join(target, "old"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "old", "stale.txt"), []byte("x"), 0o644))

	require.NoError(t, in.Run(context.Background()))

	assert.NoFileExists(t, filepath.Join(target, "old", "stale.txt"))
	assert.FileExists(t, filepath.Join(target, "package.json"))
}

func TestForceSkipsConfirmation(t *testing.T) {
	cfg := Config{Name: "existing-app", Tier: TierMinimal}
	in, _ := newTestInstaller(t, cfg,
		WithForce(true),
		WithConfirmer(func(string) (bool, error) {
			t.Fatal("confirmer must not be called with --force")
			return false, nil
		}))

	require.NoError(t, os.MkdirAll(in.Target(), 0o755))
	require.NoError(t, in.Run(context.Background()))
	assert.FileExists(t, filepath.Join(in.Target(), "package.json"))
}

func TestComponentInstallFailureIsWarning(t *testing.T) {
	cfg := Config{Name: "flaky-app", Tier: TierStandard}
	in, rec := newTestInstaller(t, cfg)
	rec.Results["npm install @chittyos/chittychronicle"] = pm.Result{
		ExitCode: 1,
		Stderr:   "E404 not found",
	}

	require.NoError(t, in.Run(context.Background()))

	require.Len(t, in.Warnings(), 1)
	assert.Contains(t, in.Warnings()[0], "chittychronicle")

	// Pipeline continued through finalization.
	assert.Contains(t, rec.CommandStrings(), "npm install")
	assert.FileExists(t, filepath.Join(in.Target(), ".gitignore"))
}

func TestFrameworkInstallFailureIsFatal(t *testing.T) {
	cfg := Config{Name: "doomed-app", Tier: TierStandard}
	in, rec := newTestInstaller(t, cfg)
	rec.Results["npm install @chittyos/core"] = pm.Result{
		ExitCode: 1,
		Stderr:   "network unreachable",
	}

	err := in.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, cerr.ErrCodeFrameworkInstall, cerr.GetCode(err))

	// Nothing past the framework stage ran.
	assert.NotContains(t, rec.CommandStrings(), "npm install @chittyos/chittyresolution")
	assert.NoFileExists(t, filepath.Join(in.Target(), "chitty.config.js"))
}

func TestNodeTooOldIsUnsupportedRuntime(t *testing.T) {
	cfg := Config{Name: "any-app", Tier: TierMinimal}
	in, rec := newTestInstaller(t, cfg)
	rec.Results["node --version"] = pm.Result{Stdout: "v16.20.2\n"}

	err := in.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, cerr.ErrCodeUnsupportedRuntime, cerr.GetCode(err))
}

func TestUnsupportedRuntimeFailsBeforeCollection(t *testing.T) {
	// Detection is stage one: on Node 16 the user must never be asked a
	// single question.
	cfg := Config{Name: "any-app", Tier: TierMinimal}
	collected := false
	in, rec := newTestInstaller(t, cfg, WithCollector(func(*Config) error {
		collected = true
		return nil
	}))
	rec.Results["node --version"] = pm.Result{Stdout: "v16.20.2\n"}

	err := in.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, cerr.ErrCodeUnsupportedRuntime, cerr.GetCode(err))
	assert.False(t, collected)
}

func TestCollectorRunsAfterDetection(t *testing.T) {
	// A healthy environment hands control to the collector, and the
	// pipeline runs on the answers it fills in.
	cfg := Config{}
	in, rec := newTestInstaller(t, cfg, WithCollector(func(c *Config) error {
		c.Name = "asked-app"
		c.Tier = TierMinimal
		return nil
	}))

	require.NoError(t, in.Run(context.Background()))

	// Detection preceded collection: version checks are the first calls.
	cmds := rec.CommandStrings()
	require.GreaterOrEqual(t, len(cmds), 2)
	assert.Equal(t, "node --version", cmds[0])
	assert.FileExists(t, filepath.Join(in.Target(), "package.json"))
}

func TestNodeMissingIsUnsupportedRuntime(t *testing.T) {
	cfg := Config{Name: "any-app", Tier: TierMinimal}
	in, rec := newTestInstaller(t, cfg)
	rec.Errs["node --version"] = errors.New(`exec: "node": executable file not found in $PATH`)

	err := in.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, cerr.ErrCodeUnsupportedRuntime, cerr.GetCode(err))
}

func TestPackageManagerMissingIsFatal(t *testing.T) {
	cfg := Config{Name: "any-app", Tier: TierMinimal}
	in, rec := newTestInstaller(t, cfg)
	rec.Errs["npm --version"] = errors.New(`exec: "npm": executable file not found in $PATH`)

	err := in.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, cerr.ErrCodeNoPackageManager, cerr.GetCode(err))
}

func TestGitInitFailureIsWarning(t *testing.T) {
	cfg := Config{Name: "no-vcs-app", Tier: TierMinimal}
	in, rec := newTestInstaller(t, cfg)
	rec.Errs["git init"] = errors.New(`exec: "git": executable file not found in $PATH`)

	require.NoError(t, in.Run(context.Background()))
	require.Len(t, in.Warnings(), 1)
	assert.Contains(t, in.Warnings()[0], "git init")
}

func TestRunReportsStages(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Name: "loud-app", Tier: TierMinimal}
	in, _ := newTestInstaller(t, cfg, WithOutput(&buf))

	require.NoError(t, in.Run(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "⏳ Detecting environment...")
	assert.Contains(t, out, "✅ Finalizing")
	assert.Contains(t, out, "Project ready: loud-app")
	assert.Contains(t, out, "cd loud-app")
	assert.Contains(t, out, "npm run dev")
}
