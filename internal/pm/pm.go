package pm

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Kind identifies a supported package manager.
type Kind string

const (
	Npm  Kind = "npm"
	Yarn Kind = "yarn"
	Pnpm Kind = "pnpm"
	Bun  Kind = "bun"
)

// lockfiles maps lockfile names to the manager that owns them.
// Order matters: the first match in the working directory wins.
var lockfiles = []struct {
	file string
	kind Kind
}{
	{"yarn.lock", Yarn},
	{"pnpm-lock.yaml", Pnpm},
	{"bun.lockb", Bun},
	{"package-lock.json", Npm},
}

// Detect determines which package manager is in effect for the current
// environment: the invoking manager's user-agent env var first, then a
// lockfile in dir, then the first manager found on PATH. Defaults to npm.
func Detect(dir string) Kind {
	if ua := os.Getenv("npm_config_user_agent"); ua != "" {
		if k, ok := kindFromUserAgent(ua); ok {
			return k
		}
	}

	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.file)); err == nil {
			return lf.kind
		}
	}

	for _, k := range []Kind{Yarn, Pnpm, Bun} {
		if _, err := exec.LookPath(string(k)); err == nil {
			return k
		}
	}

	return Npm
}

// kindFromUserAgent parses the leading "<name>/<version>" token of
// npm_config_user_agent.
func kindFromUserAgent(ua string) (Kind, bool) {
	name, _, ok := strings.Cut(ua, "/")
	if !ok {
		return "", false
	}
	switch Kind(name) {
	case Npm, Yarn, Pnpm, Bun:
		return Kind(name), true
	default:
		return "", false
	}
}

// Manager runs package-manager commands for a detected Kind through a Runner.
type Manager struct {
	kind   Kind
	runner Runner
}

// NewManager creates a Manager for the given kind.
func NewManager(kind Kind, runner Runner) *Manager {
	return &Manager{kind: kind, runner: runner}
}

// Kind returns the detected package manager kind.
func (m *Manager) Kind() Kind {
	return m.kind
}

// InstallPackage installs a single package into the project at dir.
func (m *Manager) InstallPackage(ctx context.Context, dir, pkg string) error {
	args := m.addArgs(pkg)
	return m.run(ctx, dir, args)
}

// InstallAll installs all dependencies declared in the manifest at dir.
func (m *Manager) InstallAll(ctx context.Context, dir string) error {
	return m.run(ctx, dir, []string{"install"})
}

func (m *Manager) run(ctx context.Context, dir string, args []string) error {
	res, err := m.runner.Run(ctx, string(m.kind), args, RunOpts{Dir: dir})
	if err != nil {
		return fmt.Errorf("%s %s: %w", m.kind, strings.Join(args, " "), err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("%s %s exited %d: %s",
			m.kind, strings.Join(args, " "), res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return nil
}

// addArgs returns the manager's single-package install arguments.
func (m *Manager) addArgs(pkg string) []string {
	switch m.kind {
	case Npm:
		return []string{"install", pkg}
	default: // yarn, pnpm, bun share the add verb
		return []string{"add", pkg}
	}
}

// RunCommand renders the command a user types to run a manifest script.
// Used for the success report's next-step hints.
func (m *Manager) RunCommand(script string) string {
	switch m.kind {
	case Npm:
		return "npm run " + script
	default:
		return string(m.kind) + " " + script
	}
}
