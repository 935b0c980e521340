package installer

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	cerr "github.com/chittyos/chitty-cli/internal/errors"
	"github.com/chittyos/chitty-cli/internal/output"
	"github.com/chittyos/chitty-cli/internal/pm"
	"github.com/chittyos/chitty-cli/internal/preflight"
	"github.com/chittyos/chitty-cli/internal/scaffold"
	"github.com/chittyos/chitty-cli/internal/ui"
)

// corePackage is the base dependency every generated project starts with.
const corePackage = "@chittyos/core"

// componentPackage renders the registry name of a ChittyOS app.
func componentPackage(app string) string {
	return "@chittyos/" + app
}

// Confirmer answers a yes/no question put to the user. The interactive
// implementation is a huh confirm; tests script the answer.
type Confirmer func(question string) (bool, error)

// Collector fills in the remaining configuration answers. The interactive
// implementation is the prompt form sequence; it runs as its own pipeline
// stage, strictly after environment detection, so a broken runtime fails
// before the user answers anything.
type Collector func(cfg *Config) error

// Installer runs the scaffolding pipeline for one collected Config.
// Stages execute in fixed order; a fatal error aborts, warnings accumulate
// and surface in the final report.
type Installer struct {
	cfg       Config
	baseDir   string
	kind      pm.Kind
	runner    pm.Runner
	manager   *pm.Manager
	out       *output.Writer
	rawOut    io.Writer
	confirm   Confirmer
	collect   Collector
	force     bool
	templates fs.FS
	styles    ui.Styles
	warnings  []string
}

// InstallerOption configures an Installer.
type InstallerOption func(*Installer)

// WithRunner sets the command runner (a Recorder in tests).
func WithRunner(r pm.Runner) InstallerOption {
	return func(in *Installer) { in.runner = r }
}

// WithManagerKind pins the package manager instead of detecting it.
func WithManagerKind(k pm.Kind) InstallerOption {
	return func(in *Installer) { in.kind = k }
}

// WithOutput redirects progress output.
func WithOutput(w io.Writer) InstallerOption {
	return func(in *Installer) {
		in.out = output.New(w)
		in.rawOut = w
	}
}

// WithConfirmer sets the overwrite confirmation callback.
func WithConfirmer(c Confirmer) InstallerOption {
	return func(in *Installer) { in.confirm = c }
}

// WithCollector sets the interactive configuration stage. Without one the
// pipeline runs on the Config it was constructed with.
func WithCollector(c Collector) InstallerOption {
	return func(in *Installer) { in.collect = c }
}

// WithForce skips the overwrite confirmation.
func WithForce(force bool) InstallerOption {
	return func(in *Installer) { in.force = force }
}

// WithTemplates overrides the embedded template filesystem.
func WithTemplates(fsys fs.FS) InstallerOption {
	return func(in *Installer) { in.templates = fsys }
}

// WithStyles sets the report styling (NoColorStyles for non-TTY runs).
func WithStyles(s ui.Styles) InstallerOption {
	return func(in *Installer) { in.styles = s }
}

// New creates an Installer for cfg, scaffolding into baseDir/<cfg.Name>.
func New(cfg Config, baseDir string, templates fs.FS, opts ...InstallerOption) *Installer {
	in := &Installer{
		cfg:       cfg,
		baseDir:   baseDir,
		runner:    pm.NewRealRunner(),
		out:       output.New(os.Stdout),
		rawOut:    os.Stdout,
		templates: templates,
		styles:    ui.DefaultStyles(),
		confirm: func(string) (bool, error) {
			return false, nil
		},
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Target returns the directory the project is scaffolded into.
func (in *Installer) Target() string {
	return filepath.Join(in.baseDir, in.cfg.Name)
}

// Warnings returns the non-fatal problems encountered so far.
func (in *Installer) Warnings() []string {
	return in.warnings
}

// Run executes the pipeline. The returned error is nil on success,
// ErrCancelled when the user declined an overwrite, or a fatal
// *cerr.ChittyError otherwise. Warnings never produce a non-nil return.
func (in *Installer) Run(ctx context.Context) error {
	stage := in.out.BeginStage("Detecting environment")
	if err := in.detectEnvironment(ctx); err != nil {
		stage.Fail(err)
		return err
	}
	stage.Done()

	// Configuration collection comes strictly after detection, so an
	// unsupported runtime fails before any question is asked. No stage
	// marker here: the form owns the terminal while it runs.
	if in.collect != nil {
		if err := in.collect(&in.cfg); err != nil {
			return err
		}
	}
	in.cfg.Normalize()
	if err := in.cfg.Validate(); err != nil {
		return err
	}

	target := in.Target()

	stage = in.out.BeginStage("Preparing " + in.cfg.Name)
	lock, err := in.prepareTarget(target)
	if err != nil {
		if cerr.IsCancelled(err) {
			in.out.Status("", "cancelled")
			return err
		}
		stage.Fail(err)
		return err
	}
	defer func() { _ = lock.Unlock() }()
	stage.Done()

	stage = in.out.BeginStage("Installing framework")
	if err := in.installFramework(ctx, target); err != nil {
		stage.Fail(err)
		return err
	}
	stage.Done()

	stage = in.out.BeginStage("Copying templates")
	if err := in.materializeTemplates(target); err != nil {
		stage.Fail(err)
		return err
	}
	stage.Done()

	stage = in.out.BeginStage("Configuring integration")
	if err := in.configureIntegration(ctx, target); err != nil {
		stage.Fail(err)
		return err
	}
	stage.Done()

	stage = in.out.BeginStage("Finalizing")
	if err := in.finalize(ctx, target); err != nil {
		stage.Fail(err)
		return err
	}
	stage.Done()

	in.report()
	return nil
}

// detectEnvironment resolves the package manager and verifies the Node.js
// runtime meets the minimum version.
func (in *Installer) detectEnvironment(ctx context.Context) error {
	if in.kind == "" {
		in.kind = pm.Detect(in.baseDir)
	}
	in.manager = pm.NewManager(in.kind, in.runner)
	slog.Debug("environment detected", "manager", in.kind)

	checker := preflight.New(
		preflight.WithRunner(in.runner),
		preflight.WithManager(in.kind),
	)

	version, err := checker.NodeVersion(ctx)
	if err != nil {
		return cerr.New(cerr.ErrCodeUnsupportedRuntime, "Node.js runtime not found", err).
			WithSuggestion(fmt.Sprintf("install Node.js %d or newer from https://nodejs.org/", preflight.MinNodeMajor))
	}
	if !preflight.NodeSupported(version) {
		return cerr.New(cerr.ErrCodeUnsupportedRuntime,
			fmt.Sprintf("Node.js %s is below the minimum (v%d)", version, preflight.MinNodeMajor), nil).
			WithSuggestion("upgrade the runtime and run chitty doctor")
	}

	res, err := in.runner.Run(ctx, string(in.kind), []string{"--version"}, pm.RunOpts{})
	if err != nil || res.ExitCode != 0 {
		return cerr.New(cerr.ErrCodeNoPackageManager,
			fmt.Sprintf("%s is not installed or not on PATH", in.kind), err)
	}
	return nil
}

// prepareTarget confirms an overwrite when the target exists, acquires the
// install lock, clears any previous contents, and creates the directory.
// Nothing is written before the user confirms.
func (in *Installer) prepareTarget(target string) (*InstallLock, error) {
	exists := false
	if _, err := os.Stat(target); err == nil {
		exists = true
	} else if !os.IsNotExist(err) {
		return nil, cerr.Wrap(cerr.ErrCodeInternal, err)
	}

	if exists && !in.force {
		ok, err := in.confirm(fmt.Sprintf("Directory %q already exists. Overwrite it?", in.cfg.Name))
		if err != nil {
			return nil, cerr.Wrap(cerr.ErrCodeInternal, err)
		}
		if !ok {
			return nil, cerr.ErrCancelled
		}
	}

	lock := NewInstallLock(target)
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, cerr.Wrap(cerr.ErrCodeInternal, err)
	}
	if !acquired {
		return nil, cerr.New(cerr.ErrCodeFrameworkInstall,
			fmt.Sprintf("another install is already running for %q", in.cfg.Name), nil)
	}

	if exists {
		if err := os.RemoveAll(target); err != nil {
			_ = lock.Unlock()
			return nil, cerr.New(cerr.ErrCodeFrameworkInstall, "removing existing directory", err)
		}
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		_ = lock.Unlock()
		return nil, cerr.New(cerr.ErrCodeFrameworkInstall, "creating target directory", err)
	}
	return lock, nil
}

// installFramework writes the manifest and installs the base dependency.
func (in *Installer) installFramework(ctx context.Context, target string) error {
	if err := scaffold.WriteManifest(target, in.cfg.Name); err != nil {
		return cerr.New(cerr.ErrCodeFrameworkInstall, "writing package.json", err)
	}
	if err := in.manager.InstallPackage(ctx, target, corePackage); err != nil {
		return cerr.New(cerr.ErrCodeFrameworkInstall,
			fmt.Sprintf("installing %s", corePackage), err).
			WithSuggestion("check network access and registry configuration")
	}
	return nil
}

// materializeTemplates copies the tooling templates into the target.
func (in *Installer) materializeTemplates(target string) error {
	written, err := scaffold.Materialize(target, in.templates)
	if err != nil {
		return cerr.New(cerr.ErrCodeTemplateCopy, "copying templates", err)
	}
	slog.Debug("templates copied", "count", len(written))
	return nil
}

// configureIntegration installs the selected components and writes the
// generated configuration. A failed component install is a warning; the
// remaining components still install.
func (in *Installer) configureIntegration(ctx context.Context, target string) error {
	for _, app := range in.cfg.Apps {
		if err := in.manager.InstallPackage(ctx, target, componentPackage(app)); err != nil {
			in.warn(cerr.WarnCodeComponentInstall,
				fmt.Sprintf("component %s failed to install: %v", app, err))
		}
	}

	if err := scaffold.WriteAppConfig(target, in.cfg.Apps, in.cfg.Features); err != nil {
		return cerr.New(cerr.ErrCodeIntegrationConfig, "writing chitty.config.js", err)
	}
	if in.cfg.Features.Database {
		if err := scaffold.WriteDatabase(target); err != nil {
			return cerr.New(cerr.ErrCodeIntegrationConfig, "scaffolding database layer", err)
		}
	}
	if in.cfg.Features.Auth {
		if err := scaffold.WriteAuth(target); err != nil {
			return cerr.New(cerr.ErrCodeIntegrationConfig, "scaffolding auth module", err)
		}
	}
	if in.cfg.Features.Docker {
		if err := scaffold.WriteDocker(target); err != nil {
			return cerr.New(cerr.ErrCodeIntegrationConfig, "scaffolding container setup", err)
		}
	}
	return nil
}

// finalize runs the bulk dependency install, writes the ignore file, and
// initializes version control. A failed git init is a warning only.
func (in *Installer) finalize(ctx context.Context, target string) error {
	if err := in.manager.InstallAll(ctx, target); err != nil {
		return cerr.New(cerr.ErrCodeFinalization, "installing dependencies", err)
	}
	if err := scaffold.WriteGitignore(target); err != nil {
		return cerr.New(cerr.ErrCodeFinalization, "writing .gitignore", err)
	}

	res, err := in.runner.Run(ctx, "git", []string{"init"}, pm.RunOpts{Dir: target})
	if err != nil || res.ExitCode != 0 {
		in.warn(cerr.WarnCodeVcsInit, "git init failed; initialize the repository manually")
	}
	return nil
}

// warn records a non-fatal problem and prints it immediately.
func (in *Installer) warn(code, msg string) {
	in.warnings = append(in.warnings, msg)
	in.out.Warning(msg)
	slog.Debug("pipeline warning", "code", code, "msg", msg)
}

// report prints the styled success summary.
func (in *Installer) report() {
	r := ui.Report{
		Name:     in.cfg.Name,
		Tier:     string(in.cfg.Tier),
		Apps:     in.cfg.Apps,
		Warnings: in.warnings,
		NextSteps: []string{
			"cd " + in.cfg.Name,
			in.manager.RunCommand("dev"),
		},
	}
	in.out.Newline()
	_, _ = fmt.Fprintln(in.rawOut, r.Render(in.styles))
}
