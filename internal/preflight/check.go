// Package preflight validates the environment the installer depends on:
// the Node.js runtime, the active package manager, and the version-control
// tool. The doctor command prints the full report; the installer runs only
// the critical checks before scaffolding.
package preflight

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/chittyos/chitty-cli/internal/pm"
)

// MinNodeMajor is the minimum supported Node.js major version.
const MinNodeMajor = 18

// CheckStatus represents the result of a preflight check.
type CheckStatus int

const (
	// StatusPass indicates the check passed successfully.
	StatusPass CheckStatus = iota
	// StatusWarn indicates a non-critical warning.
	StatusWarn
	// StatusFail indicates the check failed.
	StatusFail
)

// String returns the string representation of a CheckStatus.
func (s CheckStatus) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusWarn:
		return "WARN"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// CheckResult holds the result of a single preflight check.
type CheckResult struct {
	Name     string      `json:"name"`
	Status   CheckStatus `json:"status"`
	Message  string      `json:"message"`
	Details  string      `json:"details,omitempty"`
	Required bool        `json:"required"`
}

// IsCritical returns true if this is a required check that failed.
func (r CheckResult) IsCritical() bool {
	return r.Required && r.Status == StatusFail
}

// Checker performs preflight validation checks.
type Checker struct {
	runner  pm.Runner
	manager pm.Kind
	verbose bool
	output  io.Writer
}

// Option configures a Checker.
type Option func(*Checker)

// WithRunner sets the command runner (a Recorder in tests).
func WithRunner(r pm.Runner) Option {
	return func(c *Checker) {
		c.runner = r
	}
}

// WithManager sets the package manager to check for.
func WithManager(kind pm.Kind) Option {
	return func(c *Checker) {
		c.manager = kind
	}
}

// WithVerbose enables verbose output.
func WithVerbose(verbose bool) Option {
	return func(c *Checker) {
		c.verbose = verbose
	}
}

// WithOutput sets the output writer.
func WithOutput(w io.Writer) Option {
	return func(c *Checker) {
		c.output = w
	}
}

// New creates a new Checker with the given options.
func New(opts ...Option) *Checker {
	c := &Checker{
		runner:  pm.NewRealRunner(),
		manager: pm.Npm,
		output:  os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunAll runs all preflight checks and returns the results.
func (c *Checker) RunAll(ctx context.Context) []CheckResult {
	return []CheckResult{
		c.CheckNode(ctx),
		c.CheckPackageManager(ctx),
		c.CheckGit(ctx),
	}
}

// NodeVersion reads the running Node.js version (e.g. "v22.1.0").
func (c *Checker) NodeVersion(ctx context.Context) (string, error) {
	res, err := c.runner.Run(ctx, "node", []string{"--version"}, pm.RunOpts{})
	if err != nil {
		return "", fmt.Errorf("node is not installed or not on PATH: %w", err)
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("node --version exited %d", res.ExitCode)
	}
	return strings.TrimSpace(res.Stdout), nil
}

// NodeSupported reports whether version (a "vMAJOR.MINOR.PATCH" string)
// satisfies the minimum supported major.
func NodeSupported(version string) bool {
	if !semver.IsValid(version) {
		return false
	}
	return semver.Compare(semver.Major(version), fmt.Sprintf("v%d", MinNodeMajor)) >= 0
}

// CheckNode verifies the Node.js runtime meets the minimum version.
func (c *Checker) CheckNode(ctx context.Context) CheckResult {
	result := CheckResult{
		Name:     "node",
		Required: true,
	}

	version, err := c.NodeVersion(ctx)
	if err != nil {
		result.Status = StatusFail
		result.Message = err.Error()
		return result
	}

	if !NodeSupported(version) {
		result.Status = StatusFail
		result.Message = fmt.Sprintf("Node.js %s is below the minimum (v%d)", version, MinNodeMajor)
		result.Details = "install a newer runtime from https://nodejs.org/"
		return result
	}

	result.Status = StatusPass
	result.Message = version
	return result
}

// CheckPackageManager verifies the detected package manager responds.
func (c *Checker) CheckPackageManager(ctx context.Context) CheckResult {
	result := CheckResult{
		Name:     string(c.manager),
		Required: true,
	}

	res, err := c.runner.Run(ctx, string(c.manager), []string{"--version"}, pm.RunOpts{})
	if err != nil || res.ExitCode != 0 {
		result.Status = StatusFail
		result.Message = fmt.Sprintf("%s is not installed or not on PATH", c.manager)
		return result
	}

	result.Status = StatusPass
	result.Message = strings.TrimSpace(res.Stdout)
	return result
}

// CheckGit verifies git is available. Doctor's exit contract counts git
// among the required tools; the installer itself only degrades to a
// warning when repo init fails at finalize.
func (c *Checker) CheckGit(ctx context.Context) CheckResult {
	result := CheckResult{
		Name:     "git",
		Required: true,
	}

	res, err := c.runner.Run(ctx, "git", []string{"--version"}, pm.RunOpts{})
	if err != nil || res.ExitCode != 0 {
		result.Status = StatusFail
		result.Message = "git is not installed or not on PATH"
		result.Details = "install git from https://git-scm.com/"
		return result
	}

	result.Status = StatusPass
	result.Message = strings.TrimSpace(res.Stdout)
	return result
}

// HasCriticalFailures returns true if any required check failed.
func (c *Checker) HasCriticalFailures(results []CheckResult) bool {
	for _, r := range results {
		if r.IsCritical() {
			return true
		}
	}
	return false
}

// SummaryStatus returns a summary status string for the results.
func (c *Checker) SummaryStatus(results []CheckResult) string {
	hasWarnings := false

	for _, r := range results {
		if r.IsCritical() {
			return "failed"
		}
		if r.Status == StatusWarn || (r.Status == StatusFail && !r.Required) {
			hasWarnings = true
		}
	}

	if hasWarnings {
		return "ready_with_warnings"
	}
	return "ready"
}

// PrintResults prints check results to the configured output.
func (c *Checker) PrintResults(results []CheckResult) {
	_, _ = fmt.Fprintln(c.output, "Chitty System Check")
	_, _ = fmt.Fprintln(c.output, "===================")
	_, _ = fmt.Fprintln(c.output)

	for _, r := range results {
		_, _ = fmt.Fprintf(c.output, "[%s] %s: %s\n", r.Status, r.Name, r.Message)
		if c.verbose && r.Details != "" {
			_, _ = fmt.Fprintf(c.output, "      %s\n", r.Details)
		}
	}

	_, _ = fmt.Fprintln(c.output)
	_, _ = fmt.Fprintf(c.output, "Status: %s\n", strings.ToUpper(c.SummaryStatus(results)))
}
