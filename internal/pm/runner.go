// Package pm detects the active JavaScript package manager and runs its
// commands behind a stub-friendly interface.
package pm

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// Result holds the outcome of a command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	Dir string // working directory (optional)
}

// Runner is the interface for running external commands.
// Implementations must be safe for stubbing in tests.
type Runner interface {
	// Run executes a command and returns the result.
	// Returns a Result with ExitCode set if the process exits (even non-zero).
	// Returns error only for execution failures (binary not found, ctx
	// canceled, io failure).
	Run(ctx context.Context, name string, args []string, opts RunOpts) (Result, error)
}

// RealRunner is the production Runner backed by os/exec.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes the command and captures stdout/stderr. Subprocess output is
// never echoed to the terminal; callers surface stderr in errors when needed.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}

// Call records one invocation made through a Recorder.
type Call struct {
	Name string
	Args []string
	Dir  string
}

// Recorder is a Runner test double. It records invocations and returns
// scripted results instead of executing subprocesses.
type Recorder struct {
	Calls []Call

	// Results maps a command string ("name arg1 arg2 ...") to its result.
	// Unscripted commands succeed with exit code 0.
	Results map[string]Result

	// Errs maps a command string to an execution error (binary not found,
	// context cancelled). Takes precedence over Results.
	Errs map[string]error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Results: make(map[string]Result),
		Errs:    make(map[string]error),
	}
}

// Run records the call and returns the scripted outcome.
func (r *Recorder) Run(_ context.Context, name string, args []string, opts RunOpts) (Result, error) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args, Dir: opts.Dir})

	key := commandKey(name, args)
	if err, ok := r.Errs[key]; ok {
		return Result{}, err
	}
	if res, ok := r.Results[key]; ok {
		return res, nil
	}
	return Result{}, nil
}

// CommandStrings returns the recorded calls as "name arg1 arg2 ..." strings,
// in invocation order.
func (r *Recorder) CommandStrings() []string {
	cmds := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		cmds[i] = commandKey(c.Name, c.Args)
	}
	return cmds
}

func commandKey(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
