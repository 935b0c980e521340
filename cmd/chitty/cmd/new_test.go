package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/chittyos/chitty-cli/internal/errors"
)

// inTempDir runs the rest of the test from a fresh temp directory so no
// .chittyrc.yaml or lockfile in the repo influences the command.
func inTempDir(t *testing.T) {
	t.Helper()
	oldDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldDir) })
}

func newRunner(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestNewCmd_NonInteractiveRequiresName(t *testing.T) {
	// Given: a non-interactive run with no project name
	inTempDir(t)

	// When: executing new --yes
	_, err := newRunner(t, "new", "--yes")

	// Then: it fails with an input error, not a prompt
	require.Error(t, err)
	assert.Equal(t, cerr.ErrCodeInvalidInput, cerr.GetCode(err))
}

func TestNewCmd_RejectsInvalidName(t *testing.T) {
	// Given: an uppercase project name
	inTempDir(t)

	// When: executing non-interactively
	_, err := newRunner(t, "new", "MyApp", "--yes")

	// Then: validation rejects it before anything runs
	require.Error(t, err)
	assert.Equal(t, cerr.ErrCodeInvalidInput, cerr.GetCode(err))
}

func TestNewCmd_RejectsUnknownTier(t *testing.T) {
	// Given: a tier outside the known set
	inTempDir(t)

	// When: executing with --tier galactic
	_, err := newRunner(t, "new", "my-chittyapp", "--tier", "galactic", "--yes")

	// Then: the flag is rejected
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tier")
}

func TestNewCmd_RejectsUnknownComponent(t *testing.T) {
	// Given: a custom tier with a bogus component
	inTempDir(t)

	// When: executing non-interactively
	_, err := newRunner(t, "new", "my-chittyapp",
		"--tier", "custom", "--app", "chittybogus", "--yes")

	// Then: validation rejects the component
	require.Error(t, err)
	assert.Equal(t, cerr.ErrCodeInvalidInput, cerr.GetCode(err))
}

func TestNewCmd_FlagSurface(t *testing.T) {
	// Given: the new command
	cmd := newNewCmd()

	// Then: every documented flag exists
	for _, name := range []string{"tier", "app", "database", "auth", "docker", "force", "yes"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag --%s", name)
	}
}
