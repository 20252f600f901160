package operations

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunnerCapturesTrimmedStdout(t *testing.T) {
	out, err := ExecRunner{}.Run("sh", []string{"-c", "printf '  hello  '"}, "")

	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	out, err := ExecRunner{}.Run("sh", []string{"-c", "echo boom >&2; exit 3"}, "")

	require.Error(t, err)
	assert.Empty(t, out)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, "sh", cmdErr.Program)
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Equal(t, "boom", cmdErr.Stderr)
}

func TestExecRunnerWorkingDirectory(t *testing.T) {
	dir := t.TempDir()

	out, err := ExecRunner{}.Run("sh", []string{"-c", "pwd"}, dir)

	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, out)
}

func TestExecRunnerMissingProgram(t *testing.T) {
	_, err := ExecRunner{}.Run("definitely-not-a-real-program", nil, "")

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, -1, cmdErr.ExitCode)
	assert.NotEmpty(t, cmdErr.Stderr)
}
