package operations

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner abstracts external command execution so the git and package manager
// collaborators can be replaced in tests.
type Runner interface {
	Run(name string, args []string, dir string) (string, error)
}

// CommandError is returned when an external command could not be started or
// exited nonzero. Stderr holds the command's trimmed diagnostic output.
type CommandError struct {
	Program  string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s exited with code %d", e.Program, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d: %s", e.Program, e.ExitCode, e.Stderr)
}

// ExecRunner runs real OS processes and blocks until they exit. There is no
// retry and no timeout here; callers own that policy.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args []string, dir string) (string, error) {
	cmd := exec.Command(name, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cmdErr := &CommandError{
			Program:  name,
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		} else if cmdErr.Stderr == "" {
			// The process never started; keep the spawn error as the diagnostic.
			cmdErr.Stderr = err.Error()
		}
		return "", cmdErr
	}

	return strings.TrimSpace(stdout.String()), nil
}
