// Package poetry adds starter development dependencies through the Poetry CLI.
package poetry

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Result is the outcome of one external command.
type Result struct {
	// Command is the command line that was run.
	Command string

	// Output is the combined stdout and stderr.
	Output string

	// ExitCode is the process exit code, or -1 if the process did not run.
	ExitCode int

	// Err is set when the command could not be started or exited non-zero.
	Err error
}

// OK reports whether the command ran and exited zero.
func (r Result) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Runner runs external commands.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) Result
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes name with args in dir and captures its combined output.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) Result {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	res := Result{
		Command:  commandLine(name, args),
		ExitCode: -1,
	}

	err := cmd.Run()
	res.Output = out.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.ExitCode = 0
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		res.Err = err
	default:
		res.Err = err
	}

	return res
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
