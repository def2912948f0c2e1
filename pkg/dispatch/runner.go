package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// DefaultScript is the admin script invoked when no other path is configured.
const DefaultScript = "scripts/git-manager.py"

// DefaultInterpreter runs the admin script.
const DefaultInterpreter = "python3"

// Dispatcher validates invocation requests and runs the external admin
// script with a typed argument vector. The command line is never assembled
// as a shell string, so user-supplied values cannot be re-interpreted.
type Dispatcher struct {
	// Script is the path of the external admin script.
	Script string

	// Interpreter runs Script. When empty, Script is executed directly.
	Interpreter string

	// AllowedOrgs is the organization allow-list. Empty means
	// DefaultAllowedOrgs.
	AllowedOrgs []string

	// Env holds additional KEY=VALUE pairs appended to the inherited
	// environment, typically the TOKEN entry for the script.
	Env []string

	// Stdout and Stderr receive the script's output. They default to the
	// process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Dispatcher with the default script and interpreter.
func New() *Dispatcher {
	return &Dispatcher{
		Script:      DefaultScript,
		Interpreter: DefaultInterpreter,
	}
}

// Dispatch validates req and runs the external script once, streaming its
// output through. Validation failures are reported before any process is
// spawned. A non-zero script exit surfaces as *ExitError carrying the exact
// exit code.
func (d *Dispatcher) Dispatch(ctx context.Context, req *Request) error {
	if err := req.Validate(d.AllowedOrgs); err != nil {
		return err
	}

	cmd := d.command(ctx, req.Args())

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{
				Path: d.Script,
				Code: exitErr.ExitCode(),
				Err:  err,
			}
		}
		return fmt.Errorf("failed to run %s: %w", d.Script, err)
	}

	return nil
}

// CommandLine returns the exact program and arguments Dispatch would run for
// req, for logging and dry-run output.
func (d *Dispatcher) CommandLine(req *Request) []string {
	line := make([]string, 0, 2+len(req.Args()))
	if d.Interpreter != "" {
		line = append(line, d.Interpreter)
	}
	line = append(line, d.script())
	line = append(line, req.Args()...)
	return line
}

func (d *Dispatcher) command(ctx context.Context, args []string) *exec.Cmd {
	var cmd *exec.Cmd
	if d.Interpreter != "" {
		cmd = exec.CommandContext(ctx, d.Interpreter, append([]string{d.script()}, args...)...)
	} else {
		cmd = exec.CommandContext(ctx, d.script(), args...)
	}

	cmd.Env = append(os.Environ(), d.Env...)

	cmd.Stdout = d.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = d.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	return cmd
}

func (d *Dispatcher) script() string {
	if d.Script == "" {
		return DefaultScript
	}
	return d.Script
}
