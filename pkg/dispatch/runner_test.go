package dispatch

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript drops a small shell script into a temp dir so the dispatcher
// has a real process to spawn.
func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "admin.sh")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestDispatchRunsScriptWithArgs(t *testing.T) {
	script := writeScript(t, `echo "$@"`)

	var out bytes.Buffer
	d := &Dispatcher{
		Script:      script,
		Interpreter: "sh",
		Stdout:      &out,
		Stderr:      &out,
	}

	req := &Request{
		Action:     ActionAddUser,
		Org:        "another-org",
		Repo:       "r1",
		User:       "alice",
		Permission: PermissionNone,
	}

	err := d.Dispatch(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "--action add-user --org another-org --repo r1 --user alice\n", out.String())
}

func TestDispatchPropagatesExitCode(t *testing.T) {
	script := writeScript(t, "exit 3")

	d := &Dispatcher{Script: script, Interpreter: "sh"}

	req := &Request{
		Action: ActionDeleteTeam,
		Org:    "new-organization97",
		Repo:   "r1",
	}

	err := d.Dispatch(context.Background(), req)
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
	assert.Equal(t, script, exitErr.Path)
}

func TestDispatchFailsBeforeSpawningOnInvalidRequest(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "ran")
	script := writeScript(t, "touch "+marker)

	d := &Dispatcher{Script: script, Interpreter: "sh"}

	// Missing repo: the script must never run.
	req := &Request{
		Action: ActionCreateTeam,
		Org:    "example-org",
		Team:   "platform",
	}

	err := d.Dispatch(context.Background(), req)
	require.Error(t, err)

	var errs ValidationErrors
	assert.ErrorAs(t, err, &errs)
	assert.NoFileExists(t, marker)
}

func TestDispatchPassesEnvThrough(t *testing.T) {
	script := writeScript(t, `printf '%s' "$TOKEN"`)

	var out bytes.Buffer
	d := &Dispatcher{
		Script:      script,
		Interpreter: "sh",
		Env:         []string{"TOKEN=gh-test-token"},
		Stdout:      &out,
	}

	req := &Request{
		Action: ActionUserAccess,
		Org:    "example-org",
		Repo:   "r1",
		User:   "alice",
	}

	require.NoError(t, d.Dispatch(context.Background(), req))
	assert.Equal(t, "gh-test-token", out.String())
}

func TestDispatchMissingScript(t *testing.T) {
	d := &Dispatcher{
		Script:      filepath.Join(t.TempDir(), "does-not-exist.py"),
		Interpreter: "",
	}

	req := &Request{
		Action: ActionCreateTeam,
		Org:    "example-org",
		Repo:   "r1",
	}

	err := d.Dispatch(context.Background(), req)
	require.Error(t, err)

	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr), "a script that never started must not report an exit code")
}

func TestCommandLine(t *testing.T) {
	d := New()
	req := &Request{
		Action: ActionCreateRepo,
		Org:    "example-org",
		Repo:   "myrepo",
	}

	line := d.CommandLine(req)
	assert.Equal(t, []string{
		DefaultInterpreter, DefaultScript,
		"--action", "create-repo",
		"--org", "example-org",
		"--repo", "myrepo",
	}, line)
}

func TestCommandLineWithoutInterpreter(t *testing.T) {
	d := &Dispatcher{Script: "scripts/github_admin"}
	req := &Request{
		Action: ActionCreateTeam,
		Org:    "example-org",
		Repo:   "r1",
	}

	line := d.CommandLine(req)
	assert.Equal(t, "scripts/github_admin", line[0])
}
