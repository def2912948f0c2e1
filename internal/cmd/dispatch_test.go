package cmd

import (
	"bytes"
	"testing"

	"ghadmin/pkg/dispatch"
)

func resetDispatchFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		dispatchAction = ""
		dispatchOrg = ""
		dispatchTeam = ""
		dispatchRepo = ""
		dispatchUser = ""
		dispatchPermission = string(dispatch.PermissionNone)
		dispatchRepoName = ""
		dispatchRepoPrivate = "false"
		dispatchFromEnv = false
		dispatchDryRun = false
		dispatchScript = ""
		dispatchInterpreter = ""
	})
}

func TestDispatchCommandRegistration(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "dispatch" {
			found = true
			break
		}
	}
	if !found {
		t.Error("dispatch command not found in root command")
	}
}

func TestDispatchCommandHelp(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"dispatch", "--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Failed to execute dispatch help command: %v", err)
	}

	output := buf.String()
	expectedContent := []string{
		"--action",
		"--org",
		"--repo",
		"--permission",
		"--repo-private",
		"--from-env",
		"--dry-run",
	}
	for _, content := range expectedContent {
		if !bytes.Contains([]byte(output), []byte(content)) {
			t.Errorf("Help output missing expected content: %s", content)
		}
	}
}

func TestBuildDispatchRequestFromFlags(t *testing.T) {
	resetDispatchFlags(t)

	dispatchAction = "create-repo"
	dispatchOrg = "example-org"
	dispatchRepo = "myrepo"
	dispatchRepoName = "myrepo2"
	dispatchRepoPrivate = "true"
	dispatchPermission = "push"

	req := buildDispatchRequest(dispatchCmd)

	if req.Action != dispatch.ActionCreateRepo {
		t.Errorf("Expected action create-repo, got %s", req.Action)
	}
	if req.Org != "example-org" {
		t.Errorf("Expected org example-org, got %s", req.Org)
	}
	if req.RepoPrivate != "true" {
		t.Errorf("Expected repo_private true, got %s", req.RepoPrivate)
	}
	if req.Permission != dispatch.PermissionPush {
		t.Errorf("Expected permission push, got %s", req.Permission)
	}
}

func TestBuildDispatchRequestFromEnv(t *testing.T) {
	resetDispatchFlags(t)

	t.Setenv(dispatch.EnvAction, "delete-team")
	t.Setenv(dispatch.EnvOrg, "new-organization97")
	t.Setenv(dispatch.EnvRepo, "r1")
	t.Setenv(dispatch.EnvTeam, "platform")

	dispatchFromEnv = true

	req := buildDispatchRequest(dispatchCmd)

	if req.Action != dispatch.ActionDeleteTeam {
		t.Errorf("Expected action delete-team, got %s", req.Action)
	}
	if req.Org != "new-organization97" {
		t.Errorf("Expected org new-organization97, got %s", req.Org)
	}
	if req.Team != "platform" {
		t.Errorf("Expected team platform, got %s", req.Team)
	}
	if req.Permission != dispatch.PermissionNone {
		t.Errorf("Expected default permission sentinel, got %s", req.Permission)
	}
}
