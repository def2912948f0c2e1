package dispatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestArgs(t *testing.T) {
	tests := []struct {
		name     string
		request  *Request
		expected []string
	}{
		{
			name: "fully populated create-repo request",
			request: &Request{
				Action:      ActionCreateRepo,
				Org:         "example-org",
				Repo:        "myrepo",
				Permission:  PermissionPush,
				RepoName:    "myrepo2",
				RepoPrivate: "true",
			},
			expected: []string{
				"--action", "create-repo",
				"--org", "example-org",
				"--repo", "myrepo",
				"--permission", "push",
				"--repo-name", "myrepo2",
				"--repo-private",
			},
		},
		{
			name: "permission sentinel is omitted",
			request: &Request{
				Action:     ActionAddUser,
				Org:        "another-org",
				Repo:       "r1",
				User:       "alice",
				Permission: PermissionNone,
			},
			expected: []string{
				"--action", "add-user",
				"--org", "another-org",
				"--repo", "r1",
				"--user", "alice",
			},
		},
		{
			name: "required fields only",
			request: &Request{
				Action: ActionDeleteTeam,
				Org:    "new-organization97",
				Repo:   "r1",
			},
			expected: []string{
				"--action", "delete-team",
				"--org", "new-organization97",
				"--repo", "r1",
			},
		},
		{
			name: "team flag included when set",
			request: &Request{
				Action:     ActionAddRepo,
				Org:        "example-org",
				Team:       "platform",
				Repo:       "api",
				Permission: PermissionMaintain,
			},
			expected: []string{
				"--action", "add-repo",
				"--org", "example-org",
				"--team", "platform",
				"--repo", "api",
				"--permission", "maintain",
			},
		},
		{
			name: "repo_private false stays off the command line",
			request: &Request{
				Action:      ActionCreateRepo,
				Org:         "example-org",
				Repo:        "myrepo",
				RepoName:    "service",
				RepoPrivate: "false",
			},
			expected: []string{
				"--action", "create-repo",
				"--org", "example-org",
				"--repo", "myrepo",
				"--repo-name", "service",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.request.Args())
		})
	}
}

func TestRequestArgsNeverContainsSentinel(t *testing.T) {
	for _, permission := range []Permission{"", PermissionNone} {
		req := &Request{
			Action:     ActionAddRepo,
			Org:        "example-org",
			Team:       "platform",
			Repo:       "api",
			Permission: permission,
		}

		args := req.Args()
		assert.NotContains(t, args, "--permission")
		assert.NotContains(t, args, "nil")
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		request   *Request
		wantErr   bool
		errSubstr []string
	}{
		{
			name: "valid minimal request",
			request: &Request{
				Action: ActionDeleteTeam,
				Org:    "new-organization97",
				Repo:   "r1",
			},
			wantErr: false,
		},
		{
			name:      "missing everything reports each required field",
			request:   &Request{},
			wantErr:   true,
			errSubstr: []string{"action", "org", "repo"},
		},
		{
			name: "missing repo",
			request: &Request{
				Action: ActionCreateTeam,
				Org:    "example-org",
			},
			wantErr:   true,
			errSubstr: []string{"repo is required"},
		},
		{
			name: "unknown action",
			request: &Request{
				Action: "destroy-org",
				Org:    "example-org",
				Repo:   "r1",
			},
			wantErr:   true,
			errSubstr: []string{"action", "destroy-org"},
		},
		{
			name: "org outside allow-list",
			request: &Request{
				Action: ActionCreateTeam,
				Org:    "unlisted-org",
				Repo:   "r1",
			},
			wantErr:   true,
			errSubstr: []string{"org", "unlisted-org"},
		},
		{
			name: "invalid permission",
			request: &Request{
				Action:     ActionAddRepo,
				Org:        "example-org",
				Repo:       "r1",
				Permission: "owner",
			},
			wantErr:   true,
			errSubstr: []string{"permission", "owner"},
		},
		{
			name: "invalid repo_private value",
			request: &Request{
				Action:      ActionCreateRepo,
				Org:         "example-org",
				Repo:        "r1",
				RepoPrivate: "yes",
			},
			wantErr:   true,
			errSubstr: []string{"repo_private", "yes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate(nil)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			for _, substr := range tt.errSubstr {
				assert.Contains(t, err.Error(), substr)
			}
		})
	}
}

func TestRequestValidateCustomAllowList(t *testing.T) {
	req := &Request{
		Action: ActionCreateTeam,
		Org:    "acme-corp",
		Repo:   "r1",
	}

	// Rejected against the defaults, accepted against a custom allow-list.
	require.Error(t, req.Validate(nil))
	assert.NoError(t, req.Validate([]string{"acme-corp"}))
}

func TestRequestValidateAccumulatesErrors(t *testing.T) {
	req := &Request{
		Action:     "bogus",
		Permission: "owner",
	}

	err := req.Validate(nil)
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 4) // bad action, missing org, missing repo, bad permission
}

func TestNewRequestDefaults(t *testing.T) {
	req := NewRequest()
	assert.Equal(t, PermissionNone, req.Permission)
	assert.Equal(t, "false", req.RepoPrivate)
}

func TestParseAction(t *testing.T) {
	action, err := ParseAction("user-access")
	require.NoError(t, err)
	assert.Equal(t, ActionUserAccess, action)

	_, err = ParseAction("")
	assert.Error(t, err)

	_, err = ParseAction("make-coffee")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "make-coffee")
}

func TestRequestString(t *testing.T) {
	req := &Request{
		Action: ActionUserAccess,
		Org:    "example-org",
		Repo:   "r1",
		User:   "alice",
	}

	line := req.String()
	assert.True(t, strings.HasPrefix(line, "--action user-access"))
	assert.Contains(t, line, "--user alice")
}
