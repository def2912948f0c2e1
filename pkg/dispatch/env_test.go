package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestFromLookup(t *testing.T) {
	env := map[string]string{
		EnvAction:      "create-repo",
		EnvOrg:         "example-org",
		EnvRepo:        "myrepo",
		EnvRepoName:    "myrepo2",
		EnvRepoPrivate: "true",
		EnvPermission:  "push",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	req := requestFromLookup(lookup)

	assert.Equal(t, ActionCreateRepo, req.Action)
	assert.Equal(t, "example-org", req.Org)
	assert.Equal(t, "myrepo", req.Repo)
	assert.Equal(t, "myrepo2", req.RepoName)
	assert.Equal(t, "true", req.RepoPrivate)
	assert.Equal(t, PermissionPush, req.Permission)
	assert.Empty(t, req.Team)
	assert.Empty(t, req.User)
}

func TestRequestFromLookupDefaults(t *testing.T) {
	lookup := func(string) (string, bool) { return "", false }

	req := requestFromLookup(lookup)

	assert.Equal(t, PermissionNone, req.Permission)
	assert.Equal(t, "false", req.RepoPrivate)
}

func TestRequestFromLookupEmptyValuesKeepDefaults(t *testing.T) {
	env := map[string]string{
		EnvAction:      "delete-team",
		EnvOrg:         "new-organization97",
		EnvRepo:        "r1",
		EnvPermission:  "",
		EnvRepoPrivate: "",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	req := requestFromLookup(lookup)

	assert.Equal(t, PermissionNone, req.Permission)
	assert.Equal(t, "false", req.RepoPrivate)
	assert.NotContains(t, req.Args(), "--permission")
}
