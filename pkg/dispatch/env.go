package dispatch

import "os"

// Environment variable names carrying trigger inputs. The CI workflow maps
// each form field to one of these before invoking ghadmin.
const (
	EnvAction      = "GHADMIN_ACTION"
	EnvOrg         = "GHADMIN_ORG"
	EnvTeam        = "GHADMIN_TEAM"
	EnvRepo        = "GHADMIN_REPO"
	EnvUser        = "GHADMIN_USER"
	EnvPermission  = "GHADMIN_PERMISSION"
	EnvRepoName    = "GHADMIN_REPO_NAME"
	EnvRepoPrivate = "GHADMIN_REPO_PRIVATE"
)

// RequestFromEnv builds a request from trigger environment variables.
// Unset permission and repo_private fields keep their documented defaults.
func RequestFromEnv() *Request {
	return requestFromLookup(os.LookupEnv)
}

func requestFromLookup(lookup func(string) (string, bool)) *Request {
	req := NewRequest()

	if v, ok := lookup(EnvAction); ok {
		req.Action = Action(v)
	}
	if v, ok := lookup(EnvOrg); ok {
		req.Org = v
	}
	if v, ok := lookup(EnvTeam); ok {
		req.Team = v
	}
	if v, ok := lookup(EnvRepo); ok {
		req.Repo = v
	}
	if v, ok := lookup(EnvUser); ok {
		req.User = v
	}
	if v, ok := lookup(EnvPermission); ok && v != "" {
		req.Permission = Permission(v)
	}
	if v, ok := lookup(EnvRepoPrivate); ok && v != "" {
		req.RepoPrivate = v
	}
	if v, ok := lookup(EnvRepoName); ok {
		req.RepoName = v
	}

	return req
}
