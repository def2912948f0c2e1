package dispatch

import (
	"fmt"
	"sort"
	"strings"
)

// Action identifies the administrative operation the external script performs.
type Action string

const (
	ActionCreateTeam Action = "create-team"
	ActionDeleteTeam Action = "delete-team"
	ActionAddRepo    Action = "add-repo"
	ActionRemoveRepo Action = "remove-repo"
	ActionAddUser    Action = "add-user"
	ActionRemoveUser Action = "remove-user"
	ActionCreateRepo Action = "create-repo"
	ActionUserAccess Action = "user-access"
)

// Permission is a team-to-repository permission level. PermissionNone is a
// sentinel meaning "no permission specified" and is never forwarded to the
// external script.
type Permission string

const (
	PermissionNone     Permission = "nil"
	PermissionPull     Permission = "pull"
	PermissionTriage   Permission = "triage"
	PermissionPush     Permission = "push"
	PermissionMaintain Permission = "maintain"
	PermissionAdmin    Permission = "admin"
)

// DefaultAllowedOrgs is the organization allow-list used when the
// configuration does not provide one.
var DefaultAllowedOrgs = []string{
	"new-organization97",
	"example-org",
	"another-org",
}

var validActions = map[Action]bool{
	ActionCreateTeam: true,
	ActionDeleteTeam: true,
	ActionAddRepo:    true,
	ActionRemoveRepo: true,
	ActionAddUser:    true,
	ActionRemoveUser: true,
	ActionCreateRepo: true,
	ActionUserAccess: true,
}

var validPermissions = map[Permission]bool{
	PermissionNone:     true,
	PermissionPull:     true,
	PermissionTriage:   true,
	PermissionPush:     true,
	PermissionMaintain: true,
	PermissionAdmin:    true,
}

// Request is a single invocation of the external admin script. It is built
// once per trigger, consumed once, and never persisted.
type Request struct {
	Action      Action
	Org         string
	Team        string
	Repo        string
	User        string
	Permission  Permission
	RepoName    string
	RepoPrivate string
}

// NewRequest returns a Request with the documented defaults applied
// (permission sentinel, public repository).
func NewRequest() *Request {
	return &Request{
		Permission:  PermissionNone,
		RepoPrivate: "false",
	}
}

// Validate checks required fields and enum membership. allowedOrgs may be
// nil, in which case DefaultAllowedOrgs applies. All problems are collected
// so a single run reports every bad field.
func (r *Request) Validate(allowedOrgs []string) error {
	var errs ValidationErrors

	if r.Action == "" {
		errs.AddMissing("action")
	} else if !validActions[r.Action] {
		errs.AddInvalidEnum("action", string(r.Action), actionValues())
	}

	if len(allowedOrgs) == 0 {
		allowedOrgs = DefaultAllowedOrgs
	}
	if r.Org == "" {
		errs.AddMissing("org")
	} else if !containsString(allowedOrgs, r.Org) {
		errs.AddInvalidEnum("org", r.Org, allowedOrgs)
	}

	if r.Repo == "" {
		errs.AddMissing("repo")
	}

	if r.Permission != "" && !validPermissions[r.Permission] {
		errs.AddInvalidEnum("permission", string(r.Permission), permissionValues())
	}

	if r.RepoPrivate != "" && r.RepoPrivate != "true" && r.RepoPrivate != "false" {
		errs.AddInvalidEnum("repo_private", r.RepoPrivate, []string{"false", "true"})
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Args renders the request into the ordered argument list consumed by the
// external script. The order is fixed for reproducibility:
// action, org, team, repo, user, permission, repo-name, repo-private.
func (r *Request) Args() []string {
	args := []string{
		"--action", string(r.Action),
		"--org", r.Org,
	}

	if r.Team != "" {
		args = append(args, "--team", r.Team)
	}
	if r.Repo != "" {
		args = append(args, "--repo", r.Repo)
	}
	if r.User != "" {
		args = append(args, "--user", r.User)
	}
	// The sentinel means "omit", same as an empty value.
	if r.Permission != "" && r.Permission != PermissionNone {
		args = append(args, "--permission", string(r.Permission))
	}
	if r.RepoName != "" {
		args = append(args, "--repo-name", r.RepoName)
	}
	if r.RepoPrivate == "true" {
		args = append(args, "--repo-private")
	}

	return args
}

// String renders the request as the command-line fragment it dispatches,
// for logging.
func (r *Request) String() string {
	return strings.Join(r.Args(), " ")
}

func actionValues() []string {
	values := make([]string, 0, len(validActions))
	for action := range validActions {
		values = append(values, string(action))
	}
	sort.Strings(values)
	return values
}

func permissionValues() []string {
	values := make([]string, 0, len(validPermissions))
	for permission := range validPermissions {
		values = append(values, string(permission))
	}
	sort.Strings(values)
	return values
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// ParseAction converts a raw string into an Action, rejecting unknown values.
func ParseAction(raw string) (Action, error) {
	action := Action(raw)
	if raw == "" {
		return "", &ValidationError{Field: "action", Message: "action is required"}
	}
	if !validActions[action] {
		return "", &ValidationError{
			Field:   "action",
			Value:   raw,
			Message: fmt.Sprintf("action must be one of: %s", strings.Join(actionValues(), ", ")),
		}
	}
	return action, nil
}
