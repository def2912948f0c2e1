package github

import (
	"fmt"
	"io"
	"os"
	"strings"

	"ghadmin/pkg/dispatch"
)

// Admin executes organization administration operations directly against the
// GitHub API. It covers the same action set as the external admin script, so
// a trigger can be served either by dispatching the script or natively.
type Admin struct {
	client APIClient
	out    io.Writer
}

// NewAdmin creates an Admin writing progress output to stdout
func NewAdmin(client APIClient) *Admin {
	return &Admin{client: client, out: os.Stdout}
}

// NewAdminWithOutput creates an Admin writing progress output to out
func NewAdminWithOutput(client APIClient, out io.Writer) *Admin {
	return &Admin{client: client, out: out}
}

// Do executes the operation named by the request's action. The request must
// already have passed dispatch validation; Do adds the per-action
// requirements (which optional field each action actually needs).
func (a *Admin) Do(req *dispatch.Request) error {
	switch req.Action {
	case dispatch.ActionCreateTeam:
		if req.Team == "" {
			return fmt.Errorf("--team is required for %s", req.Action)
		}
		return a.CreateTeam(req.Org, req.Team)

	case dispatch.ActionDeleteTeam:
		if req.Team == "" {
			return fmt.Errorf("--team is required for %s", req.Action)
		}
		return a.DeleteTeam(req.Org, req.Team)

	case dispatch.ActionAddRepo:
		if req.Team == "" || req.Repo == "" || req.Permission == "" || req.Permission == dispatch.PermissionNone {
			return fmt.Errorf("--team, --repo, and --permission are required for %s", req.Action)
		}
		return a.GrantTeamRepo(req.Org, req.Team, req.Repo, string(req.Permission))

	case dispatch.ActionRemoveRepo:
		if req.Team == "" || req.Repo == "" {
			return fmt.Errorf("--team and --repo are required for %s", req.Action)
		}
		return a.RevokeTeamRepo(req.Org, req.Team, req.Repo)

	case dispatch.ActionAddUser:
		if req.Team == "" || req.User == "" {
			return fmt.Errorf("--team and --user are required for %s", req.Action)
		}
		return a.AddUserToTeam(req.Org, req.Team, req.User)

	case dispatch.ActionRemoveUser:
		if req.Team == "" || req.User == "" {
			return fmt.Errorf("--team and --user are required for %s", req.Action)
		}
		return a.RemoveUserFromTeam(req.Org, req.Team, req.User)

	case dispatch.ActionCreateRepo:
		if req.RepoName == "" {
			return fmt.Errorf("--repo-name is required for %s", req.Action)
		}
		return a.CreateRepo(req.Org, req.RepoName, req.RepoPrivate == "true")

	case dispatch.ActionUserAccess:
		if req.User == "" {
			return fmt.Errorf("--user is required for %s", req.Action)
		}
		_, err := a.UserAccess(req.Org, req.User)
		return err

	default:
		return fmt.Errorf("unsupported action: %s", req.Action)
	}
}

// CreateTeam creates a team in the organization
func (a *Admin) CreateTeam(org, name string) error {
	if err := ValidateTeamName(name); err != nil {
		return err
	}

	team, err := a.client.CreateTeam(org, name, "")
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✅ Created team '%s' (slug: %s) in '%s'\n", team.Name, team.Slug, org)
	return nil
}

// DeleteTeam resolves a team by display name and deletes it
func (a *Admin) DeleteTeam(org, name string) error {
	team, err := a.FindTeamByName(org, name)
	if err != nil {
		return err
	}

	if err := a.client.DeleteTeam(org, team.Slug); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "🗑  Deleted team '%s' in '%s'\n", team.Name, org)
	return nil
}

// GrantTeamRepo grants a team access to a repository with a permission level
func (a *Admin) GrantTeamRepo(org, teamName, repo, permission string) error {
	team, err := a.FindTeamByName(org, teamName)
	if err != nil {
		return err
	}

	if err := a.client.AddTeamRepo(org, team.Slug, repo, permission); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✅ Added team '%s' to repo '%s' with permission '%s'\n", team.Name, repo, permission)
	return nil
}

// RevokeTeamRepo removes a team's access to a repository
func (a *Admin) RevokeTeamRepo(org, teamName, repo string) error {
	team, err := a.FindTeamByName(org, teamName)
	if err != nil {
		return err
	}

	if err := a.client.RemoveTeamRepo(org, team.Slug, repo); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "🗑  Removed team '%s' from repo '%s'\n", team.Name, repo)
	return nil
}

// AddUserToTeam validates the username and adds the user to a team
func (a *Admin) AddUserToTeam(org, teamName, username string) error {
	if err := a.checkUser(username); err != nil {
		return err
	}

	team, err := a.FindTeamByName(org, teamName)
	if err != nil {
		return err
	}

	if err := a.client.AddTeamMember(org, team.Slug, username); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✅ Added user '%s' to team '%s' in '%s'\n", username, team.Name, org)
	return nil
}

// RemoveUserFromTeam validates the username and removes the user from a team
func (a *Admin) RemoveUserFromTeam(org, teamName, username string) error {
	if err := a.checkUser(username); err != nil {
		return err
	}

	team, err := a.FindTeamByName(org, teamName)
	if err != nil {
		return err
	}

	if err := a.client.RemoveTeamMember(org, team.Slug, username); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "🗑  Removed user '%s' from team '%s' in '%s'\n", username, team.Name, org)
	return nil
}

// CreateRepo creates a repository in the organization
func (a *Admin) CreateRepo(org, name string, private bool) error {
	if err := ValidateRepoName(name); err != nil {
		return err
	}

	repo, err := a.client.CreateRepo(org, RepoConfig{Name: name, Private: private})
	if err != nil {
		return err
	}

	visibility := "public"
	if repo.Private {
		visibility = "private"
	}
	fmt.Fprintf(a.out, "✅ Created %s repo '%s' in '%s'\n", visibility, repo.Name, org)
	return nil
}

// UserAccess walks the organization's repositories and returns the names of
// those the user can access as a collaborator.
func (a *Admin) UserAccess(org, username string) ([]string, error) {
	if err := a.checkUser(username); err != nil {
		return nil, err
	}

	repos, err := a.client.ListRepos(org)
	if err != nil {
		return nil, err
	}

	var accessible []string
	for _, repo := range repos {
		isCollab, err := a.client.IsCollaborator(org, repo.Name, username)
		if err != nil {
			// A repo the token cannot inspect is reported as inaccessible
			// rather than aborting the whole walk.
			if IsNotFound(err) {
				continue
			}
			return nil, err
		}
		if isCollab {
			accessible = append(accessible, repo.Name)
		}
	}

	fmt.Fprintf(a.out, "📋 User '%s' has access to %d repositories in '%s':\n", username, len(accessible), org)
	for _, name := range accessible {
		fmt.Fprintf(a.out, "  - %s\n", name)
	}

	return accessible, nil
}

// ListTeams prints and returns the organization's teams
func (a *Admin) ListTeams(org string) ([]Team, error) {
	teams, err := a.client.ListTeams(org)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "📋 Teams in organization '%s':\n", org)
	if len(teams) == 0 {
		fmt.Fprintf(a.out, "  No teams found.\n")
		return teams, nil
	}
	for i, team := range teams {
		fmt.Fprintf(a.out, "  %d. %s (ID: %d, Slug: %s)\n", i+1, team.Name, team.ID, team.Slug)
	}

	return teams, nil
}

// ListRepos prints and returns the organization's repositories
func (a *Admin) ListRepos(org string) ([]Repository, error) {
	repos, err := a.client.ListRepos(org)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "📋 Repositories in organization '%s':\n", org)
	if len(repos) == 0 {
		fmt.Fprintf(a.out, "  No repositories found.\n")
		return repos, nil
	}
	for i, repo := range repos {
		visibility := "🌐 Public"
		if repo.Private {
			visibility = "🔒 Private"
		}
		fmt.Fprintf(a.out, "  %d. %s (%s)\n", i+1, repo.Name, visibility)
	}

	return repos, nil
}

// ListOrgs prints and returns the organizations the token can see
func (a *Admin) ListOrgs() ([]string, error) {
	orgs, err := a.client.ListOrgs()
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "📋 Organizations:\n")
	for _, org := range orgs {
		fmt.Fprintf(a.out, "  - %s\n", org)
	}

	return orgs, nil
}

// FindTeamByName resolves a team by case-insensitive display name
func (a *Admin) FindTeamByName(org, name string) (*Team, error) {
	teams, err := a.client.ListTeams(org)
	if err != nil {
		return nil, err
	}

	for i := range teams {
		if strings.EqualFold(teams[i].Name, name) {
			return &teams[i], nil
		}
	}

	return nil, &APIError{
		Type:     ErrorTypeNotFound,
		Message:  fmt.Sprintf("team '%s' not found in '%s'", name, org),
		Resource: fmt.Sprintf("team %s in %s", name, org),
	}
}

func (a *Admin) checkUser(username string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}

	exists, err := a.client.UserExists(username)
	if err != nil {
		return err
	}
	if !exists {
		return &APIError{
			Type:     ErrorTypeNotFound,
			Message:  fmt.Sprintf("GitHub user '%s' does not exist", username),
			Resource: fmt.Sprintf("user %s", username),
		}
	}

	return nil
}
