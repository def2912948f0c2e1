package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// Client implements the APIClient interface using the GitHub REST API
type Client struct {
	client *github.Client
	ctx    context.Context
}

// NewClient creates a new GitHub API client with the provided token
func NewClient(token string) *Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
		ctx:    ctx,
	}
}

// ListOrgs lists the organizations the authenticated user belongs to
func (c *Client) ListOrgs() ([]string, error) {
	opts := &github.ListOrgMembershipsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var allOrgs []string

	err := WithRetry(func() error {
		allOrgs = nil // Reset on retry
		opts.Page = 0 // Reset pagination on retry

		for {
			memberships, resp, err := c.client.Organizations.ListOrgMemberships(c.ctx, opts)
			if err != nil {
				return WrapAPIError(err, "organization memberships")
			}

			for _, membership := range memberships {
				allOrgs = append(allOrgs, membership.GetOrganization().GetLogin())
			}

			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return nil
	}, DefaultRetryConfig())

	return allOrgs, err
}

// ListTeams lists all teams in an organization
func (c *Client) ListTeams(org string) ([]Team, error) {
	opts := &github.ListOptions{PerPage: 100}

	var allTeams []Team

	err := WithRetry(func() error {
		allTeams = nil // Reset on retry
		opts.Page = 0  // Reset pagination on retry

		for {
			teams, resp, err := c.client.Teams.ListTeams(c.ctx, org, opts)
			if err != nil {
				return WrapAPIError(err, fmt.Sprintf("teams in %s", org))
			}

			for _, team := range teams {
				allTeams = append(allTeams, convertTeam(team))
			}

			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return nil
	}, DefaultRetryConfig())

	return allTeams, err
}

// CreateTeam creates a closed-privacy team in an organization
func (c *Client) CreateTeam(org, name, description string) (*Team, error) {
	newTeam := github.NewTeam{
		Name:        name,
		Description: github.String(description),
		Privacy:     github.String("closed"),
	}

	var created *github.Team

	err := WithRetry(func() error {
		var err error
		created, _, err = c.client.Teams.CreateTeam(c.ctx, org, newTeam)
		if err != nil {
			return WrapAPIError(err, fmt.Sprintf("team %s in %s", name, org))
		}
		return nil
	}, DefaultRetryConfig())

	if err != nil {
		return nil, err
	}

	team := convertTeam(created)
	return &team, nil
}

// DeleteTeam deletes a team from an organization by slug
func (c *Client) DeleteTeam(org, teamSlug string) error {
	return WithRetry(func() error {
		_, err := c.client.Teams.DeleteTeamBySlug(c.ctx, org, teamSlug)
		if err != nil {
			return WrapAPIError(err, fmt.Sprintf("team %s in %s", teamSlug, org))
		}
		return nil
	}, DefaultRetryConfig())
}

// AddTeamRepo grants a team access to a repository with the given permission
func (c *Client) AddTeamRepo(org, teamSlug, repo, permission string) error {
	opts := &github.TeamAddTeamRepoOptions{
		Permission: permission,
	}

	return WithRetry(func() error {
		_, err := c.client.Teams.AddTeamRepoBySlug(c.ctx, org, teamSlug, org, repo, opts)
		if err != nil {
			return WrapAPIError(err, fmt.Sprintf("team %s for repo %s/%s", teamSlug, org, repo))
		}
		return nil
	}, DefaultRetryConfig())
}

// RemoveTeamRepo revokes a team's access to a repository
func (c *Client) RemoveTeamRepo(org, teamSlug, repo string) error {
	return WithRetry(func() error {
		_, err := c.client.Teams.RemoveTeamRepoBySlug(c.ctx, org, teamSlug, org, repo)
		if err != nil {
			return WrapAPIError(err, fmt.Sprintf("team %s for repo %s/%s", teamSlug, org, repo))
		}
		return nil
	}, DefaultRetryConfig())
}

// AddTeamMember adds a user to a team
func (c *Client) AddTeamMember(org, teamSlug, username string) error {
	return WithRetry(func() error {
		_, _, err := c.client.Teams.AddTeamMembershipBySlug(c.ctx, org, teamSlug, username, nil)
		if err != nil {
			return WrapAPIError(err, fmt.Sprintf("user %s in team %s", username, teamSlug))
		}
		return nil
	}, DefaultRetryConfig())
}

// RemoveTeamMember removes a user from a team
func (c *Client) RemoveTeamMember(org, teamSlug, username string) error {
	return WithRetry(func() error {
		_, err := c.client.Teams.RemoveTeamMembershipBySlug(c.ctx, org, teamSlug, username)
		if err != nil {
			return WrapAPIError(err, fmt.Sprintf("user %s in team %s", username, teamSlug))
		}
		return nil
	}, DefaultRetryConfig())
}

// ListRepos lists all repositories in an organization
func (c *Client) ListRepos(org string) ([]Repository, error) {
	opts := &github.RepositoryListByOrgOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var allRepos []Repository

	err := WithRetry(func() error {
		allRepos = nil // Reset on retry
		opts.Page = 0  // Reset pagination on retry

		for {
			repos, resp, err := c.client.Repositories.ListByOrg(c.ctx, org, opts)
			if err != nil {
				return WrapAPIError(err, fmt.Sprintf("repos in %s", org))
			}

			for _, repo := range repos {
				allRepos = append(allRepos, convertRepository(repo))
			}

			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return nil
	}, DefaultRetryConfig())

	return allRepos, err
}

// CreateRepo creates a repository in an organization. Issues, projects, and
// the wiki are enabled, matching the defaults of the original admin script.
func (c *Client) CreateRepo(org string, config RepoConfig) (*Repository, error) {
	repo := &github.Repository{
		Name:        github.String(config.Name),
		Description: github.String(config.Description),
		Private:     github.Bool(config.Private),
		HasIssues:   github.Bool(true),
		HasProjects: github.Bool(true),
		HasWiki:     github.Bool(true),
	}

	var created *github.Repository

	err := WithRetry(func() error {
		var err error
		created, _, err = c.client.Repositories.Create(c.ctx, org, repo)
		if err != nil {
			return WrapAPIError(err, fmt.Sprintf("repo %s in %s", config.Name, org))
		}
		return nil
	}, DefaultRetryConfig())

	if err != nil {
		return nil, err
	}

	result := convertRepository(created)
	return &result, nil
}

// IsCollaborator reports whether the user is a collaborator on the repository
func (c *Client) IsCollaborator(org, repo, username string) (bool, error) {
	var isCollab bool

	err := WithRetry(func() error {
		var err error
		isCollab, _, err = c.client.Repositories.IsCollaborator(c.ctx, org, repo, username)
		if err != nil {
			return WrapAPIError(err, fmt.Sprintf("collaborator %s on %s/%s", username, org, repo))
		}
		return nil
	}, DefaultRetryConfig())

	return isCollab, err
}

// UserExists reports whether a GitHub account with the given login exists
func (c *Client) UserExists(username string) (bool, error) {
	var exists bool

	err := WithRetry(func() error {
		_, _, err := c.client.Users.Get(c.ctx, username)
		if err != nil {
			wrapped := WrapAPIError(err, fmt.Sprintf("user %s", username))
			if wrapped.Type == ErrorTypeNotFound {
				exists = false
				return nil
			}
			return wrapped
		}
		exists = true
		return nil
	}, DefaultRetryConfig())

	return exists, err
}

func convertTeam(team *github.Team) Team {
	return Team{
		ID:          team.GetID(),
		Name:        team.GetName(),
		Slug:        team.GetSlug(),
		Description: team.GetDescription(),
	}
}

func convertRepository(repo *github.Repository) Repository {
	return Repository{
		ID:          repo.GetID(),
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		Private:     repo.GetPrivate(),
	}
}
