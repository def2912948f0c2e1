package github

// APIClient defines the interface for the GitHub API operations ghadmin
// performs. The Admin service depends on this interface so tests can swap in
// a mock.
type APIClient interface {
	// Organization operations
	ListOrgs() ([]string, error)

	// Team operations
	ListTeams(org string) ([]Team, error)
	CreateTeam(org, name, description string) (*Team, error)
	DeleteTeam(org, teamSlug string) error

	// Team access operations
	AddTeamRepo(org, teamSlug, repo, permission string) error
	RemoveTeamRepo(org, teamSlug, repo string) error

	// Team membership operations
	AddTeamMember(org, teamSlug, username string) error
	RemoveTeamMember(org, teamSlug, username string) error

	// Repository operations
	ListRepos(org string) ([]Repository, error)
	CreateRepo(org string, config RepoConfig) (*Repository, error)
	IsCollaborator(org, repo, username string) (bool, error)

	// User operations
	UserExists(username string) (bool, error)
}
