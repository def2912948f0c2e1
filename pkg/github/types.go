package github

// Team represents a GitHub organization team
type Team struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// Repository represents a GitHub repository
type Repository struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private"`
}

// RepoConfig describes a repository to create. Issues, projects, and the
// wiki are always enabled on creation, matching the admin script's defaults.
type RepoConfig struct {
	Name        string
	Description string
	Private     bool
}
