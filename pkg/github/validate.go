package github

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	validUsername = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)
	validTeamName = regexp.MustCompile(`^[^/\\]+$`)
)

// ValidateUsername validates a GitHub login according to GitHub's rules.
// Email addresses are rejected explicitly because the trigger form is often
// filled in with one by mistake.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if strings.Contains(username, "@") {
		return fmt.Errorf("'%s' looks like an email address: GitHub membership operations need the GitHub username, not the email", username)
	}

	if len(username) > 39 {
		return fmt.Errorf("username must be 39 characters or less")
	}

	if !validUsername.MatchString(username) {
		return fmt.Errorf("username '%s' is invalid: only alphanumeric characters and single hyphens, and it cannot start or end with a hyphen", username)
	}

	if strings.Contains(username, "--") {
		return fmt.Errorf("username '%s' is invalid: cannot contain consecutive hyphens", username)
	}

	return nil
}

// ValidateTeamName checks a team name before it is sent to the API. Teams
// are addressed by display name here (the slug is resolved afterwards), so
// the only hard constraints are non-emptiness and no path separators.
func ValidateTeamName(name string) error {
	if name == "" {
		return fmt.Errorf("team name cannot be empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("team name must be 100 characters or less")
	}
	if !validTeamName.MatchString(name) {
		return fmt.Errorf("team name '%s' is invalid: cannot contain path separators", name)
	}
	return nil
}

// ValidateRepoName validates a repository name according to GitHub rules.
func ValidateRepoName(name string) error {
	if name == "" {
		return fmt.Errorf("repository name cannot be empty")
	}

	if len(name) > 100 {
		return fmt.Errorf("repository name must be 100 characters or less")
	}

	validName := regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	if !validName.MatchString(name) {
		return fmt.Errorf("repository name can only contain alphanumeric characters, periods, hyphens, and underscores")
	}

	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return fmt.Errorf("repository name cannot start or end with a period")
	}

	return nil
}
