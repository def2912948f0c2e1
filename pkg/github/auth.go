package github

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"

	"ghadmin/pkg/config"
)

// AuthManager handles GitHub authentication
type AuthManager struct {
	client *github.Client
	token  string
}

// NewAuthManager creates a new authentication manager
func NewAuthManager() *AuthManager {
	return &AuthManager{}
}

// GetToken resolves the GitHub token. Order: GITHUB_TOKEN, TOKEN (the name
// the CI trigger exports), the config file, then the dotenv file named in
// the config.
func (am *AuthManager) GetToken(cfg *config.Config) (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return strings.TrimSpace(token), nil
	}
	if token := os.Getenv("TOKEN"); token != "" {
		return strings.TrimSpace(token), nil
	}

	if cfg != nil {
		if cfg.GitHub.Token != "" {
			return strings.TrimSpace(cfg.GitHub.Token), nil
		}

		token, err := config.TokenFromEnvFile(cfg.GitHub.EnvFile)
		if err != nil {
			return "", err
		}
		if token != "" {
			return strings.TrimSpace(token), nil
		}
	}

	return "", fmt.Errorf("no GitHub token found: set GITHUB_TOKEN or TOKEN, configure token in ~/.ghadmin/config.yaml, or add TOKEN to the env file")
}

// Authenticate sets up the GitHub client with the provided token
func (am *AuthManager) Authenticate(token string) error {
	if token == "" {
		return fmt.Errorf("GitHub token cannot be empty")
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	am.client = github.NewClient(tc)
	am.token = token

	return nil
}

// ValidateToken validates the GitHub token and reports who it belongs to
func (am *AuthManager) ValidateToken(ctx context.Context) (*TokenInfo, error) {
	if am.client == nil {
		return nil, fmt.Errorf("not authenticated: call Authenticate() first")
	}

	user, resp, err := am.client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to validate GitHub token: %w", err)
	}

	scopes := []string{}
	if scopeHeader := resp.Header.Get("X-OAuth-Scopes"); scopeHeader != "" {
		scopes = strings.Split(strings.ReplaceAll(scopeHeader, " ", ""), ",")
	}

	return &TokenInfo{
		User:   user.GetLogin(),
		Scopes: scopes,
	}, nil
}

// GetClient returns the authenticated GitHub client
func (am *AuthManager) GetClient() *github.Client {
	return am.client
}

// TokenInfo contains information about the authenticated token
type TokenInfo struct {
	User   string   `json:"user"`
	Scopes []string `json:"scopes"`
}

// AuthenticateFromConfig resolves a token, authenticates, and validates it
func (am *AuthManager) AuthenticateFromConfig(ctx context.Context, cfg *config.Config) (*TokenInfo, error) {
	token, err := am.GetToken(cfg)
	if err != nil {
		return nil, err
	}

	if err := am.Authenticate(token); err != nil {
		return nil, err
	}

	return am.ValidateToken(ctx)
}

// GetAuthInstructions returns instructions for setting up GitHub authentication
func GetAuthInstructions() string {
	return `GitHub authentication is required. Set up a token using one of:

1. Environment variable (recommended for CI):
   export GITHUB_TOKEN="your_personal_access_token"
   (TOKEN is also accepted, matching the CI trigger environment)

2. Configuration file (~/.ghadmin/config.yaml):
   github:
     token: "your_personal_access_token"

3. Dotenv file (default .env, or github.env_file in the config):
   TOKEN=your_personal_access_token

The token needs the 'repo' and 'admin:org' scopes to manage organization
teams, repositories, and memberships.`
}
