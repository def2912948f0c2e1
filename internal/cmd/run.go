package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ghadmin/pkg/config"
	"ghadmin/pkg/dispatch"
	"ghadmin/pkg/github"
)

var (
	runAction      string
	runOrg         string
	runTeam        string
	runRepo        string
	runUser        string
	runPermission  string
	runRepoName    string
	runRepoPrivate string
	runFromEnv     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a trigger request natively against the GitHub API",
	Long: `Run an invocation request directly against the GitHub API instead of
dispatching the external admin script.

The request format and validation are identical to 'ghadmin dispatch', so a
CI trigger can switch between the two paths without changing its inputs.
Authentication uses GITHUB_TOKEN, TOKEN, the config file, or a dotenv file,
in that order.

Examples:
  ghadmin run --action create-team --org example-org --repo r1 --team platform
  ghadmin run --action user-access --org another-org --repo r1 --user alice
  ghadmin run --from-env`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runAction, "action", "", "Action to perform (create-team, delete-team, add-repo, remove-repo, add-user, remove-user, create-repo, user-access)")
	runCmd.Flags().StringVar(&runOrg, "org", "", "GitHub organization name")
	runCmd.Flags().StringVar(&runTeam, "team", "", "Team name")
	runCmd.Flags().StringVar(&runRepo, "repo", "", "Repository name")
	runCmd.Flags().StringVar(&runUser, "user", "", "GitHub username (not an email address)")
	runCmd.Flags().StringVar(&runPermission, "permission", string(dispatch.PermissionNone), "Permission level (nil, pull, triage, push, maintain, admin); nil means omitted")
	runCmd.Flags().StringVar(&runRepoName, "repo-name", "", "Name for a new repository (create-repo only)")
	runCmd.Flags().StringVar(&runRepoPrivate, "repo-private", "false", "Create the repository as private (true or false)")
	runCmd.Flags().BoolVar(&runFromEnv, "from-env", false, "Read the request from GHADMIN_* environment variables")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load ghadmin config: %w", err)
	}

	req := dispatch.NewRequest()
	if runFromEnv {
		req = dispatch.RequestFromEnv()
	}

	setIfChanged := func(flag string, apply func()) {
		if !runFromEnv || cmd.Flags().Changed(flag) {
			apply()
		}
	}
	setIfChanged("action", func() { req.Action = dispatch.Action(runAction) })
	setIfChanged("org", func() { req.Org = runOrg })
	setIfChanged("team", func() { req.Team = runTeam })
	setIfChanged("repo", func() { req.Repo = runRepo })
	setIfChanged("user", func() { req.User = runUser })
	setIfChanged("permission", func() { req.Permission = dispatch.Permission(runPermission) })
	setIfChanged("repo-name", func() { req.RepoName = runRepoName })
	setIfChanged("repo-private", func() { req.RepoPrivate = runRepoPrivate })

	if err := req.Validate(cfg.Dispatcher.AllowedOrgs); err != nil {
		return err
	}

	admin, err := newAdmin(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	return admin.Do(req)
}

// newAdmin authenticates and builds the native admin service.
func newAdmin(ctx context.Context, cfg *config.Config) (*github.Admin, error) {
	authManager := github.NewAuthManager()
	tokenInfo, err := authManager.AuthenticateFromConfig(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n\n", err)
		fmt.Fprintf(os.Stderr, "%s\n", github.GetAuthInstructions())
		return nil, err
	}

	fmt.Printf("✓ Authenticated as %s\n", tokenInfo.User)

	token, err := authManager.GetToken(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get GitHub token: %w", err)
	}

	return github.NewAdmin(github.NewClient(token)), nil
}

// resolveOrg picks the organization for native subcommands: the --org flag
// if given, otherwise the configured default.
func resolveOrg(flagValue string, cfg *config.Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.GitHub.Organization != "" {
		return cfg.GitHub.Organization, nil
	}
	return "", fmt.Errorf("organization not specified: use --org or set github.organization in config")
}
