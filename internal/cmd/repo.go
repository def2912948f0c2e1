package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ghadmin/pkg/config"
	"ghadmin/pkg/github"
)

var (
	repoOrg     string
	repoName    string
	repoPrivate bool
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "GitHub organization repository management commands",
	Long: `Commands for managing organization repositories natively against the
GitHub API.

Available commands:
  create - Create a repository (issues, projects, and wiki enabled)
  list   - List the organization's repositories`,
}

var repoCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a repository in the organization",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if repoName == "" {
			return fmt.Errorf("--name is required")
		}
		admin, org, err := repoContext(cmd)
		if err != nil {
			return err
		}
		return admin.CreateRepo(org, repoName, repoPrivate)
	},
}

var repoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List repositories in the organization",
	RunE: func(cmd *cobra.Command, _ []string) error {
		admin, org, err := repoContext(cmd)
		if err != nil {
			return err
		}
		_, err = admin.ListRepos(org)
		return err
	},
}

func init() {
	repoCmd.PersistentFlags().StringVar(&repoOrg, "org", "", "GitHub organization (defaults to github.organization from config)")
	repoCreateCmd.Flags().StringVar(&repoName, "name", "", "Name of the repository to create")
	repoCreateCmd.Flags().BoolVar(&repoPrivate, "private", false, "Create the repository as private")

	repoCmd.AddCommand(repoCreateCmd)
	repoCmd.AddCommand(repoListCmd)
	rootCmd.AddCommand(repoCmd)
}

func repoContext(cmd *cobra.Command) (*github.Admin, string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load ghadmin config: %w", err)
	}

	org, err := resolveOrg(repoOrg, cfg)
	if err != nil {
		return nil, "", err
	}

	admin, err := newAdmin(cmd.Context(), cfg)
	if err != nil {
		return nil, "", err
	}

	return admin, org, nil
}
