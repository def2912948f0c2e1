package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ghadmin/pkg/choose"
	"ghadmin/pkg/config"
	"ghadmin/pkg/github"
)

var (
	teamOrg        string
	teamName       string
	teamRepo       string
	teamUser       string
	teamPermission string
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "GitHub organization team management commands",
	Long: `Commands for managing organization teams natively against the GitHub API.

Available commands:
  create       - Create a team
  delete       - Delete a team (interactive selection when --team is omitted)
  list         - List the organization's teams
  add-repo     - Grant a team access to a repository
  remove-repo  - Revoke a team's access to a repository
  add-user     - Add a user to a team
  remove-user  - Remove a user from a team

Teams are addressed by display name; the slug is resolved automatically.`,
}

var teamCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a team in the organization",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if teamName == "" {
			return fmt.Errorf("--team is required")
		}
		admin, org, err := teamContext(cmd)
		if err != nil {
			return err
		}
		return admin.CreateTeam(org, teamName)
	},
}

var teamDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a team from the organization",
	RunE: func(cmd *cobra.Command, _ []string) error {
		admin, org, err := teamContext(cmd)
		if err != nil {
			return err
		}

		name := teamName
		if name == "" {
			name, err = pickTeam(admin, org)
			if err != nil {
				return err
			}
		}

		return admin.DeleteTeam(org, name)
	},
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List teams in the organization",
	RunE: func(cmd *cobra.Command, _ []string) error {
		admin, org, err := teamContext(cmd)
		if err != nil {
			return err
		}
		_, err = admin.ListTeams(org)
		return err
	},
}

var teamAddRepoCmd = &cobra.Command{
	Use:   "add-repo",
	Short: "Grant a team access to a repository",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if teamName == "" || teamRepo == "" || teamPermission == "" {
			return fmt.Errorf("--team, --repo, and --permission are required")
		}
		admin, org, err := teamContext(cmd)
		if err != nil {
			return err
		}
		return admin.GrantTeamRepo(org, teamName, teamRepo, teamPermission)
	},
}

var teamRemoveRepoCmd = &cobra.Command{
	Use:   "remove-repo",
	Short: "Revoke a team's access to a repository",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if teamName == "" || teamRepo == "" {
			return fmt.Errorf("--team and --repo are required")
		}
		admin, org, err := teamContext(cmd)
		if err != nil {
			return err
		}
		return admin.RevokeTeamRepo(org, teamName, teamRepo)
	},
}

var teamAddUserCmd = &cobra.Command{
	Use:   "add-user",
	Short: "Add a user to a team",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if teamName == "" || teamUser == "" {
			return fmt.Errorf("--team and --user are required")
		}
		admin, org, err := teamContext(cmd)
		if err != nil {
			return err
		}
		return admin.AddUserToTeam(org, teamName, teamUser)
	},
}

var teamRemoveUserCmd = &cobra.Command{
	Use:   "remove-user",
	Short: "Remove a user from a team",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if teamName == "" || teamUser == "" {
			return fmt.Errorf("--team and --user are required")
		}
		admin, org, err := teamContext(cmd)
		if err != nil {
			return err
		}
		return admin.RemoveUserFromTeam(org, teamName, teamUser)
	},
}

func init() {
	teamCmd.PersistentFlags().StringVar(&teamOrg, "org", "", "GitHub organization (defaults to github.organization from config)")
	teamCmd.PersistentFlags().StringVar(&teamName, "team", "", "Team name")
	teamAddRepoCmd.Flags().StringVar(&teamRepo, "repo", "", "Repository name")
	teamAddRepoCmd.Flags().StringVar(&teamPermission, "permission", "", "Permission level (pull, triage, push, maintain, admin)")
	teamRemoveRepoCmd.Flags().StringVar(&teamRepo, "repo", "", "Repository name")
	teamAddUserCmd.Flags().StringVar(&teamUser, "user", "", "GitHub username")
	teamRemoveUserCmd.Flags().StringVar(&teamUser, "user", "", "GitHub username")

	teamCmd.AddCommand(teamCreateCmd)
	teamCmd.AddCommand(teamDeleteCmd)
	teamCmd.AddCommand(teamListCmd)
	teamCmd.AddCommand(teamAddRepoCmd)
	teamCmd.AddCommand(teamRemoveRepoCmd)
	teamCmd.AddCommand(teamAddUserCmd)
	teamCmd.AddCommand(teamRemoveUserCmd)
	rootCmd.AddCommand(teamCmd)
}

// teamContext loads config, authenticates, and resolves the organization.
func teamContext(cmd *cobra.Command) (*github.Admin, string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load ghadmin config: %w", err)
	}

	org, err := resolveOrg(teamOrg, cfg)
	if err != nil {
		return nil, "", err
	}

	admin, err := newAdmin(cmd.Context(), cfg)
	if err != nil {
		return nil, "", err
	}

	return admin, org, nil
}

// pickTeam asks the user to choose a team interactively. Refuses when stdin
// is not a terminal so CI runs fail fast instead of hanging.
func pickTeam(admin *github.Admin, org string) (string, error) {
	if !choose.IsInteractive() {
		return "", fmt.Errorf("--team is required when not running interactively")
	}

	teams, err := admin.ListTeams(org)
	if err != nil {
		return "", err
	}
	if len(teams) == 0 {
		return "", fmt.Errorf("no teams found in '%s'", org)
	}

	picker := choose.New(fmt.Sprintf("Select a team in %s:", org))
	options := make([]choose.Option, 0, len(teams))
	for _, team := range teams {
		options = append(options, choose.Option{Value: team.Name, Description: team.Slug})
	}
	picker.SetOptions(options)

	return picker.Pick()
}
