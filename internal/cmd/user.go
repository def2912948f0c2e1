package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ghadmin/pkg/config"
)

var (
	userOrg  string
	userName string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "GitHub user access commands",
	Long: `Commands for inspecting user access natively against the GitHub API.

Available commands:
  access - List the organization repositories a user can access`,
}

var userAccessCmd = &cobra.Command{
	Use:   "access",
	Short: "List the organization repositories a user can access",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if userName == "" {
			return fmt.Errorf("--user is required")
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load ghadmin config: %w", err)
		}

		org, err := resolveOrg(userOrg, cfg)
		if err != nil {
			return err
		}

		admin, err := newAdmin(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		_, err = admin.UserAccess(org, userName)
		return err
	},
}

func init() {
	userCmd.PersistentFlags().StringVar(&userOrg, "org", "", "GitHub organization (defaults to github.organization from config)")
	userAccessCmd.Flags().StringVar(&userName, "user", "", "GitHub username (not an email address)")

	userCmd.AddCommand(userAccessCmd)
	rootCmd.AddCommand(userCmd)
}
