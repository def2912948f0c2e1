package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ghadmin/pkg/config"
)

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "GitHub organization commands",
	Long: `Commands for inspecting organizations natively against the GitHub API.

Available commands:
  list - List the organizations the token belongs to`,
}

var orgListCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations the authenticated user belongs to",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load ghadmin config: %w", err)
		}

		admin, err := newAdmin(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		_, err = admin.ListOrgs()
		return err
	},
}

func init() {
	orgCmd.AddCommand(orgListCmd)
	rootCmd.AddCommand(orgCmd)
}
