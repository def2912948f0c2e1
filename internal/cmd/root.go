package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ghadmin/pkg/dispatch"
)

var rootCmd = &cobra.Command{
	Use:   "ghadmin",
	Short: "A CLI tool for managing GitHub organization teams, repositories, and access",
	Long: `Ghadmin manages GitHub organization resources from manually-triggered
automation. It can dispatch a validated invocation to the external admin
script (the CI path) or run the same actions natively against the GitHub
API using team, repo, user, and org subcommands.`,
}

// Execute runs the root command. When the external admin script fails, its
// exit code becomes the process exit code so CI sees the real status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)

		var exitErr *dispatch.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
