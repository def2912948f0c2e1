package cmd

import (
	"fmt"
	"os"

	"ghadmin/pkg/config"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ghadmin configuration",
	Long:  "Create a default configuration file for ghadmin",
	RunE:  runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("⚠️  Configuration file already exists at: %s\n", configPath)
		fmt.Print("Do you want to overwrite it? (y/N): ")
		var response string
		_, _ = fmt.Scanln(&response) // Ignore error for user input
		if response != "y" && response != "Y" {
			fmt.Println("Configuration initialization cancelled.")
			return nil
		}
	}

	defaultConfig := config.DefaultConfig()
	defaultConfig.GitHub.Organization = "example-org"

	if err := defaultConfig.SaveConfig(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Printf("✅ Configuration file created at: %s\n", configPath)
	fmt.Println("📝 Edit the file to set your organization, token source, and script path.")

	return nil
}
