package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghadmin/pkg/dispatch"
)

func TestLoadConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `dispatcher:
  script: scripts/github_admin.py
  interpreter: python3
  allowed_orgs:
    - example-org
    - another-org
github:
  organization: example-org
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	cfg, err := LoadConfigFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "scripts/github_admin.py", cfg.Dispatcher.Script)
	assert.Equal(t, "python3", cfg.Dispatcher.Interpreter)
	assert.Equal(t, []string{"example-org", "another-org"}, cfg.Dispatcher.AllowedOrgs)
	assert.Equal(t, "example-org", cfg.GitHub.Organization)
	assert.Empty(t, cfg.GitHub.Token)
}

func TestLoadConfigFromPathMissingFile(t *testing.T) {
	cfg, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	// Missing file falls back to defaults.
	assert.Equal(t, dispatch.DefaultScript, cfg.Dispatcher.Script)
	assert.Equal(t, dispatch.DefaultInterpreter, cfg.Dispatcher.Interpreter)
	assert.Equal(t, dispatch.DefaultAllowedOrgs, cfg.Dispatcher.AllowedOrgs)
}

func TestLoadConfigFromPathInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("dispatcher: ["), 0600))

	_, err := LoadConfigFromPath(configPath)
	assert.Error(t, err)
}

func TestSaveAndReloadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.GitHub.Organization = "example-org"
	cfg.Dispatcher.Script = "scripts/git-manager.py"

	require.NoError(t, cfg.SaveConfigToPath(configPath))

	reloaded, err := LoadConfigFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg.Dispatcher, reloaded.Dispatcher)
	assert.Equal(t, cfg.GitHub, reloaded.GitHub)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty script",
			mutate:  func(c *Config) { c.Dispatcher.Script = "" },
			wantErr: true,
		},
		{
			name:    "empty allow-list entry",
			mutate:  func(c *Config) { c.Dispatcher.AllowedOrgs = []string{"example-org", ""} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")

	content := "TOKEN=ghp_example123\nDEBUG=true\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0600))

	values, err := LoadDotenv(envPath)
	require.NoError(t, err)
	assert.Equal(t, "ghp_example123", values["TOKEN"])
	assert.Equal(t, "true", values["DEBUG"])
}

func TestLoadDotenvMissingFile(t *testing.T) {
	values, err := LoadDotenv(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestTokenFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("TOKEN=abc\n"), 0600))

	token, err := TokenFromEnvFile(envPath)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	token, err = TokenFromEnvFile(filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Empty(t, token)
}
