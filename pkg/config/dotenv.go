package config

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// DefaultEnvFile is the dotenv file loaded when github.env_file is unset.
const DefaultEnvFile = ".env"

// LoadDotenv reads KEY=VALUE pairs from a dotenv file. The admin script used
// by the dispatch layer reads its TOKEN the same way, so keeping the file
// format shared lets one .env serve both layers. A missing file is not an
// error; the returned map is just empty.
func LoadDotenv(path string) (map[string]string, error) {
	if path == "" {
		path = DefaultEnvFile
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return map[string]string{}, nil
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		// Dotenv lines may carry values like "a=b" without quoting.
		IgnoreInlineComment: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file %s: %w", path, err)
	}

	return file.Section("").KeysHash(), nil
}

// TokenFromEnvFile returns the TOKEN entry of the dotenv file, if present.
func TokenFromEnvFile(path string) (string, error) {
	values, err := LoadDotenv(path)
	if err != nil {
		return "", err
	}
	return values["TOKEN"], nil
}
