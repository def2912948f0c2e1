package cmd

import (
	"bytes"
	"testing"
)

func TestRootCommand(t *testing.T) {
	// Test that root command exists and has expected properties
	if rootCmd.Use != "ghadmin" {
		t.Errorf("Expected Use = ghadmin, got %s", rootCmd.Use)
	}

	expectedCommands := map[string]bool{
		"init":     false,
		"dispatch": false,
		"run":      false,
		"team":     false,
		"repo":     false,
		"user":     false,
		"org":      false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := expectedCommands[cmd.Use]; ok {
			expectedCommands[cmd.Use] = true
		}
	}

	for name, found := range expectedCommands {
		if !found {
			t.Errorf("%s command not found in root command", name)
		}
	}
}

func TestRootCommandHelp(t *testing.T) {
	// Test help output
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--help"})

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("Failed to execute help command: %v", err)
	}

	output := buf.String()
	if !bytes.Contains([]byte(output), []byte("ghadmin")) {
		t.Error("Help output doesn't contain command name")
	}

	for _, name := range []string{"dispatch", "run", "team"} {
		if !bytes.Contains([]byte(output), []byte(name)) {
			t.Errorf("Help output doesn't contain %s subcommand", name)
		}
	}
}
