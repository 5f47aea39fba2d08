// Package cmd contains testing utilities shared between command tests.
// This file provides functions for building a CLI instance, isolating the
// state file, and capturing output.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/pigment/internal/utils"
)

// setupTestEnvironment points the state file at a temp directory and turns
// off colors so output can be matched as plain text.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	statePath := filepath.Join(t.TempDir(), "pigment", "state.toml")
	t.Setenv(utils.StateFileEnv, statePath)
	t.Setenv("NO_COLOR", "1")
	return statePath
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	drain := func(r io.Reader, out chan<- string) {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		out <- buf.String()
	}
	go drain(stdoutReader, stdoutChan)
	go drain(stderrReader, stderrChan)

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}

// resetAllState resets every command's flags and globals to their defaults.
func resetAllState() {
	resetColorState()
	resetWatchState()
	ResetConfigState()
}

// createTestCLI creates a complete CLI instance for testing with the given arguments.
func createTestCLI(args ...string) *cobra.Command {
	resetAllState()

	rootCmd := &cobra.Command{
		Use:          "pigment",
		Short:        "Pigment - a stable accent color for every workspace.",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(ColorCmd)
	rootCmd.AddCommand(ConfigCmd)
	rootCmd.AddCommand(WatchCmd)
	rootCmd.SetArgs(args)
	return rootCmd
}

// runCLI executes the CLI with args and returns the combined output.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	output, err := captureOutput(func() error {
		return createTestCLI(args...).Execute()
	})
	if err != nil {
		t.Fatalf("pigment %v failed: %v\nOutput: %s", args, err, output)
	}
	return output
}
