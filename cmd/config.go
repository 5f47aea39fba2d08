package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	logger "github.com/PolarWolf314/pigment/internal/logging"
)

var (
	configFlags  commonFlags
	ConfigLogger logger.Logger

	// ConfigCmd is the top-level config command.
	ConfigCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage pigment settings",
		Long: `Provides commands for inspecting and changing the stored settings.

Settings live in a single sealed value inside the state file. Every change
is saved immediately.

Examples:
  # Show all settings
  pigment config show

  # Hash workspaces by name and Git branch
  pigment config set hash-source name-branch

  # Replace the dark palette
  pigment config set dark-colors "#1e3a8a #7c3aed #db2777"

  # Back up and restore settings
  pigment config export pigment.toml
  pigment config import pigment.toml

  # Restore defaults
  pigment config reset`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ConfigLogger = configFlags.logger()
			ConfigLogger.Debugf("Initializing config command with verbose=%t, debug=%t", configFlags.verbose, configFlags.debug)
		},
	}
)

func init() {
	configFlags.register(ConfigCmd)
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}

// ResetConfigState resets all config command global variables to their default values for testing.
func ResetConfigState() {
	configFlags.reset()
	resetConfigShowState()
	resetConfigCobraFlagState()
}

// resetConfigCobraFlagState resets the flag state for all config commands to prevent test pollution.
func resetConfigCobraFlagState() {
	reset := func(flag *pflag.Flag) { flag.Changed = false }
	ConfigCmd.PersistentFlags().VisitAll(reset)
	for _, sub := range ConfigCmd.Commands() {
		sub.Flags().VisitAll(reset)
	}
}
