package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/pigment/internal/ui"
	"github.com/PolarWolf314/pigment/internal/workflows"
)

func init() {
	ConfigCmd.AddCommand(configResetCmd)
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore every setting to its default",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config reset command")

		ctx := cmd.Context()
		session, err := openSession(ctx, ConfigLogger, configFlags.state)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to open settings: %v", err)
		}

		spinner, cleanup := startSpinner("Resetting settings...", ConfigLogger)
		defer cleanup()

		if err := workflows.ResetConfig(ctx, session.Store); err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to reset settings"
			return ConfigLogger.ErrorfAndReturn("Failed to save settings: %v", err)
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Settings reset to defaults"
		return nil
	},
}
