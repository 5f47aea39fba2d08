package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/pigment/internal/ui"
	"github.com/PolarWolf314/pigment/internal/workflows"
)

func init() {
	ConfigCmd.AddCommand(configExportCmd)
}

var configExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write settings to a TOML file",
	Long: `Writes every setting to a human-readable TOML file. Colors are written
as #rrggbbaa.

Examples:
  pigment config export ~/dotfiles/pigment.toml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		ConfigLogger.Infof("Starting config export command")
		ConfigLogger.Debugf("Export path: %s", path)

		ctx := cmd.Context()
		session, err := openSession(ctx, ConfigLogger, configFlags.state)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to open settings: %v", err)
		}

		spinner, cleanup := startSpinner("Exporting settings...", ConfigLogger)
		defer cleanup()

		if err := workflows.ExportConfig(ctx, session.Store, path); err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to export settings"
			return ConfigLogger.ErrorfAndReturn("Failed to export settings: %v", err)
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Exported settings to " + ui.Path.Sprint(path)
		return nil
	},
}
