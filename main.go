package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/pigment/cmd"
	"github.com/PolarWolf314/pigment/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "pigment",
	Short: "Pigment - a stable accent color for every workspace.",
	Long: `Pigment derives a deterministic accent color for each project from its
name, path, date or Git branch, and keeps your palette and preferences in a
sealed state file.

Usage:
  pigment <command> [flags]

Available Commands:
  color      Show the accent color for a workspace
  config     Manage pigment settings
  watch      Print the accent color whenever settings change

Run 'pigment help <command>' for more details on a specific command.
`,
	SilenceUsage: true,
	Run: func(c *cobra.Command, args []string) {
		figure.NewFigure("pigment", "small", true).Print()
		fmt.Println()
		fmt.Println("Run " + ui.Code.Sprint("pigment --help") + " to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.ColorCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
	rootCmd.AddCommand(cmd.WatchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
