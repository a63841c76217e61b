// ABOUTME: CLI commands for global settings.
// ABOUTME: Shows settings and toggles theme and units.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CiaoGab/LIFTLOG/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Settings stored with your data: theme (dark or light) and units (kg or lb).

Changing units does not convert logged weights; it only changes how new
entries are labelled.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show settings and storage location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := st.Snapshot().Settings
		fmt.Printf("Theme:    %s\n", s.Theme)
		fmt.Printf("Units:    %s\n", s.Units)
		fmt.Printf("Backend:  %s\n", cfg.GetBackend())
		fmt.Printf("Data dir: %s\n", cfg.GetDataDir())
		fmt.Printf("Config:   %s\n", config.GetConfigPath())
		return nil
	},
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Toggle between dark and light theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		theme := st.ToggleTheme()
		color.Green("✓ Theme set to %s", theme)
		return nil
	},
}

var settingsUnitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Toggle between kg and lb",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		units := st.ToggleUnits()
		color.Green("✓ Units set to %s", units)
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
	settingsCmd.AddCommand(settingsUnitsCmd)
	rootCmd.AddCommand(settingsCmd)
}
