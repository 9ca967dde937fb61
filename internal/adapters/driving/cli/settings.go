package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change settings stored in ~/.legis/config.toml.

LEGISCAN_API_KEY, LEGISCAN_BASE_URL and LEGIS_JURISDICTION override the
stored values.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Set a setting; omit the value to clear it",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List settable keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[API]")
	if settings.API.HasKey() {
		cmd.Printf("  Key: %s\n", settings.API.MaskedKey())
	} else {
		cmd.Println("  Key: (not set)")
	}
	cmd.Printf("  Base URL: %s\n", settings.API.BaseURL)
	if settings.API.RequestsPerSecond > 0 {
		cmd.Printf("  Requests/second: %g\n", settings.API.RequestsPerSecond)
	} else {
		cmd.Println("  Requests/second: unlimited")
	}
	cmd.Println()

	cmd.Println("[Legislature]")
	cmd.Printf("  Jurisdiction: %s\n", settings.Legislature.Jurisdiction)
	cmd.Printf("  Session policy: %s\n", settings.Legislature.SessionPolicy)
	cmd.Println()

	cmd.Println("[Committees]")
	if settings.Committees.File != "" {
		cmd.Printf("  File: %s\n", settings.Committees.File)
	} else {
		cmd.Println("  File: (built-in)")
	}

	if !settings.API.HasKey() {
		cmd.Println()
		cmd.Println("Warning: no API key configured.")
		cmd.Println("Run 'legis settings set api.key <key>' or set LEGISCAN_API_KEY.")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	value := ""
	if len(args) == 2 {
		value = args[1]
	}

	if err := settingsService.Set(args[0], value); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	if value == "" {
		cmd.Printf("Cleared %s\n", args[0])
	} else {
		cmd.Printf("Set %s\n", args[0])
	}
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}
