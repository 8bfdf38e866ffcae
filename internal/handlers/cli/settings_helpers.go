package cli

import (
	"fmt"

	"github.com/AntonioJCosta/adbkey/internal/core/domain/keytransfer"
	"github.com/AntonioJCosta/adbkey/internal/core/ports"
	"github.com/spf13/cobra"
)

const (
	flagConfig  = "config"
	flagTool    = "tool"
	flagRemote  = "remote"
	flagLocal   = "local"
	flagVerbose = "verbose"
)

// addSettingsFlags registers the flags that override the settings file.
func addSettingsFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(flagConfig, "c", "", "Settings file (default ~/.adbkey/config.yaml).")
	cmd.PersistentFlags().StringP(flagTool, "t", "", "Device bridge executable (default adb).")
	cmd.PersistentFlags().StringP(flagRemote, "r", "", "Key file path on the device (default /data/misc/adb/adb_key).")
	cmd.PersistentFlags().StringP(flagLocal, "l", "", "Destination path for the pulled key (default ./adbkey).")
}

/*
resolveSettings loads the settings through the provider for --config and
applies any explicitly set flag on top. It returns the provider as well so
callers can report where the settings came from.
*/
func resolveSettings(cmd *cobra.Command, newSettingsProvider SettingsProviderFactory) (keytransfer.Settings, ports.SettingsProvider, error) {
	configPath, _ := cmd.Flags().GetString(flagConfig)
	provider := newSettingsProvider(configPath)

	s, err := provider.GetSettings()
	if err != nil {
		return keytransfer.Settings{}, nil, fmt.Errorf("could not load settings: %w", err)
	}

	if cmd.Flags().Changed(flagTool) {
		s.BridgeTool, _ = cmd.Flags().GetString(flagTool)
	}
	if cmd.Flags().Changed(flagRemote) {
		s.RemotePath, _ = cmd.Flags().GetString(flagRemote)
	}
	if cmd.Flags().Changed(flagLocal) {
		s.LocalPath, _ = cmd.Flags().GetString(flagLocal)
	}
	return s, provider, nil
}
