package cli

import (
	"fmt"

	"github.com/AntonioJCosta/adbkey/internal/adapters/zaplog"
	"github.com/AntonioJCosta/adbkey/internal/core/ports"
	"github.com/spf13/cobra"
)

// ExtractionServiceFactory builds the key extraction service once the logger is known.
type ExtractionServiceFactory func(logger ports.Logger) ports.KeyExtractionService

// SettingsProviderFactory builds the settings provider for the --config value ("" when unset).
type SettingsProviderFactory func(configPath string) ports.SettingsProvider

func NewRootCommand(
	version string,
	newExtractionService ExtractionServiceFactory,
	newSettingsProvider SettingsProviderFactory,
) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "adbkey",
		Short: "adbkey pulls the adb authentication key off a connected device.",
		Long: `adbkey asks the device bridge tool to restart the device daemon as root,
then pulls the authentication key file to the local filesystem.
Failures are reported on stdout; the exit status stays 0.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if newSettingsProvider == nil {
				return fmt.Errorf("settings provider not initialized for command %s", cmd.Name())
			}
			if newExtractionService == nil && cmd.Name() == "adbkey" {
				return fmt.Errorf("key extraction service not initialized for command %s", cmd.Name())
			}
			verbose, _ := cmd.Flags().GetBool(flagVerbose)
			logger, err := zaplog.New(verbose)
			if err != nil {
				return fmt.Errorf("could not initialize logger: %w", err)
			}
			cmd.SetContext(zaplog.WithLogger(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtractCmd(cmd, args, newExtractionService, newSettingsProvider)
		},
	}

	addSettingsFlags(rootCmd)
	rootCmd.PersistentFlags().BoolP(flagVerbose, "v", false, "Log each bridge invocation to stderr.")

	rootCmd.AddCommand(NewSettingsCommand(newSettingsProvider))

	return rootCmd
}
