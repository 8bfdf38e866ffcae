package cli

import (
	"fmt"

	"github.com/AntonioJCosta/adbkey/internal/adapters/zaplog"
	"github.com/AntonioJCosta/adbkey/internal/handlers/ui"
	"github.com/spf13/cobra"
)

const (
	successMessage = "Key file successfully pulled from device."
	failureMessage = "Failed to pull key file from device."
)

// runExtractCmd contains the core logic for the root command.
// Extraction failures are printed, not returned, so the process exits 0.
func runExtractCmd(
	cmd *cobra.Command,
	_ []string,
	newExtractionService ExtractionServiceFactory,
	newSettingsProvider SettingsProviderFactory,
) error {
	settings, _, err := resolveSettings(cmd, newSettingsProvider)
	if err != nil {
		return err
	}

	logger := zaplog.FromContext(cmd.Context())
	extractionService := newExtractionService(logger)

	out := cmd.OutOrStdout()
	result, err := extractionService.AuthorizeAndExtract(settings)
	if err != nil {
		fmt.Fprintln(out, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		fmt.Fprintln(out, ui.ErrorColor(failureMessage))
		return nil
	}

	fmt.Fprintln(out, ui.SuccessColor(successMessage))
	if output := result.Output(); output != "" {
		fmt.Fprintln(out, ui.ToolOutputColor(output))
	}
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Saved to %s", settings.LocalPath)))
	return nil
}
