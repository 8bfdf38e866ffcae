package cli

import (
	"fmt"

	"github.com/AntonioJCosta/adbkey/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSettingsCommand creates the 'settings' subcommand.
func NewSettingsCommand(newSettingsProvider SettingsProviderFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the settings a pull would use.",
		Long: `Displays the bridge tool, remote key path and local destination after
applying the settings file and any flags. Nothing is run on the device.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettingsCmd(cmd, args, newSettingsProvider)
		},
	}
	return cmd
}

func runSettingsCmd(
	cmd *cobra.Command,
	_ []string,
	newSettingsProvider SettingsProviderFactory,
) error {
	settings, provider, err := resolveSettings(cmd, newSettingsProvider)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.HeaderColor("Effective settings:"))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Setting", "Value"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.Append([]string{"Bridge tool", settings.BridgeTool})
	table.Append([]string{"Remote path", settings.RemotePath})
	table.Append([]string{"Local path", settings.LocalPath})
	table.Render()

	if err := settings.Validate(); err != nil {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("Warning: %v", err)))
	}
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(Source: %s)", provider.GetSourceIdentifier())))
	return nil
}
