package main

import (
	"os"

	"github.com/AntonioJCosta/adbkey/internal/adapters/oscommand"
	"github.com/AntonioJCosta/adbkey/internal/core/ports"
	"github.com/AntonioJCosta/adbkey/internal/core/services/keyextraction"
	"github.com/AntonioJCosta/adbkey/internal/handlers/cli"
	"github.com/AntonioJCosta/adbkey/internal/repositories/settings"
)

// Version is set at build time
var Version = "dev"

func main() {
	cmdExec := oscommand.NewOSCommandExecutor()

	newExtractionService := func(logger ports.Logger) ports.KeyExtractionService {
		return keyextraction.NewService(cmdExec, logger)
	}

	// An explicit --config path wins; otherwise look in the user's home directory.
	newSettingsProvider := func(configPath string) ports.SettingsProvider {
		if configPath != "" {
			return settings.NewYAMLProvider(configPath)
		}
		return settings.NewYAMLProviderFromFinder(settings.NewDefaultSettingsFileFinder())
	}

	rootCmd := cli.NewRootCommand(Version, newExtractionService, newSettingsProvider)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
