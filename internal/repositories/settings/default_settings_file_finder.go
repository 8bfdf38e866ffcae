package settings

import "github.com/AntonioJCosta/adbkey/internal/core/ports"

// DefaultSettingsFileFinder is the default implementation that uses the package-level findUserSettingsFile.
type DefaultSettingsFileFinder struct{}

// Find implements the ports.SettingsFileFinder interface.
func (d *DefaultSettingsFileFinder) Find() (string, error) {
	return findUserSettingsFile()
}

// NewDefaultSettingsFileFinder creates a new DefaultSettingsFileFinder.
func NewDefaultSettingsFileFinder() ports.SettingsFileFinder {
	return &DefaultSettingsFileFinder{}
}
