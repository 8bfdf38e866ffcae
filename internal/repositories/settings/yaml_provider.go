package settings

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/adbkey/internal/core/domain/keytransfer"
	"github.com/AntonioJCosta/adbkey/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed default_settings.yaml
var embeddedDefaultSettings []byte

const builtInSourceIdentifier = "Built-in defaults"

/*
YAMLProvider implements the ports.SettingsProvider interface.
It starts from the embedded defaults and overlays the user's YAML file, if any.
*/
type YAMLProvider struct {
	filePath string // empty means defaults only
}

// NewYAMLProvider creates a provider reading filePath on top of the defaults.
// An empty filePath means only the built-in defaults are used.
func NewYAMLProvider(filePath string) ports.SettingsProvider {
	return &YAMLProvider{filePath: filePath}
}

/*
NewYAMLProviderFromFinder creates a provider for the file located by finder.
A finder error is not fatal: a warning is printed and the defaults are used.
*/
func NewYAMLProviderFromFinder(finder ports.SettingsFileFinder) ports.SettingsProvider {
	filePath, err := finder.Find()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not locate a settings file: %v. Using built-in defaults.\n", err)
		return &YAMLProvider{}
	}
	return &YAMLProvider{filePath: filePath}
}

// GetSettings implements the ports.SettingsProvider interface.
// A missing or empty settings file is not an error; keys it sets override the defaults.
func (p *YAMLProvider) GetSettings() (keytransfer.Settings, error) {
	var s keytransfer.Settings
	if err := decodeSettings(embeddedDefaultSettings, &s); err != nil {
		return keytransfer.Settings{}, fmt.Errorf("failed to unmarshal embedded default settings: %w", err)
	}

	if p.filePath != "" {
		content, err := os.ReadFile(p.filePath)
		if err != nil && !os.IsNotExist(err) {
			return keytransfer.Settings{}, fmt.Errorf("failed to read settings file %s: %w", toUserFriendlyPath(p.filePath), err)
		}
		if err := decodeSettings(content, &s); err != nil {
			return keytransfer.Settings{}, fmt.Errorf("failed to unmarshal settings from %s: %w", toUserFriendlyPath(p.filePath), err)
		}
	}

	localPath, err := expandHome(s.LocalPath)
	if err != nil {
		return keytransfer.Settings{}, err
	}
	s.LocalPath = localPath
	return s, nil
}

// GetSourceIdentifier implements the ports.SettingsProvider interface.
func (p *YAMLProvider) GetSourceIdentifier() string {
	if p.filePath == "" {
		return builtInSourceIdentifier
	}
	if _, err := os.Stat(p.filePath); err != nil {
		return fmt.Sprintf("%s (%s not found)", builtInSourceIdentifier, toUserFriendlyPath(p.filePath))
	}
	return fmt.Sprintf("File: %s", toUserFriendlyPath(p.filePath))
}

// decodeSettings overlays the keys present in content onto s.
func decodeSettings(content []byte, s *keytransfer.Settings) error {
	if len(content) == 0 {
		return nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(s); err != nil {
		// A document holding only comments decodes as io.EOF.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
