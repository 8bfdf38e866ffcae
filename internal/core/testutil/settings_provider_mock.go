package testutil

import (
	"github.com/AntonioJCosta/adbkey/internal/core/domain/keytransfer"
	"github.com/AntonioJCosta/adbkey/internal/core/ports"
)

// MockSettingsProvider is a mock implementation of the ports.SettingsProvider interface.
type MockSettingsProvider struct {
	GetSettingsFunc         func() (keytransfer.Settings, error)
	GetSourceIdentifierFunc func() string
}

// GetSettings mocks the GetSettings method.
func (m *MockSettingsProvider) GetSettings() (keytransfer.Settings, error) {
	if m.GetSettingsFunc != nil {
		return m.GetSettingsFunc()
	}
	return keytransfer.Settings{}, nil
}

// GetSourceIdentifier mocks the GetSourceIdentifier method.
func (m *MockSettingsProvider) GetSourceIdentifier() string {
	if m.GetSourceIdentifierFunc != nil {
		return m.GetSourceIdentifierFunc()
	}
	return ""
}

var _ ports.SettingsProvider = (*MockSettingsProvider)(nil)
