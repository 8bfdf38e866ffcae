package testutil

import "github.com/AntonioJCosta/adbkey/internal/core/ports"

// MockSettingsFileFinder is a mock implementation of ports.SettingsFileFinder.
type MockSettingsFileFinder struct {
	FindFunc func() (string, error)
}

// Find mocks the Find method.
func (m *MockSettingsFileFinder) Find() (string, error) {
	if m.FindFunc != nil {
		return m.FindFunc()
	}
	return "", nil
}

var _ ports.SettingsFileFinder = (*MockSettingsFileFinder)(nil)
