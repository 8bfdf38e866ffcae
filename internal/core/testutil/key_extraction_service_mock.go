package testutil

import (
	"errors"

	"github.com/AntonioJCosta/adbkey/internal/core/domain/keytransfer"
	"github.com/AntonioJCosta/adbkey/internal/core/ports"
)

// MockKeyExtractionService is a mock implementation of ports.KeyExtractionService.
type MockKeyExtractionService struct {
	AuthorizeAndExtractFunc func(settings keytransfer.Settings) (keytransfer.Result, error)
}

func (m *MockKeyExtractionService) AuthorizeAndExtract(settings keytransfer.Settings) (keytransfer.Result, error) {
	if m.AuthorizeAndExtractFunc != nil {
		return m.AuthorizeAndExtractFunc(settings)
	}
	return keytransfer.Result{}, errors.New("MockKeyExtractionService: AuthorizeAndExtractFunc not implemented")
}

var _ ports.KeyExtractionService = (*MockKeyExtractionService)(nil)
