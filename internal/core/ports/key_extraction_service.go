package ports

import "github.com/AntonioJCosta/adbkey/internal/core/domain/keytransfer"

// KeyExtractionService defines the contract for pulling the key file off a device.
type KeyExtractionService interface {
	// AuthorizeAndExtract escalates the device to root and then pulls the key file.
	// A failed bridge invocation is reported as a *keytransfer.ExternalToolError.
	AuthorizeAndExtract(settings keytransfer.Settings) (keytransfer.Result, error)
}
