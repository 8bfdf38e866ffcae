package ports

import "github.com/AntonioJCosta/adbkey/internal/core/domain/keytransfer"

/*
SettingsProvider defines the contract for resolving the transfer settings
from built-in defaults and any user configuration.
This is a driven port, typically implemented by a repository adapter.
*/
type SettingsProvider interface {
	GetSettings() (keytransfer.Settings, error)
	GetSourceIdentifier() string
}
