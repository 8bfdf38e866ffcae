package ports

// SettingsFileFinder defines the contract for locating the user's settings file.
type SettingsFileFinder interface {
	Find() (string, error)
}
