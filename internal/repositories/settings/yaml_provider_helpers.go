package settings

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

const settingsDir = ".adbkey"
const settingsFilename = "config.yaml"

// findUserSettingsFile returns the conventional settings path under the user's home directory.
// The file itself does not have to exist.
func findUserSettingsFile() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	if usr.HomeDir == "" {
		return "", fmt.Errorf("home directory unknown for user %s", usr.Username)
	}
	return filepath.Join(usr.HomeDir, settingsDir, settingsFilename), nil
}

// expandHome replaces a leading "~" with the current user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	if path == "~" {
		return usr.HomeDir, nil
	}
	return filepath.Join(usr.HomeDir, strings.TrimPrefix(path, "~/")), nil
}

func toUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	homeDir := usr.HomeDir
	if homeDir != "" && strings.HasPrefix(absPath, homeDir) {
		if absPath == homeDir {
			return "~"
		}
		return filepath.Join("~", strings.TrimPrefix(absPath, homeDir+string(os.PathSeparator)))
	}
	return absPath
}
