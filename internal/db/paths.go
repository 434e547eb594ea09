package db

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "punch"

// DataDir returns the platform data directory for punch. PUNCH_DATA_DIR
// overrides everything, which is how tests and scripts point the CLI at
// a scratch database.
func DataDir() (string, error) {
	if dir := os.Getenv("PUNCH_DATA_DIR"); dir != "" {
		return dir, nil
	}
	return dataDirForOS(runtime.GOOS)
}

func dataDirForOS(goos string) (string, error) {
	switch goos {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "AppData", "Roaming", appName), nil

	case "darwin":
		// Respect XDG_DATA_HOME for power users, otherwise the macOS convention.
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", appName), nil

	default:
		// Linux and other Unix: XDG Base Directory Specification.
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", appName), nil
	}
}
