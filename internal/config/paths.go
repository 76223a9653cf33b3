package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultSaveDir returns the game's save folder for the running OS
func DefaultSaveDir() string {
	home, _ := os.UserHomeDir()
	return SaveDirFor(runtime.GOOS, home, os.Getenv)
}

// SaveDirFor returns the Endless Sky save folder for goos, or "" for an
// unsupported platform or missing environment
func SaveDirFor(goos, home string, getenv func(string) string) string {
	switch goos {
	case "windows":
		appData := getenv("APPDATA")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, "endless-sky", "saves")
	case "linux":
		if home == "" {
			return ""
		}
		return filepath.Join(home, ".local", "share", "endless-sky", "saves")
	case "darwin":
		if home == "" {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", "endless-sky", "saves")
	}
	return ""
}
