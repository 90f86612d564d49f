package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "quizreminder"

type Config struct {
	SettingsPath string
}

// New resolves the per-user settings location. An explicit dir overrides the
// platform default, which is what tests and portable installs use.
func New(dir string) (Config, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, appDirName)
	}
	return Config{
		SettingsPath: filepath.Join(dir, "settings.json"),
	}, nil
}
