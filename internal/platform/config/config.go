package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	DataPath string
	DBPath   string
}

// New resolves the data directory. An empty path falls back to
// ~/.focusdeck so the binary works without flags.
func New(dataPath string) (Config, error) {
	if dataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataPath = filepath.Join(home, ".focusdeck")
	}
	return Config{
		DataPath: dataPath,
		DBPath:   filepath.Join(dataPath, "index", "focusdeck.db"),
	}, nil
}
