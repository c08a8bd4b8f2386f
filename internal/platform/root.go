package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNoProjectConfig is returned by FindProjectConfig when no directory up to
// the filesystem root holds a project config file.
var ErrNoProjectConfig = errors.New("project config not found")

// FindProjectConfig looks upwards from startDir for ConfigFileName and
// returns its absolute path.
func FindProjectConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, ConfigFileName) {
			return filepath.Join(dir, ConfigFileName), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrNoProjectConfig
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
