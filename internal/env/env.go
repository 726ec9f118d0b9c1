package env

import (
	"os"
	"path/filepath"
)

// ConfigName is the file name of a ccenv configuration.
const ConfigName = "ccenv.yaml"

// ConfigDir returns the per-user configuration directory of ccenv.
func ConfigDir() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userConfigDir, "ccenv"), nil
}

// ConfigPaths returns the configuration files to try, most specific first:
// explicit (if set), the project file in dir, then the per-user file.
func ConfigPaths(explicit, dir string) []string {
	if explicit != "" {
		return []string{explicit}
	}
	paths := []string{filepath.Join(dir, ConfigName)}
	if userDir, err := ConfigDir(); err == nil {
		paths = append(paths, filepath.Join(userDir, ConfigName))
	}
	return paths
}
