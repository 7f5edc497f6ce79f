package config

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	// ConfigPathEnvVar names an external config file of either format. It is
	// the variable the sandbox setup instructions tell users to set.
	ConfigPathEnvVar = "FLYTECTL_CONFIG"

	// currentDirConfigName is the legacy config file looked for in the
	// directory the process runs from.
	currentDirConfigName = "flytekit.config"

	// homeConfigDirName is the per-user config directory under $HOME.
	homeConfigDirName = ".flyte"
)

// GetConfigFile resolves an optional path hint to a loaded config file. A
// non-empty path loads directly. An empty path searches the fixed candidate
// list in order and loads the first file that exists:
//
//  1. ./flytekit.config (legacy)
//  2. ~/.flyte/config (legacy)
//  3. the path named by $FLYTECTL_CONFIG (either format, by extension)
//  4. ~/.flyte/config.yaml
//
// No candidate existing is not an error: resolution then falls entirely to
// environment variables, so the result is (nil, nil).
func GetConfigFile(path string) (*ConfigFile, error) {
	if path != "" {
		return NewConfigFile(path)
	}

	if p, ok := existingAbs(currentDirConfigName); ok {
		logger.Info("using configuration from process working directory", zap.String("location", p))
		return NewConfigFile(p)
	}

	home, homeErr := os.UserHomeDir()
	if homeErr == nil {
		if p, ok := existingAbs(filepath.Join(home, homeConfigDirName, "config")); ok {
			logger.Info("using configuration from home directory", zap.String("location", p))
			return NewConfigFile(p)
		}
	}

	if fromEnv := os.Getenv(ConfigPathEnvVar); fromEnv != "" {
		if p, ok := existingAbs(fromEnv); ok {
			logger.Info("using configuration named by environment variable",
				zap.String("env", ConfigPathEnvVar),
				zap.String("location", p),
			)
			return NewConfigFile(p)
		}
	}

	if homeErr == nil {
		if p, ok := existingAbs(filepath.Join(home, homeConfigDirName, "config.yaml")); ok {
			logger.Info("using yaml configuration from home directory", zap.String("location", p))
			return NewConfigFile(p)
		}
	}

	return nil, nil
}

// existingAbs reports whether path names an existing file, returning its
// absolute form for loading and logging.
func existingAbs(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	if _, err := os.Stat(abs); err != nil {
		return "", false
	}
	return abs, true
}
