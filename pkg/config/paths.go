// Package config exposes the config path conventions shared by the demo app
// and any embedder that wants to resolve editfield's files itself.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/hamidzr/editfield/constant"
)

// GetConfigPaths returns config directory candidates in priority order,
// preferring ~/.config over the platform config dir. A profile ID namespaces
// its paths ahead of the shared ones.
func GetConfigPaths(profileID string) []string {
	var paths []string

	if profileID != "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(homeDir, ".config", constant.ProjectName, profileID))
			paths = append(paths, filepath.Join(homeDir, "."+constant.ProjectName, profileID))
		}
		if configDir, err := os.UserConfigDir(); err == nil {
			paths = append(paths, filepath.Join(configDir, constant.ProjectName, profileID))
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", constant.ProjectName))
		paths = append(paths, filepath.Join(homeDir, "."+constant.ProjectName))
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, constant.ProjectName))
	}
	paths = append(paths, ".")

	return paths
}

// GetPreferredConfigDir returns the directory new config files are written to.
func GetPreferredConfigDir(profileID string) (string, error) {
	if homeDir, err := os.UserHomeDir(); err == nil {
		if profileID != "" {
			return filepath.Join(homeDir, ".config", constant.ProjectName, profileID), nil
		}
		return filepath.Join(homeDir, ".config", constant.ProjectName), nil
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		if profileID != "" {
			return filepath.Join(userConfigDir, constant.ProjectName, profileID), nil
		}
		return filepath.Join(userConfigDir, constant.ProjectName), nil
	}

	return "", errors.New("unable to determine config directory")
}
