package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	pkgconfig "github.com/hamidzr/editfield/pkg/config"
)

// InitConfig initializes viper configuration with the usual priority:
// CLI flags over environment variables over config file over defaults.
func InitConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// profile from flags decides the config namespace
	profileID, _ := cmd.Flags().GetString("profile")

	for _, path := range pkgconfig.GetConfigPaths(profileID) {
		v.AddConfigPath(path)
	}

	SetViperEnvSettings(v)
	SetViperDefaults(v)
	registerConfigKeyAliases(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// no config file is fine, defaults + env + flags apply
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// InitConfigFile generates and saves a default config file, refusing to
// overwrite an existing one.
func InitConfigFile(profileID string) (string, error) {
	configDir, err := pkgconfig.GetPreferredConfigDir(profileID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	defaults := DefaultConfig()
	defaults.ProfileID = profileID

	yamlData, err := yaml.Marshal(defaults)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	header := `# editfield configuration file
# Generated automatically - customize as needed
#
# discard_on_cancel: Escape abandons the active draft (default true)
# clear_focus_on_discard: a discard also clears the shared focus key
# initial_focus: field key focused at startup
#
`
	if err := os.WriteFile(configPath, append([]byte(header), yamlData...), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
