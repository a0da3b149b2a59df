package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hamidzr/editfield/constant"
)

// Config holds all configuration for the demo application.
type Config struct {
	// app settings
	Title        string `mapstructure:"title" yaml:"title"`
	ProfileID    string `mapstructure:"profile" yaml:"profile"`
	TerminalMode bool   `mapstructure:"terminal_mode" yaml:"terminal_mode"`
	InitialFocus string `mapstructure:"initial_focus" yaml:"initial_focus"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level"`
	Persist      bool   `mapstructure:"persist" yaml:"persist"`

	// field behavior
	DiscardOnCancel     bool `mapstructure:"discard_on_cancel" yaml:"discard_on_cancel"`
	ClearFocusOnDiscard bool `mapstructure:"clear_focus_on_discard" yaml:"clear_focus_on_discard"`

	// window geometry
	MinWidth   float32 `mapstructure:"min_width" yaml:"min_width"`
	MinHeight  float32 `mapstructure:"min_height" yaml:"min_height"`
	LabelWidth float32 `mapstructure:"label_width" yaml:"label_width"`
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	return &Config{
		Title:               constant.ProjectName,
		ProfileID:           "",
		TerminalMode:        false,
		InitialFocus:        "",
		LogLevel:            "info",
		Persist:             true,
		DiscardOnCancel:     true,
		ClearFocusOnDiscard: true,
		MinWidth:            520,
		MinHeight:           260,
		LabelWidth:          120,
	}
}

// BindFlags binds CLI flags to the cobra command.
func BindFlags(cmd *cobra.Command) {
	defaults := DefaultConfig()

	cmd.PersistentFlags().StringP("title", "t", defaults.Title, "Title of the demo window")
	cmd.PersistentFlags().StringP("profile", "m", defaults.ProfileID, "Profile ID namespacing config and stored values")
	cmd.PersistentFlags().Bool("terminal", defaults.TerminalMode, "Run in terminal-only mode without GUI")
	cmd.PersistentFlags().String("initial-focus", defaults.InitialFocus, "Field key to focus at startup")
	cmd.PersistentFlags().String("log-level", defaults.LogLevel, "Log level (trace..error)")
	cmd.PersistentFlags().Bool("persist", defaults.Persist, "Persist committed values between runs")
	cmd.PersistentFlags().Bool("discard-on-cancel", defaults.DiscardOnCancel, "Escape abandons the draft instead of passing through")
	cmd.PersistentFlags().Bool("clear-focus-on-discard", defaults.ClearFocusOnDiscard, "A discard also clears the shared focus key")
	cmd.PersistentFlags().Float32("min-width", defaults.MinWidth, "Minimum window width")
	cmd.PersistentFlags().Float32("min-height", defaults.MinHeight, "Minimum window height")
	cmd.PersistentFlags().Float32("label-width", defaults.LabelWidth, "Width of the label column")
	cmd.PersistentFlags().Bool("init-config", false, "Generate and save default config file")
}

// SetViperDefaults sets default values in viper configuration.
func SetViperDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("title", defaults.Title)
	v.SetDefault("profile", defaults.ProfileID)
	v.SetDefault("terminal_mode", defaults.TerminalMode)
	v.SetDefault("initial_focus", defaults.InitialFocus)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("persist", defaults.Persist)
	v.SetDefault("discard_on_cancel", defaults.DiscardOnCancel)
	v.SetDefault("clear_focus_on_discard", defaults.ClearFocusOnDiscard)
	v.SetDefault("min_width", defaults.MinWidth)
	v.SetDefault("min_height", defaults.MinHeight)
	v.SetDefault("label_width", defaults.LabelWidth)
}

// SetViperEnvSettings configures viper environment variable settings.
func SetViperEnvSettings(v *viper.Viper) {
	v.SetEnvPrefix(strings.ToUpper(constant.ProjectName))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}
