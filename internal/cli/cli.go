// Package cli wires the demo application: a window of commit-on-blur fields
// sharing one focus group, with committed values persisted between runs.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamidzr/editfield/internal/config"
	"github.com/hamidzr/editfield/internal/logger"
)

// InitCLI builds the demo's root command.
func InitCLI() *cobra.Command {
	RootCmd := &cobra.Command{
		Use:   "editfield-demo",
		Short: "editfield-demo shows commit-on-blur fields sharing one focus group",
		RunE: func(cmd *cobra.Command, args []string) error {
			initConfig, _ := cmd.Flags().GetBool("init-config")
			if initConfig {
				profileID, _ := cmd.Flags().GetString("profile")
				configPath, err := config.InitConfigFile(profileID)
				if err != nil {
					return fmt.Errorf("failed to initialize config: %w", err)
				}
				fmt.Printf("config file created at: %s\n", configPath)
				return nil
			}

			cfg, err := config.InitConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			logger.Setup(cfg.LogLevel)

			if cfg.TerminalMode {
				return RunTerminal(cfg)
			}
			return run(cfg)
		},
	}

	config.BindFlags(RootCmd)

	return RootCmd
}
