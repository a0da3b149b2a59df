package main

import (
	"fmt"
	"os"

	"github.com/hamidzr/editfield/internal/cli"
	"github.com/hamidzr/editfield/internal/config"
	"github.com/hamidzr/editfield/internal/logger"
	"github.com/hamidzr/editfield/model"
)

func main() {
	cfg := config.DefaultConfig()
	cfg.TerminalMode = true
	logger.Setup(cfg.LogLevel)

	if err := cli.RunTerminal(cfg); err != nil {
		code, cause := model.ExitCodeFromError(err)
		if cause != nil {
			fmt.Fprintln(os.Stderr, cause)
		}
		os.Exit(int(code))
	}
}
