package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hamidzr/editfield/internal/cli"
	"github.com/hamidzr/editfield/model"
)

func main() {
	defer startProfiling()()

	cmd := cli.InitCLI()
	if err := cmd.Execute(); err != nil {
		code, cause := model.ExitCodeFromError(err)
		if cause != nil {
			logrus.Error(cause)
		}
		os.Exit(int(code))
	}
}
