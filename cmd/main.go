package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"fileboard-client/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// failures reported by the server were already shown to the user
		if !errors.Is(err, cli.ErrOperationFailed) {
			logrus.Errorf("error: %v", err)
		}
		os.Exit(1)
	}
}
