package main

import (
	"fmt"
	"os"

	"tradecoach/internal/cli"
	"tradecoach/internal/config"
	"tradecoach/internal/logging"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		cfg = config.Default()
	}
	logger := logging.NewLoggerWithConfig(cli.LogConfig(cfg))

	rootCmd := cli.NewRootCmd(cfg, logger)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
