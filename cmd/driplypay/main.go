package main

import (
	"fmt"
	"os"

	"github.com/Westerntf/driplypay-v2-sub002/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "driplypay",
		Short:         "Tip checkout and settlement service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(analyticsWorkerCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(creatorsCmd())
	rootCmd.AddCommand(unreconciledCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	level, err := logrus.ParseLevel(cfg.APP.LogLevel)
	if err != nil {
		logrus.Warnf("Unknown LOG_LEVEL %q, using info", cfg.APP.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if !config.IsLocal() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	return cfg, nil
}
