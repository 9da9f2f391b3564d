package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Westerntf/driplypay-v2-sub002/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func analyticsWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics-worker",
		Short: "Project the tips stream into analytics events",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			worker := &app.Worker{}
			defer worker.Close()
			if err := worker.Initialize(cfg); err != nil {
				return err
			}

			err = worker.Run(ctx)
			logrus.Info("Analytics worker stopped")
			return err
		},
	}
}
