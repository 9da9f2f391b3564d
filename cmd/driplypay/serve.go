package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Westerntf/driplypay-v2-sub002/config"
	"github.com/Westerntf/driplypay-v2-sub002/internal/app"
	"github.com/Westerntf/driplypay-v2-sub002/internal/database"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the webhook, checkout and creator API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if migrate {
				if err := database.MigrateUp(cfg.DB.URL()); err != nil {
					return err
				}
			}

			myApp := &app.App{}
			defer myApp.Close()
			if err := myApp.Initialize(cfg); err != nil {
				return err
			}

			if config.IsLocal() {
				if err := seedLocal(ctx, cfg); err != nil {
					logrus.Warnf("Failed to seed profiles: %v", err)
				}
			}

			err = myApp.Run(ctx)
			logrus.Info("driplypay API stopped")
			return err
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}
