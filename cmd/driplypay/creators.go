package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"github.com/Westerntf/driplypay-v2-sub002/internal/repository/posgrest"
	"github.com/spf13/cobra"
)

func creatorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creators",
		Short: "Manage creator profiles",
	}
	cmd.AddCommand(creatorsCreateCmd())
	cmd.AddCommand(creatorsShowCmd())
	return cmd
}

func creatorsCreateCmd() *cobra.Command {
	var profile models.Profile

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a creator profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := cfg.DB.GormConnect()
			if err != nil {
				return err
			}
			defer closeDB(db)

			profile.Username = strings.ToLower(strings.TrimSpace(profile.Username))
			if err := posgrest.NewProfileRepo(db).Create(cmd.Context(), &profile); err != nil {
				return fmt.Errorf("creating profile: %w", err)
			}

			profiles, closeCache := profileCache(cfg, db)
			defer closeCache()
			_ = profiles.Invalidate(cmd.Context(), profile.Username)

			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", profile.Username, profile.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&profile.UserID, "user-id", "", "identity user id")
	cmd.Flags().StringVar(&profile.Username, "username", "", "public username")
	cmd.Flags().StringVar(&profile.DisplayName, "display-name", "", "display name")
	cmd.Flags().StringVar(&profile.Bio, "bio", "", "short bio")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func creatorsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [user-id]",
		Short: "Show a creator's earnings and tip count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := cfg.DB.GormConnect()
			if err != nil {
				return err
			}
			defer closeDB(db)

			profile, err := posgrest.NewProfileRepo(db).GetByUserID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			tips, err := posgrest.NewAnalyticsRepo(db).CountByUser(cmd.Context(), profile.UserID, models.EventTypeTipReceived)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]interface{}{
				"profile":       profile,
				"tips_received": tips,
			})
		},
	}
}
