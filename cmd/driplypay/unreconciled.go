package main

import (
	"encoding/json"

	"github.com/Westerntf/driplypay-v2-sub002/internal/repository/posgrest"
	"github.com/spf13/cobra"
)

func unreconciledCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "unreconciled",
		Short: "List payment events that could not be attributed",
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

			events, err := posgrest.NewUnreconciledRepo(db).ListOpen(cmd.Context(), limit)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, e := range events {
				if err := enc.Encode(e); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "maximum events to list")
	return cmd
}
