package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/avatar-tools/logscan/internal/models"
)

func newPortalsCmd() *cobra.Command {
	var at int64

	c := &cobra.Command{
		Use:   "portals",
		Short: "Show the lunar rift and Lost Vale timers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if at != 0 {
				now = time.Unix(at, 0)
			}
			renderPortals(cmd.OutOrStdout(), models.NextRifts(now), models.LostVale(now))
			return nil
		},
	}

	c.Flags().Int64Var(&at, "at", 0, "UNIX timestamp to compute the timers for (default now)")
	return c
}
