package main

import (
	"github.com/spf13/cobra"
)

func newDatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dates <avatar>",
		Short: "List the /stats dumps of an avatar, most recent first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, release, err := a.source(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			timestamps, err := src.Timestamps(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderTimestamps(cmd.OutOrStdout(), args[0], timestamps)
			return nil
		},
	}
}
