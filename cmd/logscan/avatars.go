package main

import (
	"github.com/spf13/cobra"
)

func newAvatarsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "avatars",
		Short: "List the avatars with chat logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, release, err := a.source(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			avatars, err := src.Avatars(cmd.Context())
			if err != nil {
				return err
			}
			renderList(cmd.OutOrStdout(), "Avatar", avatars)
			return nil
		},
	}
}
