package main

import (
	"github.com/spf13/cobra"

	"github.com/avatar-tools/logscan/internal/models"
)

func newSearchCmd(a *app) *cobra.Command {
	var regex bool

	c := &cobra.Command{
		Use:   "search <avatar> <term>",
		Short: "Search the chat logs of an avatar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			search, err := models.NewSearch(args[1], regex)
			if err != nil {
				return err
			}

			src, release, err := a.source(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			result, err := src.Search(cmd.Context(), args[0], search)
			if err != nil {
				return err
			}
			renderSearch(cmd.OutOrStdout(), search, result)
			return nil
		},
	}

	c.Flags().BoolVarP(&regex, "regex", "e", false, "Treat <term> as a regular expression")
	return c
}
