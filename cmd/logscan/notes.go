package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avatar-tools/logscan/internal/models"
	"github.com/avatar-tools/logscan/internal/services"
	"github.com/avatar-tools/logscan/internal/store"
	"github.com/avatar-tools/logscan/pkg/client"
)

func newNotesCmd(a *app) *cobra.Command {
	var text string

	c := &cobra.Command{
		Use:   "notes <avatar>",
		Short: "Show or replace the notes of an avatar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			set := cmd.Flags().Changed("set")

			notes, err := a.notes(ctx, args[0], text, set)
			if err != nil {
				return err
			}
			if set {
				fmt.Fprintln(cmd.OutOrStdout(), headerColor.Sprintf("notes saved for %s", args[0]))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), notes.Text)
			return nil
		},
	}

	c.Flags().StringVar(&text, "set", "", "Replace the notes with this text")
	return c
}

func (a *app) notes(ctx context.Context, avatar, text string, set bool) (*models.Notes, error) {
	if a.server != "" {
		c, err := client.NewClient(a.server, client.WithToken(a.token))
		if err != nil {
			return nil, err
		}
		if set {
			return nil, c.SetNotes(ctx, avatar, text)
		}
		return c.Notes(ctx, avatar)
	}

	var notes *models.Notes
	err := a.withStore(ctx, func(s *store.Store) error {
		srv := services.NewNotesService(s.Notes())
		var err error
		if set {
			notes, err = srv.Set(ctx, avatar, text)
		} else {
			notes, err = srv.Get(ctx, avatar)
		}
		return err
	})
	return notes, err
}
