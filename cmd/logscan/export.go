package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avatar-tools/logscan/internal/services"
	"github.com/avatar-tools/logscan/pkg/client"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <avatar> <file.xlsx>",
		Short: "Export the stats history of an avatar to a spreadsheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var buf bytes.Buffer
			if a.server != "" {
				c, err := client.NewClient(a.server, client.WithToken(a.token))
				if err != nil {
					return err
				}
				if err := c.Export(ctx, args[0], &buf); err != nil {
					return err
				}
			} else {
				logs, err := a.localLogs(ctx)
				if err != nil {
					return err
				}
				defer logs.Close()

				if err := services.NewExportService(logs).Export(ctx, args[0], &buf); err != nil {
					return err
				}
			}

			if err := os.WriteFile(args[1], buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), headerColor.Sprintf("exported %s to %s", args[0], args[1]))
			return nil
		},
	}
}
