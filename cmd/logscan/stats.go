package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avatar-tools/logscan/internal/util"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

type statsFlags struct {
	filter  string
	resists bool
}

func newStatsCmd(a *app) *cobra.Command {
	var flags statsFlags

	c := &cobra.Command{
		Use:   "stats <avatar> <date>",
		Short: "Show one /stats dump",
		Long: strings.TrimSpace(`
Show one /stats dump of an avatar. <date> is either "latest", a date as
printed by the dates command ("2024-05-01 @ 09:00:00") or a UNIX timestamp.

Examples:
  logscan stats Hero latest
  logscan stats Hero "2024-05-01 @ 09:00:00" --filter resist
  logscan stats Hero latest --resists
`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			src, release, err := a.source(ctx)
			if err != nil {
				return err
			}
			defer release()

			avatar := args[0]
			ts, err := resolveTimestamp(ctx, src, avatar, args[1])
			if err != nil {
				return err
			}

			stats, err := src.Stats(ctx, avatar, ts)
			if err != nil {
				return err
			}

			if flags.resists {
				renderResists(cmd.OutOrStdout(), stats)
				return nil
			}

			renderStats(cmd.OutOrStdout(), stats, stats.Filter(flags.filter))
			return nil
		},
	}

	c.Flags().StringVarP(&flags.filter, "filter", "f", "", "Show numeric stats whose name contains this text (any case)")
	c.Flags().BoolVarP(&flags.resists, "resists", "r", false, "Show effective resistances instead of raw stats")
	return c
}

func resolveTimestamp(ctx context.Context, src source, avatar, arg string) (int64, error) {
	if arg == "latest" {
		timestamps, err := src.Timestamps(ctx, avatar)
		if err != nil {
			return 0, err
		}
		if len(timestamps) == 0 {
			return 0, srvErrors.NewResourceNotFoundError("stats for avatar", avatar)
		}
		return timestamps[0], nil
	}
	if ts, ok := util.ParseViewDate(arg); ok {
		return ts, nil
	}
	if ts, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return ts, nil
	}
	return 0, srvErrors.NewInvalidArgumentError("invalid date %q", arg)
}
