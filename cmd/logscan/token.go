package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avatar-tools/logscan/internal/server/middlewares"
)

func newTokenCmd(a *app) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	c := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token for the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Auth.Secret == "" {
				return errors.New("no auth secret configured, use --auth-secret")
			}
			token, err := middlewares.NewToken([]byte(a.cfg.Auth.Secret), a.cfg.Auth.Issuer, subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	c.Flags().StringVar(&subject, "subject", "logscan-cli", "Token subject")
	c.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	return c
}
