package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/avatar-tools/logscan/api/v1"
	"github.com/avatar-tools/logscan/internal/handlers"
	"github.com/avatar-tools/logscan/internal/server"
	"github.com/avatar-tools/logscan/internal/services"
	"github.com/avatar-tools/logscan/internal/store"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	log := zap.S().Named("serve")
	log.Infow("configuration loaded", "config", a.cfg.DebugMap())

	db, err := store.NewDB(a.cfg.Store.Path)
	if err != nil {
		return err
	}
	s := store.NewStore(db)
	defer s.Close()

	if err := s.Migrate(ctx); err != nil {
		return err
	}

	logs := services.NewLogService(s.Settings(), a.cfg.Logs.Workers)
	defer logs.Close()

	if err := logs.Init(ctx, a.cfg.Logs.Folder); err != nil {
		return err
	}
	if a.cfg.Logs.Avatar != "" {
		if err := logs.SetAvatar(ctx, a.cfg.Logs.Avatar); err != nil {
			return err
		}
	}

	h := handlers.New(logs, services.NewNotesService(s.Notes()), services.NewExportService(logs))
	srv, err := server.NewServer(a.cfg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, h)
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return <-errCh
}
