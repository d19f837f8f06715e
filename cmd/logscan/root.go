package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/avatar-tools/logscan/internal/config"
	"github.com/avatar-tools/logscan/internal/models"
	"github.com/avatar-tools/logscan/internal/services"
	"github.com/avatar-tools/logscan/internal/store"
	"github.com/avatar-tools/logscan/pkg/client"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

// app carries the state shared by every command.
type app struct {
	v      *viper.Viper
	cfg    *config.Configuration
	server string
	token  string
}

// source is where commands read chat log data from: the local folder or a
// running server.
type source interface {
	Avatars(ctx context.Context) ([]string, error)
	Timestamps(ctx context.Context, avatar string) ([]int64, error)
	Stats(ctx context.Context, avatar string, ts int64) (*models.Stats, error)
	Search(ctx context.Context, avatar string, search models.Search) (*models.SearchResult, error)
}

type localSource struct {
	*services.LogService
}

func (l localSource) Avatars(context.Context) ([]string, error) {
	return l.LogService.Avatars()
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "logscan",
		Short: "Shroud of the Avatar chat log scanner",
		Long: strings.TrimSpace(`
logscan reads Shroud of the Avatar chat logs. It lists the /stats dumps of
each avatar, shows and filters them, computes effective resistances, searches
the logs and exports the stats history to a spreadsheet.

Commands read the chat log folder directly, or a running "logscan serve"
instance when --server is set.`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(a.v, configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return initLogging(cfg.LogLevel, cfg.LogFormat)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}

	defaults, err := config.NewConfigurationWithDefaults()
	if err != nil {
		panic(err)
	}
	if err := config.Bind(cmd.PersistentFlags(), a.v, defaults); err != nil {
		panic(err)
	}
	cmd.PersistentFlags().StringVar(&a.server, "server", "", "Read from a running logscan server instead of the log folder")
	cmd.PersistentFlags().StringVar(&a.token, "token", "", "Bearer token for --server")
	cmd.Version = version

	cmd.AddCommand(
		newServeCmd(a),
		newAvatarsCmd(a),
		newDatesCmd(a),
		newStatsCmd(a),
		newSearchCmd(a),
		newExportCmd(a),
		newNotesCmd(a),
		newTokenCmd(a),
		newPortalsCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "logscan version: %s\n", version)
		},
	}
}

func initLogging(level, format string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var zc zap.Config
	switch format {
	case "json":
		zc = zap.NewProductionConfig()
	default:
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = lvl
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// source returns the data source selected by the flags. The returned func
// releases it.
func (a *app) source(ctx context.Context) (source, func(), error) {
	if a.server != "" {
		c, err := client.NewClient(a.server, client.WithToken(a.token))
		if err != nil {
			return nil, nil, err
		}
		return c, func() {}, nil
	}

	logs, err := a.localLogs(ctx)
	if err != nil {
		return nil, nil, err
	}
	return localSource{logs}, logs.Close, nil
}

// localLogs opens the configured folder, falling back to the folder saved by
// the server.
func (a *app) localLogs(ctx context.Context) (*services.LogService, error) {
	folder := a.cfg.Logs.Folder
	if folder == "" {
		saved, err := a.savedSettings(ctx)
		if err != nil {
			return nil, err
		}
		folder = saved.LogFolder
	}

	logs := services.NewLogService(nil, a.cfg.Logs.Workers)
	if err := logs.SetFolder(ctx, folder); err != nil {
		return nil, err
	}
	return logs, nil
}

func (a *app) savedSettings(ctx context.Context) (*models.Settings, error) {
	var settings *models.Settings
	err := a.withStore(ctx, func(s *store.Store) error {
		var err error
		settings, err = s.Settings().Get(ctx)
		return err
	})
	if srvErrors.IsResourceNotFoundError(err) {
		return nil, srvErrors.NewInvalidArgumentError("no log folder selected, use --log-folder")
	}
	return settings, err
}

// withStore opens and migrates the database for the duration of fn.
func (a *app) withStore(ctx context.Context, fn func(*store.Store) error) error {
	db, err := store.NewDB(a.cfg.Store.Path)
	if err != nil {
		return err
	}
	s := store.NewStore(db)
	defer s.Close()

	if err := s.Migrate(ctx); err != nil {
		return err
	}
	return fn(s)
}
