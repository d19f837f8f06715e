package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avatar-tools/logscan/internal/config"
	"github.com/avatar-tools/logscan/internal/server/middlewares"
)

const apiPrefix = "/api/v1"

type Server struct {
	srv    *http.Server
	engine *gin.Engine
}

// NewServer builds the router. registerHandlerFn receives the /api/v1 group
// with logging, recovery and, when enabled, authentication applied.
func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	switch cfg.Server.ServerMode {
	case "prod":
		gin.SetMode(gin.ReleaseMode)
	case "dev":
		gin.SetMode(gin.DebugMode)
	default:
		return nil, fmt.Errorf("unknown server mode %q", cfg.Server.ServerMode)
	}

	engine := gin.New()
	engine.Use(
		middlewares.Logger(),
		ginzap.RecoveryWithZap(zap.L(), true),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	api := engine.Group(apiPrefix)
	if cfg.Auth.Enabled {
		if cfg.Auth.Secret == "" {
			return nil, errors.New("auth is enabled but no secret is set")
		}
		api.Use(middlewares.Authenticator([]byte(cfg.Auth.Secret), cfg.Auth.Issuer))
	}
	registerHandlerFn(api)

	return &Server{
		engine: engine,
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler: engine,
		},
	}, nil
}

// Start blocks until the server stops. It returns nil after Stop.
func (s *Server) Start(ctx context.Context) error {
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }
	zap.S().Named("server").Infow("starting http server", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts down the server, waiting for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	zap.S().Named("server").Infow("stopping http server")
	return s.srv.Shutdown(ctx)
}

func (s *Server) Handler() http.Handler {
	return s.engine
}
