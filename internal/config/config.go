package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/avatar-tools/logscan/internal/util"
)

const EnvPrefix = "LOGSCAN"

var (
	serverModes = []string{"dev", "prod"}
	logFormats  = []string{"console", "json"}
)

type Configuration struct {
	Server    Server         `mapstructure:"server"`
	Logs      Logs           `mapstructure:"logs"`
	Store     Store          `mapstructure:"store"`
	Auth      Authentication `mapstructure:"auth"`
	LogFormat string         `mapstructure:"log-format" default:"console"`
	LogLevel  string         `mapstructure:"log-level" default:"info"`
}

type Server struct {
	ServerMode      string        `mapstructure:"mode" default:"dev"`
	HTTPPort        int           `mapstructure:"http-port" default:"8000"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout" default:"10s"`
}

type Logs struct {
	Folder  string `mapstructure:"folder"`
	Avatar  string `mapstructure:"avatar"`
	Workers int    `mapstructure:"workers" default:"0"`
}

type Store struct {
	Path string `mapstructure:"path" default:"logscan.duckdb"`
}

type Authentication struct {
	Enabled bool   `mapstructure:"enabled" default:"false"`
	Secret  string `mapstructure:"secret"`
	Issuer  string `mapstructure:"issuer" default:"logscan"`
}

// NewConfigurationWithDefaults returns a configuration with every default
// applied.
func NewConfigurationWithDefaults() (*Configuration, error) {
	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to set configuration defaults: %w", err)
	}
	return cfg, nil
}

// Bind registers one flag per configuration key on fs, using the values of
// cfg as flag defaults, and binds each flag to its key in v. Environment
// variables named LOGSCAN_<KEY> are honored for every bound key.
func Bind(fs *pflag.FlagSet, v *viper.Viper, cfg *Configuration) error {
	fs.String("config", "", "Path to a configuration file (yaml, json or toml)")

	fs.String("mode", cfg.Server.ServerMode, "Server mode: dev or prod")
	fs.Int("http-port", cfg.Server.HTTPPort, "HTTP server listen port")
	fs.Duration("shutdown-timeout", cfg.Server.ShutdownTimeout, "Graceful shutdown timeout")
	fs.String("log-folder", cfg.Logs.Folder, "Chat log folder")
	fs.String("avatar", cfg.Logs.Avatar, "Selected avatar")
	fs.Int("workers", cfg.Logs.Workers, "Number of log scanning workers (0 = max(NumCPU, 2))")
	fs.String("db-path", cfg.Store.Path, "DuckDB database path (:memory: for in-memory)")
	fs.Bool("auth-enabled", cfg.Auth.Enabled, "Require a HS256 bearer token on API requests")
	fs.String("auth-secret", cfg.Auth.Secret, "HS256 signing secret")
	fs.String("auth-issuer", cfg.Auth.Issuer, "Expected token issuer")
	fs.String("log-format", cfg.LogFormat, "Log format: console or json")
	fs.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	keys := map[string]string{
		"server.mode":             "mode",
		"server.http-port":        "http-port",
		"server.shutdown-timeout": "shutdown-timeout",
		"logs.folder":             "log-folder",
		"logs.avatar":             "avatar",
		"logs.workers":            "workers",
		"store.path":              "db-path",
		"auth.enabled":            "auth-enabled",
		"auth.secret":             "auth-secret",
		"auth.issuer":             "auth-issuer",
		"log-format":              "log-format",
		"log-level":               "log-level",
	}
	for key, flag := range keys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", flag, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return nil
}

// Load reads the optional config file and unmarshals v into a configuration
// seeded with defaults. Precedence is flags, then environment, then file,
// then defaults.
func Load(v *viper.Viper, configFile string) (*Configuration, error) {
	cfg, err := NewConfigurationWithDefaults()
	if err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Configuration) Validate() error {
	var errs []error
	if !util.Contains(serverModes, c.Server.ServerMode) {
		errs = append(errs, fmt.Errorf("invalid server mode %q", c.Server.ServerMode))
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid http port %d", c.Server.HTTPPort))
	}
	if !util.Contains(logFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("invalid log format %q", c.LogFormat))
	}
	if c.Logs.Workers < 0 {
		errs = append(errs, fmt.Errorf("invalid worker count %d", c.Logs.Workers))
	}
	if c.Auth.Enabled && c.Auth.Secret == "" {
		errs = append(errs, errors.New("auth is enabled but no secret is set"))
	}
	return errors.Join(errs...)
}

// DebugMap returns the configuration as a map suitable for logging. Secrets
// are masked.
func (c *Configuration) DebugMap() map[string]any {
	secret := ""
	if c.Auth.Secret != "" {
		secret = "(sensitive)"
	}
	return map[string]any{
		"server.mode":             c.Server.ServerMode,
		"server.http-port":        c.Server.HTTPPort,
		"server.shutdown-timeout": c.Server.ShutdownTimeout.String(),
		"logs.folder":             c.Logs.Folder,
		"logs.avatar":             c.Logs.Avatar,
		"logs.workers":            c.Logs.Workers,
		"store.path":              c.Store.Path,
		"auth.enabled":            c.Auth.Enabled,
		"auth.secret":             secret,
		"auth.issuer":             c.Auth.Issuer,
		"log-format":              c.LogFormat,
		"log-level":               c.LogLevel,
	}
}
