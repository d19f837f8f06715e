// Package config defines the configuration structure for logscan.
//
// Configuration is organized into sections (Server, Logs, Store, Auth) plus
// the logging settings. Defaults come from `default` struct tags applied by
// creasty/defaults; values are layered on top by viper.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Logs           - Chat log folder and scanning
//	├── Store          - DuckDB location
//	├── Auth           - API authentication
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬──────────────────┬──────────────────────────────┐
//	│ Field            │ Default │ Flag             │ Description                  │
//	├──────────────────┼─────────┼──────────────────┼──────────────────────────────┤
//	│ ServerMode       │ "dev"   │ --mode           │ "dev" or "prod"              │
//	│ HTTPPort         │ 8000    │ --http-port      │ HTTP server listen port      │
//	│ ShutdownTimeout  │ 10s     │ --shutdown-...   │ Graceful shutdown timeout    │
//	└──────────────────┴─────────┴──────────────────┴──────────────────────────────┘
//
// # Logs Configuration
//
//	┌──────────┬─────────┬──────────────┬─────────────────────────────────────────┐
//	│ Field    │ Default │ Flag         │ Description                             │
//	├──────────┼─────────┼──────────────┼─────────────────────────────────────────┤
//	│ Folder   │ ""      │ --log-folder │ Chat log folder, persisted one if empty │
//	│ Avatar   │ ""      │ --avatar     │ Selected avatar                         │
//	│ Workers  │ 0       │ --workers    │ Pool size, 0 means max(NumCPU, 2)       │
//	└──────────┴─────────┴──────────────┴─────────────────────────────────────────┘
//
// # Store and Auth Configuration
//
//	┌──────────────┬──────────────────┬────────────────┬──────────────────────────┐
//	│ Field        │ Default          │ Flag           │ Description              │
//	├──────────────┼──────────────────┼────────────────┼──────────────────────────┤
//	│ Store.Path   │ "logscan.duckdb" │ --db-path      │ DuckDB file or :memory:  │
//	│ Auth.Enabled │ false            │ --auth-enabled │ Require bearer tokens    │
//	│ Auth.Secret  │ ""               │ --auth-secret  │ HS256 key (required)     │
//	│ Auth.Issuer  │ "logscan"        │ --auth-issuer  │ Expected iss claim       │
//	└──────────────┴──────────────────┴────────────────┴──────────────────────────┘
//
// # Sources
//
// Precedence, highest first:
//
//	flags  →  LOGSCAN_* environment  →  --config file  →  default tags
//
// Environment variable names are the viper key upper-cased with dots and
// dashes replaced by underscores: logs.folder becomes LOGSCAN_LOGS_FOLDER.
//
// # Usage Example
//
//	cfg, _ := config.NewConfigurationWithDefaults()
//	v := viper.New()
//	_ = config.Bind(cmd.Flags(), v, cfg)
//	// after flag parsing
//	cfg, err := config.Load(v, configFile)
//
// # Debug Logging
//
// DebugMap returns the effective values for structured logging with the
// auth secret masked:
//
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
