// Package config loads the service configuration from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config is the full runtime configuration. Every knob comes from the
// environment; there is no config file.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	SolanaRPCEndpoint string `envconfig:"SOLANA_RPC_ENDPOINT" required:"true"`
	JupiterEndpoint   string `envconfig:"JUPITER_ENDPOINT" default:"https://quote-api.jup.ag/v6"`
	ExplorerBase      string `envconfig:"EXPLORER_BASE" default:"https://solscan.io"`

	PostgresDSN string `envconfig:"POSTGRES_DSN" required:"true"`

	RedisAddr     string `envconfig:"REDIS_ADDR" required:"true"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// TelemetryEnabled turns on the OTLP exporters. Logs still go to stdout
	// either way.
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"solvault"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
