// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	RedisURL string `envconfig:"redis_url" default:"redis://localhost:6379/0"`

	JWTSecret       string        `envconfig:"jwt_secret" required:"true"`
	SessionLifetime time.Duration `envconfig:"session_lifetime" default:"720h"`

	// MinRespondents gates organisational run results until enough
	// responses have been collected.
	MinRespondents int `envconfig:"min_respondents" default:"5"`

	ScoreCacheTTL        time.Duration `envconfig:"score_cache_ttl" default:"10m"`
	ScoreRefreshInterval time.Duration `envconfig:"score_refresh_interval" default:"10m"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
}
