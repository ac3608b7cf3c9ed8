package config

import (
	"fmt"
	"time"
)

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	HTTPAddress string
	// RequestTimeout is the maximum duration allowed for an inbound request.
	RequestTimeout time.Duration
	// DB holds the relational database connection settings.
	DB DB
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		DB:             cfg.Storage.DB,
	}

	return serverCfg, serverCfg.validate()
}
