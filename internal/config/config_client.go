package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// ActorID identifies the acting user for elements created by this client.
	ActorID string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote element store.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientCache contains durable local cache settings for the client.
type ClientCache struct {
	// Path is the bbolt database file path.
	Path string
	// MaxBytes is the cache capacity budget.
	MaxBytes int64
	// KeepCanvases is how many most-recently-accessed canvases survive
	// eviction.
	KeepCanvases int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// FlushInterval defines how often the pending-write flush job runs.
	FlushInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Cache contains local cache settings.
	Cache ClientCache
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			ActorID: cfg.App.ActorID,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Cache: ClientCache{
			Path:         cfg.Storage.Cache.Path,
			MaxBytes:     cfg.Storage.Cache.MaxBytes,
			KeepCanvases: cfg.Storage.Cache.KeepCanvases,
		},
		Workers: ClientWorkers{FlushInterval: cfg.Workers.FlushInterval},
	}

	return clientCfg, clientCfg.validate()
}
