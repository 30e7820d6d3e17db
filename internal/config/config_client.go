package config

import (
	"time"
)

// Defaults applied to the client configuration when a field was not supplied
// by any source.
const (
	// DefaultServerURL is the base URL of the quicknotes server.
	DefaultServerURL = "http://localhost:8080"

	// DefaultRequestTimeout bounds a single outbound client request.
	DefaultRequestTimeout = 15 * time.Second

	// DefaultCachePath is the SQLite file holding the offline note cache.
	DefaultCachePath = "quicknotes-cache.db"

	// DefaultRefreshInterval is how often the background worker re-pulls
	// the note list while a session is active.
	DefaultRefreshInterval = time.Minute
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the quicknotes server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local cache database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the offline note cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the note refresh worker runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged configuration sources.
//
// The client shares the env/flags/JSON pipeline with the server but skips
// server-side validation: it holds no signing key. Missing fields fall back
// to client defaults before validation.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		merge()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = DefaultServerURL
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = DefaultCachePath
	}
	if clientCfg.Workers.RefreshInterval == 0 {
		clientCfg.Workers.RefreshInterval = DefaultRefreshInterval
	}

	return clientCfg, clientCfg.validate()
}
