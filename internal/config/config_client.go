package config

import (
	"time"
)

// Client-side defaults applied by validation when a source left a field unset.
const (
	DefaultAdapterTimeout  = 15 * time.Second
	DefaultRefreshInterval = time.Minute
)

// ClientConfig is the top-level configuration container for the terminal
// client. It is assembled the same way as the server configuration:
// environment, then flags, then an optional JSON file, merged with mergo.
type ClientConfig struct {
	// Adapter holds the settings of the HTTP connection to the server.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Storage holds the local task cache settings.
	Storage ClientStorage `envPrefix:"STORAGE_"`

	// Session holds the session persistence settings.
	Session ClientSession `envPrefix:"SESSION_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// ClientAdapter holds the settings of the outbound HTTP connection to the
// go-task-keeper server.
type ClientAdapter struct {
	// HTTPAddress is the base address of the server, host:port or a full URL.
	// Required — the client refuses to start without it.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientStorage holds configuration of the local SQLite task cache.
type ClientStorage struct {
	// DB holds the SQLite connection settings for the local cache.
	DB ClientDB `envPrefix:"DB_"`
}

// ClientDB holds the SQLite file path used for the local task cache.
type ClientDB struct {
	// DSN is the path to the SQLite database file. Created on first use.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// ClientSession holds configuration of the dual-store session persistence.
type ClientSession struct {
	// DurablePath is the file path of the durable session store — the one
	// that survives client restarts when "remember me" is chosen at login.
	// The ephemeral store is always in-memory and needs no configuration.
	// Env: SESSION_DURABLE_PATH
	DurablePath string `env:"DURABLE_PATH"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often the cache refresh worker re-fetches the
	// task list from the server while a session is active (e.g. "1m").
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetClientConfig loads, merges, and validates the client configuration.
// Source priority mirrors [GetStructuredConfig].
func GetClientConfig() (*ClientConfig, error) {
	return newClientConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
