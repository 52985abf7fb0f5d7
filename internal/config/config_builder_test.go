package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("source failed")

	cfg, err := b.build()

	require.Error(t, err)
	assert.Nil(t, cfg)
}

// Earlier sources win: mergo only fills fields the merged config has not set
// yet, and the env source is appended first.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{TokenSignKey: "from-env"},
			Storage: Storage{DB: DB{DSN: "postgres://env/tasks"}},
		},
		&StructuredConfig{
			App:     App{TokenSignKey: "from-json", TokenIssuer: "json-issuer"},
			Storage: Storage{DB: DB{DSN: "postgres://json/tasks"}},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://env/tasks", cfg.Storage.DB.DSN)
	// fields the first source left empty are filled from the next one
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
}

func TestBuild_RunsValidation(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/tasks"}},
	})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrMissingTokenSignKey)
}

func TestClientBuild_EarlierSourceWins(t *testing.T) {
	b := newClientConfigBuilder()
	b.configs = append(b.configs,
		&ClientConfig{Adapter: ClientAdapter{HTTPAddress: "localhost:8080"}},
		&ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: "other:9999"},
			Session: ClientSession{DurablePath: "/tmp/session.json"},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/tmp/session.json", cfg.Session.DurablePath)
}

func TestClientBuild_RunsValidation(t *testing.T) {
	_, err := newClientConfigBuilder().build()

	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
