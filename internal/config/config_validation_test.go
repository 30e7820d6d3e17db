package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RejectsShortSignKey(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Auth.TokenSignKey = strings.Repeat("k", MinTokenSignKeyBytes-1)

	err := cfg.validate()
	require.ErrorIs(t, err, ErrTokenSignKeyTooShort)
}

func TestValidate_RejectsMissingSignKey(t *testing.T) {
	cfg := &StructuredConfig{}

	err := cfg.validate()
	require.ErrorIs(t, err, ErrTokenSignKeyTooShort)
}

func TestValidate_AcceptsMinimumSignKey(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Auth.TokenSignKey = strings.Repeat("k", MinTokenSignKeyBytes)

	require.NoError(t, cfg.validate())
}

func TestValidate_AppliesTokenDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Auth.TokenSignKey = strings.Repeat("k", 32)

	require.NoError(t, cfg.validate())

	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenAudience)
	assert.Equal(t, DefaultTokenDuration, cfg.Auth.TokenDuration)
}

func TestValidate_KeepsExplicitTokenSettings(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Auth.TokenSignKey = strings.Repeat("k", 32)
	cfg.Auth.TokenIssuer = "custom-issuer"
	cfg.Auth.TokenAudience = "custom-audience"
	cfg.Auth.TokenDuration = time.Hour

	require.NoError(t, cfg.validate())

	assert.Equal(t, "custom-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, "custom-audience", cfg.Auth.TokenAudience)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
}

func TestClientValidate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{
				HTTPAddress:    "http://localhost:8080",
				RequestTimeout: 15 * time.Second,
			},
			Storage: ClientStorage{DB: ClientDB{DSN: "cache.db"}},
			Workers: ClientWorkers{RefreshInterval: time.Minute},
		}
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, valid().validate())
	})

	t.Run("missing cache dsn", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.DB.DSN = ""
		require.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("missing server url", func(t *testing.T) {
		cfg := valid()
		cfg.Adapter.HTTPAddress = ""
		require.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
	})

	t.Run("zero refresh interval", func(t *testing.T) {
		cfg := valid()
		cfg.Workers.RefreshInterval = 0
		require.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
	})
}
