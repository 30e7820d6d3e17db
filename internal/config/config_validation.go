package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, applying defaults for
// optional fields.
//
// The token signing key is the only hard requirement: a missing or short key
// makes every issued token forgeable and is treated as a startup-fatal
// misconfiguration rather than a runtime error.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.Auth.TokenSignKey) < MinTokenSignKeyBytes {
		return ErrTokenSignKeyTooShort
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.TokenAudience == "" {
		cfg.Auth.TokenAudience = DefaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
