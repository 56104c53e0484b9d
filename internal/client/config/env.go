package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// envConfig is a DTO for the environment layer. Zero values mean "not set"
// and leave the current config value in place.
type envConfig struct {
	ServerBaseURL    string `env:"PEERSPHERE_ADDRESS"`
	RequestTimeout   string `env:"PEERSPHERE_REQUEST_TIMEOUT"`
	CredentialDBPath string `env:"PEERSPHERE_CREDENTIAL_DB"`
	RestoreMaxTries  uint   `env:"PEERSPHERE_RESTORE_MAX_TRIES"`
}

// parseEnv overlays cfg with values from the process environment.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.RequestTimeout != "" {
		d, err := time.ParseDuration(ec.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if ec.CredentialDBPath != "" {
		cfg.CredentialDBPath = ec.CredentialDBPath
	}
	if ec.RestoreMaxTries != 0 {
		cfg.RestoreMaxTries = ec.RestoreMaxTries
	}
}
