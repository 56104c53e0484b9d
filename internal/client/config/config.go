// Package config holds runtime settings for the PeerSphere CLI and a layered
// loader: defaults, then JSON file, then environment, then command-line
// flags. Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the PeerSphere CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the collaborator's REST endpoint tree.
//   - RequestTimeout: bound on each whole HTTP request.
//   - CredentialDBPath: path of the local credential store.
//   - RestoreMaxTries: attempts for the startup session restore before
//     giving up on a transient failure.
type Config struct {
	ServerBaseURL    string
	RequestTimeout   time.Duration
	CredentialDBPath string
	RestoreMaxTries  uint
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 30 * time.Second
	c.CredentialDBPath = "peersphere.db"
	c.RestoreMaxTries = 4
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), environment variables, and
// command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
