package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/kartiksirsilla09/peersphere-cli/internal/flagx"
	"github.com/kartiksirsilla09/peersphere-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL    string         `json:"server_base_url"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	CredentialDBPath string         `json:"credential_db_path"`
	RestoreMaxTries  uint           `json:"restore_max_tries"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. Absent file path means no JSON layer. Only fields present
// in the file override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.CredentialDBPath != "" {
		cfg.CredentialDBPath = jc.CredentialDBPath
	}
	if jc.RestoreMaxTries != 0 {
		cfg.RestoreMaxTries = jc.RestoreMaxTries
	}
}
