package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	content := `{
		"server_base_url": "http://json.example.org/api",
		"request_timeout": "12s",
		"credential_db_path": "json.db",
		"restore_max_tries": 2
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://json.example.org/api", c.ServerBaseURL)
	assert.Equal(t, 12*time.Second, c.RequestTimeout)
	assert.Equal(t, "json.db", c.CredentialDBPath)
	assert.Equal(t, uint(2), c.RestoreMaxTries)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://localhost:5000/api", c.ServerBaseURL)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_base_url": "http://only.example.org/api"}`), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://only.example.org/api", c.ServerBaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "peersphere.db", c.CredentialDBPath)
}
