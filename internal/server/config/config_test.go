package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, StorageInMemory, c.Storage)
}

func TestLoadConfig_UsesDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"test"}

	c := LoadConfig()

	require.NotNil(t, c)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, StorageInMemory, c.Storage)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"test", "-a", ":9090"}

	c := LoadConfig()

	assert.Equal(t, ":9090", c.EndpointAddrGRPC)
	assert.Equal(t, StorageInMemory, c.Storage)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"test"}
	t.Setenv("AUTH_ENDPOINT_GRPC", ":7070")

	c := LoadConfig()

	assert.Equal(t, ":7070", c.EndpointAddrGRPC)
}

func TestLoadConfig_JSONOverlay(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	path := filepath.Join(t.TempDir(), "conf.json")
	data, err := json.Marshal(JSONConfig{EndpointAddrGRPC: ":6060"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	os.Args = []string{"test", "-c", path}

	c := LoadConfig()

	assert.Equal(t, ":6060", c.EndpointAddrGRPC)
	// absent JSON fields keep their defaults
	assert.Equal(t, StorageInMemory, c.Storage)
}

func TestLoadConfig_FlagsWinOverJSON(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	path := filepath.Join(t.TempDir(), "conf.json")
	data, err := json.Marshal(JSONConfig{EndpointAddrGRPC: ":6060"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	os.Args = []string{"test", "-c", path, "-a", ":9090"}

	c := LoadConfig()

	assert.Equal(t, ":9090", c.EndpointAddrGRPC)
}
