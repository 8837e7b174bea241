package config

import (
	"encoding/json"
	"os"

	"github.com/epavlovs/auth-service/internal/flagx"
)

// JSONConfig is the DTO used only for reading JSON configuration files; its
// values are copied into the runtime Config after unmarshalling.
type JSONConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	Storage          string `json:"storage"`
}

// parseJSON loads configuration from the JSON file named by the -c/-config
// flags, if any. Absent fields keep their current values. A file that cannot
// be read or parsed is a startup failure.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JSONConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.Storage != "" {
		config.Storage = c.Storage
	}
}
