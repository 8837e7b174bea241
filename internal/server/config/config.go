// Package config handles configuration for the server component, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

// Recognized storage kinds. InMemory is the only backend shipped today; the
// value exists so persistent backends can be added without touching the
// authenticator or façade code.
const (
	StorageInMemory = "inmemory"
)

// Config holds runtime settings for the authentication server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - Storage: which store implementations back the authenticator.
type Config struct {
	EndpointAddrGRPC string `env:"AUTH_ENDPOINT_GRPC"`
	Storage          string `env:"AUTH_STORAGE"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.Storage = StorageInMemory
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags, in
// that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
