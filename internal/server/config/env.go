package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays values from the environment (AUTH_ENDPOINT_GRPC,
// AUTH_STORAGE). Unset variables keep their current values.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
