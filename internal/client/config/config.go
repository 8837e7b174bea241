// Package config handles configuration for the client binaries (CLI and
// health-check driver): defaults, environment variables, and flags.
package config

import (
	"flag"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/epavlovs/auth-service/internal/flagx"
)

// Config holds settings shared by the CLI client and the health-check driver.
//
// Fields:
//   - ServerEndpointAddr: address of the authentication gRPC endpoint.
//   - CheckInterval: pause between health-check rounds.
type Config struct {
	ServerEndpointAddr string        `env:"AUTH_SERVICE_ADDR"`
	CheckInterval      time.Duration `env:"AUTH_CHECK_INTERVAL"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "localhost:50051"
	c.CheckInterval = 1 * time.Second
}

func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     auth service address (e.g., "localhost:50051")
//	-i duration   health-check interval (e.g., "1s")
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "auth service address")
	fs.DurationVar(&config.CheckInterval, "i", config.CheckInterval, "health-check interval")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

// Load builds a Config from defaults and the environment. The CLI client
// uses this variant because its command-line surface belongs to cobra.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	return cfg
}

// LoadWithFlags additionally overlays command-line flags. Used by the
// health-check driver, which has no subcommands of its own.
func LoadWithFlags() *Config {
	cfg := Load()
	parseFlags(cfg)
	return cfg
}
