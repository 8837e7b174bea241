package config

import (
	"flag"
	"os"

	"github.com/epavlovs/auth-service/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-s string   storage kind backing the authenticator ("inmemory")
//
// os.Args is filtered to only the flags handled here, so the config-file
// flags parsed elsewhere do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.Storage, "s", config.Storage, "storage kind")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
