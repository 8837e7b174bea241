package main

import (
	"context"
	"os"

	"github.com/epavlovs/auth-service/internal/client/cli"
	"github.com/epavlovs/auth-service/internal/client/config"
)

func main() {

	cfg := config.Load()
	app := cli.NewApp(cfg)

	if err := app.Run(context.Background()); err != nil {
		os.Exit(1)
	}

}
