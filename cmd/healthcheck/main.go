package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/epavlovs/auth-service/internal/client/client"
	"github.com/epavlovs/auth-service/internal/client/config"
	"github.com/epavlovs/auth-service/internal/healthcheck"
	"github.com/epavlovs/auth-service/internal/logging"
)

func main() {

	cfg := config.LoadWithFlags()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	c, err := client.NewGRPCClient(cfg.ServerEndpointAddr)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	runner := healthcheck.NewRunner(c, logger, cfg.CheckInterval)
	if err := runner.Run(ctx); err != nil {
		logger.Error(ctx, err.Error())
	}

}
