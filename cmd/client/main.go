package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/MinhAlfred/orchidstore/internal/client/cli"
	"github.com/MinhAlfred/orchidstore/internal/client/config"
	"github.com/MinhAlfred/orchidstore/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewDefault(cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
