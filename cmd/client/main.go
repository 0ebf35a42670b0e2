package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/calcms/internal/buildinfo"
	"github.com/dmitrijs2005/calcms/internal/client/cli"
	"github.com/dmitrijs2005/calcms/internal/client/config"
	"github.com/dmitrijs2005/calcms/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, closeFn, err := cli.Bootstrap(ctx, cfg, log, os.Stdin, os.Stdout)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeFn(); err != nil {
			log.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	app.Run(ctx)
}
