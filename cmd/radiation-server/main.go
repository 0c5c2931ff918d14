// Command radiation-server serves the slope irradiance model over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zfacksandahler/valley-radiation-analysis/internal/log"
	"github.com/zfacksandahler/valley-radiation-analysis/internal/server"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Init(cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("server setup error: %v", err)
	}

	log.Infow("irradiance API listening", "addr", cfg.ListenAddr(), "cache_size", cfg.CacheSize)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
