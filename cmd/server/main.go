package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"nutrisearch/internal/catalog"
	"nutrisearch/internal/config"
	"nutrisearch/internal/jobs"
	"nutrisearch/internal/metrics"
	"nutrisearch/internal/server"
	"nutrisearch/internal/widget"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	landing, err := config.LoadLandingConfig(cfg.LandingFile)
	if err != nil {
		log.Fatalf("Failed to load landing config: %v", err)
	}

	table := catalog.Default()
	log.Printf("Loaded %d foods", table.Len())

	// One lookup widget per browser session
	registry := widget.NewRegistry(table, widget.Options{
		Delay:     cfg.LookupDelay,
		OnOutcome: metrics.RecordLookup,
	})
	metrics.Init(func() float64 { return float64(registry.Len()) })

	srv, err := server.New(cfg, table, registry, landing)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}
	srv.RegisterRoutes()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Start()
	})

	g.Go(func() error {
		jobs.NewWidgetSweeper(registry, cfg.SweepInterval, cfg.WidgetIdleTTL).Start(gctx)
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")
		err := srv.Shutdown()
		registry.Close()
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
