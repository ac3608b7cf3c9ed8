package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/collabcanvas/collab-canvas/internal/adapter"
	"github.com/collabcanvas/collab-canvas/internal/cache"
	"github.com/collabcanvas/collab-canvas/internal/config"
	"github.com/collabcanvas/collab-canvas/internal/logger"
	"github.com/collabcanvas/collab-canvas/internal/service"
	"github.com/collabcanvas/collab-canvas/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("canvas-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	localCache, err := cache.NewBoltCache(cache.BoltConfig{
		Path:     cfg.Cache.Path,
		MaxBytes: cfg.Cache.MaxBytes,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening local cache")
	}
	defer localCache.Close()

	remote := adapter.NewHTTPRemoteStore(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	syncService := service.NewElementSyncService(localCache, remote, service.SyncConfig{
		KeepCanvases: cfg.Cache.KeepCanvases,
	}, log)
	defer func() { _ = syncService.Close() }()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	flushJob := service.NewPendingWriteJob(syncService, log)
	defer flushJob.Stop()

	background := workers.NewWorkers(&pendingFlushWorker{
		ctx:      ctx,
		job:      flushJob,
		interval: cfg.Workers.FlushInterval,
	})
	background.Run()

	log.Info().Str("actor_id", cfg.App.ActorID).Msg("canvas client started")

	<-ctx.Done()
	log.Info().Msg("canvas client shutting down")
}

// pendingFlushWorker adapts the pending-write flush job to the Worker
// contract used by the composition root.
type pendingFlushWorker struct {
	ctx      context.Context
	job      service.PendingWriteJob
	interval time.Duration
}

func (w *pendingFlushWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
