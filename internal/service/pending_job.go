package service

import (
	"context"
	"sync"
	"time"

	"github.com/collabcanvas/collab-canvas/internal/logger"
)

type pendingWriteJob struct {
	syncService ElementSyncService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPendingWriteJob creates a pendingWriteJob that calls
// syncService.FlushPending on a ticker. The job is idle until Start is
// called.
func NewPendingWriteJob(syncService ElementSyncService, log *logger.Logger) PendingWriteJob {
	return &pendingWriteJob{syncService: syncService, logger: log}
}

// Start implements PendingWriteJob. It stops any previously running job, then
// launches a background goroutine that flushes pending writes every interval.
// If interval is zero or negative it defaults to 30 seconds. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *pendingWriteJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.syncService.FlushPending(jobCtx); err != nil {
					j.logger.Debug().Err(err).Msg("pending write flush cycle incomplete")
				}
			}
		}
	}()
}

// Stop implements PendingWriteJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *pendingWriteJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
