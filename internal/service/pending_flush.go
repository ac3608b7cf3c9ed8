package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/collabcanvas/collab-canvas/internal/adapter"
	"github.com/collabcanvas/collab-canvas/models"
)

const (
	flushBackoffBase  = 500 * time.Millisecond
	flushMaxRetries   = 3
	flushBackoffLimit = 5 * time.Second
)

func (s *elementSyncService) FlushPending(ctx context.Context) error {
	log := s.logger

	pending, err := s.localCache.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("listing pending writes: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	log.Info().Int("count", len(pending)).Msg("flushing pending writes")

	var flushErr error
	for _, pw := range pending {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := s.flushOne(ctx, pw); err != nil {
			flushErr = errors.Join(flushErr, err)
		}
	}

	return flushErr
}

// flushOne replays a single staged write. Transient remote failures are
// retried with exponential backoff inside this call; a write that still
// fails is re-staged with its attempt counter bumped so it is picked up by
// the next flush cycle.
func (s *elementSyncService) flushOne(ctx context.Context, pw models.PendingWrite) error {
	log := s.logger

	unlock := s.canvasLocks.lock(pw.CanvasID)
	defer unlock()

	backoff := retry.WithMaxRetries(flushMaxRetries,
		retry.WithCappedDuration(flushBackoffLimit,
			retry.NewExponential(s.flushBackoff)))

	var confirmed models.Element
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var opErr error
		switch pw.Op {
		case models.PendingInsert:
			confirmed, opErr = s.remote.Insert(ctx, pw.Element)
		case models.PendingReplace:
			confirmed, opErr = s.remote.Replace(ctx, pw.ElementID, pw.Element)
			if errors.Is(opErr, adapter.ErrNotFound) {
				// The element only exists locally: it was created offline and
				// its staged insert was superseded by this replace. Create it.
				confirmed, opErr = s.remote.Insert(ctx, pw.Element)
			}
		case models.PendingDelete:
			opErr = s.remote.Delete(ctx, pw.ElementID)
		default:
			opErr = fmt.Errorf("unknown pending op %q", pw.Op)
		}

		if errors.Is(opErr, adapter.ErrUnavailable) {
			return retry.RetryableError(opErr)
		}
		return opErr
	})

	switch {
	case err == nil:
		if rmErr := s.localCache.RemovePending(ctx, pw.ElementID); rmErr != nil {
			return fmt.Errorf("removing flushed pending write %s: %w", pw.ElementID, rmErr)
		}
		if pw.Op != models.PendingDelete {
			if cacheErr := s.cacheUpsert(ctx, pw.CanvasID, confirmed); cacheErr != nil {
				log.Warn().Err(cacheErr).
					Str("element_id", pw.ElementID).
					Msg("failed to cache server-confirmed element after flush")
			}
		}
		s.touchCanvasAsync(pw.CanvasID)
		log.Debug().
			Str("element_id", pw.ElementID).
			Str("op", pw.Op).
			Msg("pending write flushed")
		return nil

	case errors.Is(err, adapter.ErrRejected), errors.Is(err, adapter.ErrNotFound):
		// permanent: the remote store will never accept this write
		log.Error().Err(err).
			Str("element_id", pw.ElementID).
			Str("op", pw.Op).
			Msg("pending write permanently rejected, dropping")
		if rmErr := s.localCache.RemovePending(ctx, pw.ElementID); rmErr != nil {
			return fmt.Errorf("removing rejected pending write %s: %w", pw.ElementID, rmErr)
		}
		return nil

	default:
		pw.Attempts++
		if putErr := s.localCache.PutPending(ctx, pw); putErr != nil {
			return fmt.Errorf("re-staging pending write %s: %w", pw.ElementID, putErr)
		}
		log.Warn().Err(err).
			Str("element_id", pw.ElementID).
			Str("op", pw.Op).
			Int("attempts", pw.Attempts).
			Msg("pending write still failing, will retry next cycle")
		return fmt.Errorf("flushing pending write %s: %w", pw.ElementID, err)
	}
}
