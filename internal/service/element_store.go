package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/collabcanvas/collab-canvas/internal/adapter"
	"github.com/collabcanvas/collab-canvas/internal/cache"
	"github.com/collabcanvas/collab-canvas/internal/logger"
	"github.com/collabcanvas/collab-canvas/internal/utils"
	"github.com/collabcanvas/collab-canvas/models"
)

// defaultKeepCanvases is how many most-recently-accessed canvases survive a
// capacity eviction cycle.
const defaultKeepCanvases = 5

// touchTimeout bounds the fire-and-forget canvas timestamp call.
const touchTimeout = 5 * time.Second

// SyncConfig tunes the element sync store.
type SyncConfig struct {
	// KeepCanvases is how many most-recently-accessed canvases are exempt
	// from cache eviction. Zero or negative falls back to the default of 5.
	KeepCanvases int
}

type elementSyncService struct {
	localCache cache.ElementCache
	remote     adapter.RemoteElementStore
	ids        *utils.UUIDGenerator
	logger     *logger.Logger

	keepCanvases int
	now          func() time.Time
	flushBackoff time.Duration

	canvasLocks keyedMutex
	touchWG     sync.WaitGroup
}

// NewElementSyncService wires the sync store to its two collaborators: the
// remote element store and the durable local cache.
func NewElementSyncService(localCache cache.ElementCache, remote adapter.RemoteElementStore, cfg SyncConfig, log *logger.Logger) ElementSyncService {
	keep := cfg.KeepCanvases
	if keep <= 0 {
		keep = defaultKeepCanvases
	}

	return &elementSyncService{
		localCache:   localCache,
		remote:       remote,
		ids:          utils.NewUUIDGenerator(),
		logger:       log,
		keepCanvases: keep,
		now:          func() time.Time { return time.Now().UTC() },
		flushBackoff: flushBackoffBase,
	}
}

func (s *elementSyncService) GetElements(ctx context.Context, canvasID string) ([]models.Element, error) {
	log := s.logger

	unlock := s.canvasLocks.lock(canvasID)
	defer unlock()

	elements, err := s.remote.List(ctx, canvasID)
	if err != nil || len(elements) == 0 {
		// An empty remote result is deliberately treated like a failure: the
		// cache may still hold the canvas from a previous session.
		if err != nil {
			log.Warn().Err(err).
				Str("canvas_id", canvasID).
				Msg("remote list failed, falling back to local cache")
		}

		cached, cacheErr := s.localCache.ReadAll(ctx, canvasID)
		if cacheErr != nil {
			log.Warn().Err(cacheErr).
				Str("canvas_id", canvasID).
				Msg("local cache read failed, returning empty canvas")
			cached = nil
		}

		s.recordAccess(ctx, canvasID)
		return cached, nil
	}

	if writeErr := s.cacheWriteAll(ctx, canvasID, elements); writeErr != nil {
		log.Warn().Err(writeErr).
			Str("canvas_id", canvasID).
			Msg("failed to mirror canvas into local cache")
	}

	s.recordAccess(ctx, canvasID)
	return elements, nil
}

func (s *elementSyncService) AddElement(ctx context.Context, canvasID, elementType string, data map[string]any, actorID string) (models.Element, error) {
	log := s.logger
	now := s.now()
	stamp := now.Format(time.RFC3339Nano)

	attrs := make(map[string]any, len(data)+4)
	for k, v := range data {
		attrs[k] = v
	}
	attrs[models.AttrVersion] = int64(1)
	attrs[models.AttrCreatedAt] = stamp
	attrs[models.AttrLastEditTime] = stamp
	attrs[models.AttrCreatedBy] = actorID

	element := models.Element{
		ID:          s.ids.Generate(),
		CanvasID:    canvasID,
		ElementType: elementType,
		Data:        attrs,
		UserID:      actorID,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}

	unlock := s.canvasLocks.lock(canvasID)
	defer unlock()

	// local first: the element must survive an immediate remote failure
	if err := s.cacheUpsert(ctx, canvasID, element); err != nil {
		log.Warn().Err(err).
			Str("canvas_id", canvasID).
			Str("element_id", element.ID).
			Msg("failed to stage new element in local cache")
	}

	confirmed, err := s.remote.Insert(ctx, element)
	if err != nil {
		if errors.Is(err, adapter.ErrRejected) {
			log.Error().Err(err).
				Str("element_id", element.ID).
				Msg("remote store rejected new element, keeping local copy without retry")
			return element, nil
		}

		log.Warn().Err(err).
			Str("element_id", element.ID).
			Msg("remote insert failed, queueing pending write")
		s.enqueuePending(ctx, models.PendingInsert, element)
		return element, nil
	}

	if err := s.cacheUpsert(ctx, canvasID, confirmed); err != nil {
		log.Warn().Err(err).
			Str("element_id", confirmed.ID).
			Msg("failed to cache server-confirmed element")
	}
	s.touchCanvasAsync(confirmed.CanvasID)

	return confirmed, nil
}

func (s *elementSyncService) UpdateElement(ctx context.Context, elementID string, patch models.ElementPatch, baseVersion int64) (models.UpdateResult, error) {
	log := s.logger

	current, err := s.remote.Get(ctx, elementID)
	if err != nil {
		cached, cacheErr := s.localCache.FindOne(ctx, elementID)
		if cacheErr != nil {
			return models.UpdateResult{}, fmt.Errorf("%w: %s", ErrElementNotFound, elementID)
		}
		log.Debug().Err(err).
			Str("element_id", elementID).
			Msg("remote get failed, updating against cached copy")
		current = cached
	}

	unlock := s.canvasLocks.lock(current.CanvasID)
	defer unlock()

	currentVersion := current.Version()
	if baseVersion != 0 && baseVersion != currentVersion {
		return models.UpdateResult{
			Element:  current,
			Conflict: true,
			Message: fmt.Sprintf(
				"update was based on version %d but the element is at version %d; re-apply your changes against the returned element",
				baseVersion, currentVersion),
		}, nil
	}

	now := s.now()
	merged := current
	merged.Data = current.CloneData()
	for k, v := range patch.Data {
		merged.Data[k] = v
	}
	if patch.ElementType != nil {
		merged.ElementType = *patch.ElementType
	}

	// reserved attributes win over anything the patch carried
	appliedBase := baseVersion
	if appliedBase == 0 {
		appliedBase = currentVersion
	}
	merged.Data[models.AttrVersion] = currentVersion + 1
	merged.Data[models.AttrLastEditTime] = now.Format(time.RFC3339Nano)
	merged.Data[models.AttrBaseVersion] = appliedBase
	merged.UpdatedAt = &now

	if err := s.cacheUpsert(ctx, merged.CanvasID, merged); err != nil {
		log.Warn().Err(err).
			Str("element_id", merged.ID).
			Msg("failed to stage merged element in local cache")
	}

	confirmed, err := s.remote.Replace(ctx, elementID, merged)
	if err != nil {
		if errors.Is(err, adapter.ErrRejected) {
			log.Error().Err(err).
				Str("element_id", elementID).
				Msg("remote store rejected update, keeping local copy without retry")
			return models.UpdateResult{Element: merged}, nil
		}

		log.Warn().Err(err).
			Str("element_id", elementID).
			Msg("remote replace failed, queueing pending write")
		s.enqueuePending(ctx, models.PendingReplace, merged)
		return models.UpdateResult{Element: merged}, nil
	}

	if err := s.cacheUpsert(ctx, confirmed.CanvasID, confirmed); err != nil {
		log.Warn().Err(err).
			Str("element_id", confirmed.ID).
			Msg("failed to cache server-confirmed element")
	}
	s.touchCanvasAsync(confirmed.CanvasID)

	return models.UpdateResult{Element: confirmed}, nil
}

func (s *elementSyncService) DeleteElement(ctx context.Context, elementID string) error {
	log := s.logger

	element, err := s.remote.Get(ctx, elementID)
	if err != nil {
		cached, cacheErr := s.localCache.FindOne(ctx, elementID)
		if cacheErr != nil {
			// gone everywhere: the delete already "happened"
			log.Debug().
				Str("element_id", elementID).
				Msg("delete of unknown element treated as success")
			return nil
		}
		element = cached
	}

	unlock := s.canvasLocks.lock(element.CanvasID)
	defer unlock()

	if err := s.localCache.RemoveOne(ctx, elementID); err != nil {
		log.Warn().Err(err).
			Str("element_id", elementID).
			Msg("failed to remove element from local cache")
	}

	if err := s.remote.Delete(ctx, elementID); err != nil {
		// a staged delete supersedes any staged insert/replace for this id
		log.Warn().Err(err).
			Str("element_id", elementID).
			Msg("remote delete failed, queueing pending write")
		s.enqueuePending(ctx, models.PendingDelete, element)
		return nil
	}

	s.touchCanvasAsync(element.CanvasID)
	return nil
}

// Close drains the fire-and-forget touch goroutines so none are abandoned
// mid-request on shutdown.
func (s *elementSyncService) Close() error {
	s.touchWG.Wait()
	return nil
}

func (s *elementSyncService) enqueuePending(ctx context.Context, op string, element models.Element) {
	pw := models.PendingWrite{
		ElementID: element.ID,
		CanvasID:  element.CanvasID,
		Op:        op,
		Element:   element,
		QueuedAt:  s.now(),
	}
	if err := s.localCache.PutPending(ctx, pw); err != nil {
		s.logger.Error().Err(err).
			Str("element_id", element.ID).
			Str("op", op).
			Msg("failed to stage pending write, mutation may be lost on restart")
	}
}

// cacheWriteAll mirrors a canvas into the cache, running one eviction-and-
// retry cycle when the cache reports capacity exhaustion.
func (s *elementSyncService) cacheWriteAll(ctx context.Context, canvasID string, elements []models.Element) error {
	err := s.localCache.WriteAll(ctx, canvasID, elements)
	if !errors.Is(err, cache.ErrCapacityExceeded) {
		return err
	}

	if evictErr := s.evictLeastRecent(ctx, canvasID); evictErr != nil {
		return fmt.Errorf("evicting after capacity failure: %w", evictErr)
	}
	return s.localCache.WriteAll(ctx, canvasID, elements)
}

// cacheUpsert stores one element in the cache with the same single
// eviction-and-retry cycle as cacheWriteAll.
func (s *elementSyncService) cacheUpsert(ctx context.Context, canvasID string, element models.Element) error {
	err := s.localCache.UpsertOne(ctx, canvasID, element)
	if !errors.Is(err, cache.ErrCapacityExceeded) {
		return err
	}

	if evictErr := s.evictLeastRecent(ctx, canvasID); evictErr != nil {
		return fmt.Errorf("evicting after capacity failure: %w", evictErr)
	}
	return s.localCache.UpsertOne(ctx, canvasID, element)
}

// evictLeastRecent drops every cached canvas beyond the keepCanvases most
// recently accessed ones. The canvas currently being written is never
// evicted.
func (s *elementSyncService) evictLeastRecent(ctx context.Context, protectedCanvasID string) error {
	accesses, err := s.localCache.LastAccesses(ctx)
	if err != nil {
		return fmt.Errorf("listing canvas accesses: %w", err)
	}

	sort.Slice(accesses, func(i, j int) bool {
		return accesses[i].LastAccess.After(accesses[j].LastAccess)
	})

	var victims []string
	kept := 0
	for _, a := range accesses {
		if a.CanvasID == protectedCanvasID {
			// never a victim, but it still occupies one of the kept slots
			kept++
			continue
		}
		if kept < s.keepCanvases {
			kept++
			continue
		}
		victims = append(victims, a.CanvasID)
	}

	if len(victims) == 0 {
		return nil
	}

	s.logger.Info().
		Int("count", len(victims)).
		Msg("evicting least-recently-accessed canvases from local cache")
	return s.localCache.Evict(ctx, victims...)
}

func (s *elementSyncService) recordAccess(ctx context.Context, canvasID string) {
	if err := s.localCache.Touch(ctx, canvasID); err != nil {
		s.logger.Debug().Err(err).
			Str("canvas_id", canvasID).
			Msg("failed to record canvas access")
	}
}

// touchCanvasAsync bumps the canvas's remote timestamp after a successful
// mutation. At most one attempt is made; failure is logged and never
// propagated.
func (s *elementSyncService) touchCanvasAsync(canvasID string) {
	log := s.logger
	s.touchWG.Add(1)
	go func() {
		defer s.touchWG.Done()
		ctx, cancel := context.WithTimeout(context.Background(), touchTimeout)
		defer cancel()

		if err := s.remote.TouchCanvas(ctx, canvasID); err != nil {
			log.Debug().Err(err).
				Str("canvas_id", canvasID).
				Msg("canvas timestamp touch failed")
		}
	}()
}

// keyedMutex hands out one mutex per canvas id so cache read-modify-write
// sequences for different canvases never block each other.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
