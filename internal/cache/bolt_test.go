package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabcanvas/collab-canvas/internal/logger"
	"github.com/collabcanvas/collab-canvas/models"
)

func newTestCache(t *testing.T, maxBytes int64) ElementCache {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := NewBoltCache(BoltConfig{Path: path, MaxBytes: maxBytes}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c
}

func elementAt(id, canvasID string, createdAt time.Time) models.Element {
	return models.Element{
		ID:          id,
		CanvasID:    canvasID,
		ElementType: "rect",
		Data:        map[string]any{models.AttrVersion: float64(1), "left": float64(10)},
		CreatedAt:   &createdAt,
	}
}

func TestBoltCache_WriteAllReadAll_OrderedByCreation(t *testing.T) {
	c := newTestCache(t, 0)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	newer := elementAt("e2", "c1", base.Add(time.Minute))
	older := elementAt("e1", "c1", base)

	require.NoError(t, c.WriteAll(ctx, "c1", []models.Element{newer, older}))

	got, err := c.ReadAll(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e1", got[0].ID)
	assert.Equal(t, "e2", got[1].ID)
}

func TestBoltCache_ReadAll_UnknownCanvasIsEmpty(t *testing.T) {
	c := newTestCache(t, 0)

	got, err := c.ReadAll(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBoltCache_WriteAll_IsFullMirror(t *testing.T) {
	c := newTestCache(t, 0)
	ctx := context.Background()
	at := time.Now().UTC()

	require.NoError(t, c.WriteAll(ctx, "c1", []models.Element{elementAt("e1", "c1", at)}))
	require.NoError(t, c.WriteAll(ctx, "c1", []models.Element{elementAt("e2", "c1", at)}))

	got, err := c.ReadAll(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e2", got[0].ID)
}

func TestBoltCache_FindOne_ScansAllCanvases(t *testing.T) {
	c := newTestCache(t, 0)
	ctx := context.Background()
	at := time.Now().UTC()

	require.NoError(t, c.WriteAll(ctx, "c1", []models.Element{elementAt("e1", "c1", at)}))
	require.NoError(t, c.WriteAll(ctx, "c2", []models.Element{elementAt("e2", "c2", at)}))

	el, err := c.FindOne(ctx, "e2")
	require.NoError(t, err)
	assert.Equal(t, "c2", el.CanvasID)

	_, err = c.FindOne(ctx, "e3")
	require.ErrorIs(t, err, ErrElementNotCached)
}

func TestBoltCache_RemoveOne_Idempotent(t *testing.T) {
	c := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, c.WriteAll(ctx, "c1", []models.Element{elementAt("e1", "c1", time.Now().UTC())}))

	require.NoError(t, c.RemoveOne(ctx, "e1"))
	require.NoError(t, c.RemoveOne(ctx, "e1")) // second removal is a no-op

	_, err := c.FindOne(ctx, "e1")
	require.ErrorIs(t, err, ErrElementNotCached)
}

func TestBoltCache_UpsertOne_AddsToExistingCanvas(t *testing.T) {
	c := newTestCache(t, 0)
	ctx := context.Background()
	at := time.Now().UTC()

	require.NoError(t, c.WriteAll(ctx, "c1", []models.Element{elementAt("e1", "c1", at)}))
	require.NoError(t, c.UpsertOne(ctx, "c1", elementAt("e2", "c1", at.Add(time.Second))))

	got, err := c.ReadAll(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBoltCache_CapacityBudget(t *testing.T) {
	c := newTestCache(t, 256)
	ctx := context.Background()
	at := time.Now().UTC()

	require.NoError(t, c.WriteAll(ctx, "c1", []models.Element{elementAt("e1", "c1", at)}))

	// a second canvas of the same size blows the budget
	err := c.WriteAll(ctx, "c2", []models.Element{elementAt("e2", "c2", at)})
	require.ErrorIs(t, err, ErrCapacityExceeded)

	// evicting the first canvas frees the budget
	require.NoError(t, c.Evict(ctx, "c1"))
	require.NoError(t, c.WriteAll(ctx, "c2", []models.Element{elementAt("e2", "c2", at)}))

	got, err := c.ReadAll(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, got, "evicted canvas should be gone")
}

func TestBoltCache_PendingWrites_SupersededByElementID(t *testing.T) {
	c := newTestCache(t, 0)
	ctx := context.Background()

	first := models.PendingWrite{
		ElementID: "e1", CanvasID: "c1", Op: models.PendingInsert,
		Element:  models.Element{ID: "e1", CanvasID: "c1"},
		QueuedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	second := first
	second.Op = models.PendingReplace
	second.QueuedAt = first.QueuedAt.Add(time.Minute)

	other := models.PendingWrite{
		ElementID: "e0", CanvasID: "c1", Op: models.PendingInsert,
		Element:  models.Element{ID: "e0", CanvasID: "c1"},
		QueuedAt: first.QueuedAt.Add(-time.Minute),
	}

	require.NoError(t, c.PutPending(ctx, first))
	require.NoError(t, c.PutPending(ctx, other))
	require.NoError(t, c.PutPending(ctx, second)) // supersedes first

	pending, err := c.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "e0", pending[0].ElementID, "ordered by queue time")
	assert.Equal(t, models.PendingReplace, pending[1].Op)

	require.NoError(t, c.RemovePending(ctx, "e1"))
	pending, err = c.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestBoltCache_LastAccesses(t *testing.T) {
	c := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, c.Touch(ctx, "c1"))
	require.NoError(t, c.Touch(ctx, "c2"))

	accesses, err := c.LastAccesses(ctx)
	require.NoError(t, err)
	require.Len(t, accesses, 2)

	ids := []string{accesses[0].CanvasID, accesses[1].CanvasID}
	assert.ElementsMatch(t, []string{"c1", "c2"}, ids)
	for _, a := range accesses {
		assert.False(t, a.LastAccess.IsZero())
	}
}
