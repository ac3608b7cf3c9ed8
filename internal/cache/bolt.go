package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"go.etcd.io/bbolt"

	"github.com/collabcanvas/collab-canvas/internal/logger"
	"github.com/collabcanvas/collab-canvas/models"
)

var (
	bucketElements = []byte("elements")
	bucketMeta     = []byte("meta")
	bucketUsage    = []byte("usage")
	bucketPending  = []byte("pending")
)

type boltCache struct {
	db       *bbolt.DB
	maxBytes int64
	logger   *logger.Logger
}

// BoltConfig configures the bbolt-backed [ElementCache].
type BoltConfig struct {
	// Path is the database file path.
	Path string
	// MaxBytes caps the total encoded size of cached elements. Zero or
	// negative disables the budget. Pending writes are exempt: the retry
	// queue must not start failing exactly when the cache is under pressure.
	MaxBytes int64
}

// NewBoltCache opens (or creates) the bbolt database at cfg.Path and prepares
// all buckets. The returned cache is safe for concurrent use; bbolt serialises
// writes internally.
func NewBoltCache(cfg BoltConfig, log *logger.Logger) (ElementCache, error) {
	db, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	c := &boltCache{db: db, maxBytes: cfg.MaxBytes, logger: log}
	if err := c.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache buckets: %w", err)
	}

	return c, nil
}

func (c *boltCache) initBuckets() error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketElements, bucketMeta, bucketUsage, bucketPending} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

func (c *boltCache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

func (c *boltCache) ReadAll(ctx context.Context, canvasID string) ([]models.Element, error) {
	var elements []models.Element

	err := c.db.View(func(tx *bbolt.Tx) error {
		canvas := tx.Bucket(bucketElements).Bucket([]byte(canvasID))
		if canvas == nil {
			return nil
		}

		return canvas.ForEach(func(k, v []byte) error {
			var el models.Element
			if err := json.Unmarshal(v, &el); err != nil {
				return fmt.Errorf("decode cached element %s: %w", k, err)
			}
			elements = append(elements, el)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortByCreation(elements)
	return elements, nil
}

func (c *boltCache) WriteAll(ctx context.Context, canvasID string, elements []models.Element) error {
	encoded := make(map[string][]byte, len(elements))
	var newSize int64
	for _, el := range elements {
		payload, err := json.Marshal(el)
		if err != nil {
			return fmt.Errorf("encode element %s: %w", el.ID, err)
		}
		encoded[el.ID] = payload
		newSize += int64(len(payload))
	}

	return c.db.Update(func(tx *bbolt.Tx) error {
		if err := c.checkBudget(tx, canvasID, newSize); err != nil {
			return err
		}

		root := tx.Bucket(bucketElements)
		if root.Bucket([]byte(canvasID)) != nil {
			if err := root.DeleteBucket([]byte(canvasID)); err != nil {
				return fmt.Errorf("reset canvas bucket: %w", err)
			}
		}
		canvas, err := root.CreateBucket([]byte(canvasID))
		if err != nil {
			return fmt.Errorf("create canvas bucket: %w", err)
		}

		for id, payload := range encoded {
			if err := canvas.Put([]byte(id), payload); err != nil {
				return fmt.Errorf("store element %s: %w", id, err)
			}
		}

		if err := putUsage(tx, canvasID, newSize); err != nil {
			return err
		}
		return touchCanvas(tx, canvasID, time.Now().UTC())
	})
}

func (c *boltCache) UpsertOne(ctx context.Context, canvasID string, element models.Element) error {
	payload, err := json.Marshal(element)
	if err != nil {
		return fmt.Errorf("encode element %s: %w", element.ID, err)
	}

	return c.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketElements)
		canvas, err := root.CreateBucketIfNotExists([]byte(canvasID))
		if err != nil {
			return fmt.Errorf("create canvas bucket: %w", err)
		}

		oldLen := int64(len(canvas.Get([]byte(element.ID))))
		delta := int64(len(payload)) - oldLen
		canvasSize := getUsage(tx, canvasID)
		if err := c.checkBudget(tx, canvasID, canvasSize+delta); err != nil {
			return err
		}

		if err := canvas.Put([]byte(element.ID), payload); err != nil {
			return fmt.Errorf("store element %s: %w", element.ID, err)
		}

		if err := putUsage(tx, canvasID, canvasSize+delta); err != nil {
			return err
		}
		return touchCanvas(tx, canvasID, time.Now().UTC())
	})
}

func (c *boltCache) RemoveOne(ctx context.Context, elementID string) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketElements)

		// the cache is not indexed by element id; scan every canvas
		return root.ForEachBucket(func(canvasKey []byte) error {
			canvas := root.Bucket(canvasKey)
			payload := canvas.Get([]byte(elementID))
			if payload == nil {
				return nil
			}

			if err := canvas.Delete([]byte(elementID)); err != nil {
				return fmt.Errorf("delete element %s: %w", elementID, err)
			}
			return putUsage(tx, string(canvasKey), getUsage(tx, string(canvasKey))-int64(len(payload)))
		})
	})
}

func (c *boltCache) FindOne(ctx context.Context, elementID string) (models.Element, error) {
	var found *models.Element

	err := c.db.View(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketElements)
		return root.ForEachBucket(func(canvasKey []byte) error {
			if found != nil {
				return nil
			}
			payload := root.Bucket(canvasKey).Get([]byte(elementID))
			if payload == nil {
				return nil
			}

			var el models.Element
			if err := json.Unmarshal(payload, &el); err != nil {
				return fmt.Errorf("decode cached element %s: %w", elementID, err)
			}
			found = &el
			return nil
		})
	})
	if err != nil {
		return models.Element{}, err
	}
	if found == nil {
		return models.Element{}, ErrElementNotCached
	}

	return *found, nil
}

func (c *boltCache) Touch(ctx context.Context, canvasID string) error {
	now := time.Now().UTC()
	return c.db.Update(func(tx *bbolt.Tx) error {
		return touchCanvas(tx, canvasID, now)
	})
}

func (c *boltCache) LastAccesses(ctx context.Context) ([]models.CanvasAccess, error) {
	var accesses []models.CanvasAccess

	err := c.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).ForEach(func(k, v []byte) error {
			at, err := time.Parse(time.RFC3339Nano, string(v))
			if err != nil {
				return fmt.Errorf("decode access time of canvas %s: %w", k, err)
			}
			accesses = append(accesses, models.CanvasAccess{CanvasID: string(k), LastAccess: at})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return accesses, nil
}

func (c *boltCache) Evict(ctx context.Context, canvasIDs ...string) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketElements)
		for _, canvasID := range canvasIDs {
			if root.Bucket([]byte(canvasID)) != nil {
				if err := root.DeleteBucket([]byte(canvasID)); err != nil {
					return fmt.Errorf("evict canvas %s: %w", canvasID, err)
				}
			}
			if err := tx.Bucket(bucketUsage).Delete([]byte(canvasID)); err != nil {
				return fmt.Errorf("drop usage of canvas %s: %w", canvasID, err)
			}
			if err := tx.Bucket(bucketMeta).Delete([]byte(canvasID)); err != nil {
				return fmt.Errorf("drop access record of canvas %s: %w", canvasID, err)
			}
		}
		return nil
	})
}

func (c *boltCache) PutPending(ctx context.Context, pw models.PendingWrite) error {
	payload, err := json.Marshal(pw)
	if err != nil {
		return fmt.Errorf("encode pending write %s: %w", pw.ElementID, err)
	}

	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPending).Put([]byte(pw.ElementID), payload)
	})
}

func (c *boltCache) ListPending(ctx context.Context) ([]models.PendingWrite, error) {
	var pending []models.PendingWrite

	err := c.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPending).ForEach(func(k, v []byte) error {
			var pw models.PendingWrite
			if err := json.Unmarshal(v, &pw); err != nil {
				return fmt.Errorf("decode pending write %s: %w", k, err)
			}
			pending = append(pending, pw)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].QueuedAt.Before(pending[j].QueuedAt)
	})
	return pending, nil
}

func (c *boltCache) RemovePending(ctx context.Context, elementID string) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPending).Delete([]byte(elementID))
	})
}

// checkBudget fails with ErrCapacityExceeded if storing canvasSize bytes for
// canvasID would push the total element payload past the configured budget.
func (c *boltCache) checkBudget(tx *bbolt.Tx, canvasID string, canvasSize int64) error {
	if c.maxBytes <= 0 {
		return nil
	}

	var total int64
	err := tx.Bucket(bucketUsage).ForEach(func(k, v []byte) error {
		if string(k) != canvasID {
			total += decodeUsage(v)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if total+canvasSize > c.maxBytes {
		return fmt.Errorf("%w: %d+%d bytes over budget %d",
			ErrCapacityExceeded, total, canvasSize, c.maxBytes)
	}
	return nil
}

func touchCanvas(tx *bbolt.Tx, canvasID string, at time.Time) error {
	return tx.Bucket(bucketMeta).Put([]byte(canvasID), []byte(at.Format(time.RFC3339Nano)))
}

func getUsage(tx *bbolt.Tx, canvasID string) int64 {
	return decodeUsage(tx.Bucket(bucketUsage).Get([]byte(canvasID)))
}

func putUsage(tx *bbolt.Tx, canvasID string, size int64) error {
	if size < 0 {
		size = 0
	}
	return tx.Bucket(bucketUsage).Put([]byte(canvasID), []byte(strconv.FormatInt(size, 10)))
}

func decodeUsage(v []byte) int64 {
	if len(v) == 0 {
		return 0
	}
	n, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func sortByCreation(elements []models.Element) {
	sort.SliceStable(elements, func(i, j int) bool {
		ti, tj := elements[i].CreatedAt, elements[j].CreatedAt
		switch {
		case ti == nil && tj == nil:
			return elements[i].ID < elements[j].ID
		case ti == nil:
			return false
		case tj == nil:
			return true
		case ti.Equal(*tj):
			return elements[i].ID < elements[j].ID
		default:
			return ti.Before(*tj)
		}
	})
}
