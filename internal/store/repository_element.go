package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/collabcanvas/collab-canvas/internal/logger"
	"github.com/collabcanvas/collab-canvas/models"
)

// elementRepository is the PostgreSQL-backed implementation of
// [ElementRepository]. It executes all element CRUD operations against the
// "elements" and "canvases" tables using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (canvas_id, element_id, etc.).
type elementRepository struct {
	*DB
	logger *logger.Logger
}

// NewElementRepository constructs an [ElementRepository] backed by the
// provided database connection and logger.
func NewElementRepository(db *DB, logger *logger.Logger) ElementRepository {
	return &elementRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *elementRepository) ListElements(ctx context.Context, canvasID string) ([]models.Element, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListElementsQuery(canvasID)
	if err != nil {
		log.Err(err).
			Str("func", "elementRepository.ListElements").
			Str("canvas_id", canvasID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "elementRepository.ListElements").
			Str("canvas_id", canvasID).
			Msg("failed to execute query for listing canvas elements")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	elements := make([]models.Element, 0, 50)

	for rows.Next() {
		element, scanErr := scanElement(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "elementRepository.ListElements").
				Str("canvas_id", canvasID).
				Msg("failed to scan element row")
			return nil, scanErr
		}

		elements = append(elements, element)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "elementRepository.ListElements").
			Str("canvas_id", canvasID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return elements, nil
}

func (r *elementRepository) GetElement(ctx context.Context, elementID string) (models.Element, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetElementQuery(elementID)
	if err != nil {
		log.Err(err).
			Str("func", "elementRepository.GetElement").
			Str("element_id", elementID).
			Msg("failed to create query")
		return models.Element{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	element, scanErr := scanElement(row)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Element{}, fmt.Errorf("%w: %s", ErrElementNotFound, elementID)
		}
		log.Err(scanErr).
			Str("func", "elementRepository.GetElement").
			Str("element_id", elementID).
			Msg("failed to scan element row")
		return models.Element{}, scanErr
	}

	return element, nil
}

func (r *elementRepository) InsertElement(ctx context.Context, element models.Element) (models.Element, error) {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(element.Data)
	if err != nil {
		log.Err(err).
			Str("func", "elementRepository.InsertElement").
			Str("element_id", element.ID).
			Msg("failed to encode element data")
		return models.Element{}, fmt.Errorf("%w: %w", ErrEncodingData, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "elementRepository.InsertElement").
			Msg("error during opening transaction")
		return models.Element{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := upsertCanvasTx(ctx, tx, element.CanvasID, r.nowFor(element)); err != nil {
		log.Err(err).
			Str("func", "elementRepository.InsertElement").
			Str("canvas_id", element.CanvasID).
			Msg("failed to upsert canvas row")
		return models.Element{}, err
	}

	query, args, err := buildInsertElementQuery(element, data)
	if err != nil {
		log.Err(err).
			Str("func", "elementRepository.InsertElement").
			Str("element_id", element.ID).
			Msg("failed to create query")
		return models.Element{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := tx.QueryRowContext(ctx, query, args...)
	saved, scanErr := scanElement(row)
	if scanErr != nil {
		if isUniqueViolation(scanErr) {
			return models.Element{}, fmt.Errorf("%w: %s", ErrDuplicateElement, element.ID)
		}
		log.Err(scanErr).
			Str("func", "elementRepository.InsertElement").
			Str("element_id", element.ID).
			Msg("failed to insert element")
		return models.Element{}, scanErr
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "elementRepository.InsertElement").
			Str("element_id", element.ID).
			Msg("error during committing transaction")
		return models.Element{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return saved, nil
}

func (r *elementRepository) ReplaceElement(ctx context.Context, elementID string, element models.Element) (models.Element, error) {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(element.Data)
	if err != nil {
		log.Err(err).
			Str("func", "elementRepository.ReplaceElement").
			Str("element_id", elementID).
			Msg("failed to encode element data")
		return models.Element{}, fmt.Errorf("%w: %w", ErrEncodingData, err)
	}

	query, args, err := buildReplaceElementQuery(elementID, element, data)
	if err != nil {
		log.Err(err).
			Str("func", "elementRepository.ReplaceElement").
			Str("element_id", elementID).
			Msg("failed to create query")
		return models.Element{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	saved, scanErr := scanElement(row)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Element{}, fmt.Errorf("%w: %s", ErrElementNotFound, elementID)
		}
		log.Err(scanErr).
			Str("func", "elementRepository.ReplaceElement").
			Str("element_id", elementID).
			Msg("failed to replace element")
		return models.Element{}, scanErr
	}

	return saved, nil
}

func (r *elementRepository) DeleteElement(ctx context.Context, elementID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteElementQuery(elementID)
	if err != nil {
		log.Err(err).
			Str("func", "elementRepository.DeleteElement").
			Str("element_id", elementID).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "elementRepository.DeleteElement").
			Str("element_id", elementID).
			Msg("failed to delete element")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *elementRepository) TouchCanvas(ctx context.Context, canvasID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertCanvasQuery(canvasID, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "elementRepository.TouchCanvas").
			Str("canvas_id", canvasID).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "elementRepository.TouchCanvas").
			Str("canvas_id", canvasID).
			Msg("failed to touch canvas")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// nowFor picks the canvas upsert timestamp: the element's own creation time
// when present, otherwise the current time.
func (r *elementRepository) nowFor(element models.Element) time.Time {
	if element.CreatedAt != nil {
		return *element.CreatedAt
	}
	return time.Now().UTC()
}

func upsertCanvasTx(ctx context.Context, tx *sql.Tx, canvasID string, now time.Time) error {
	query, args, err := buildUpsertCanvasQuery(canvasID, now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanElement(row rowScanner) (models.Element, error) {
	var (
		element   models.Element
		data      []byte
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	if err := row.Scan(
		&element.ID,
		&element.CanvasID,
		&element.ElementType,
		&data,
		&element.UserID,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
			return models.Element{}, err
		}
		return models.Element{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &element.Data); err != nil {
			return models.Element{}, fmt.Errorf("%w: %w", ErrDecodingData, err)
		}
	}
	if createdAt.Valid {
		t := createdAt.Time.UTC()
		element.CreatedAt = &t
	}
	if updatedAt.Valid {
		t := updatedAt.Time.UTC()
		element.UpdatedAt = &t
	}

	return element, nil
}
