package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/collabcanvas/collab-canvas/models"
)

// psql builds parameterised queries with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// elementColumns is the scan order shared by every element query.
var elementColumns = []string{
	"id",
	"canvas_id",
	"element_type",
	"data",
	"user_id",
	"created_at",
	"updated_at",
}

const returningElementColumns = "RETURNING id, canvas_id, element_type, data, user_id, created_at, updated_at"

func buildListElementsQuery(canvasID string) (string, []any, error) {
	return psql.
		Select(elementColumns...).
		From("elements").
		Where(sq.Eq{"canvas_id": canvasID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func buildGetElementQuery(elementID string) (string, []any, error) {
	return psql.
		Select(elementColumns...).
		From("elements").
		Where(sq.Eq{"id": elementID}).
		ToSql()
}

func buildInsertElementQuery(element models.Element, data []byte) (string, []any, error) {
	return psql.
		Insert("elements").
		Columns(elementColumns...).
		Values(
			element.ID,
			element.CanvasID,
			element.ElementType,
			data,
			element.UserID,
			element.CreatedAt,
			element.UpdatedAt,
		).
		Suffix(returningElementColumns).
		ToSql()
}

func buildReplaceElementQuery(elementID string, element models.Element, data []byte) (string, []any, error) {
	return psql.
		Update("elements").
		Set("element_type", element.ElementType).
		Set("data", data).
		Set("user_id", element.UserID).
		Set("updated_at", element.UpdatedAt).
		Where(sq.Eq{"id": elementID}).
		Suffix(returningElementColumns).
		ToSql()
}

func buildDeleteElementQuery(elementID string) (string, []any, error) {
	return psql.
		Delete("elements").
		Where(sq.Eq{"id": elementID}).
		ToSql()
}

func buildUpsertCanvasQuery(canvasID string, now time.Time) (string, []any, error) {
	return psql.
		Insert("canvases").
		Columns("id", "created_at", "updated_at").
		Values(canvasID, now, now).
		Suffix("ON CONFLICT (id) DO UPDATE SET updated_at = EXCLUDED.updated_at").
		ToSql()
}
