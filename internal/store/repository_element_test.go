package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabcanvas/collab-canvas/internal/logger"
	"github.com/collabcanvas/collab-canvas/models"
)

func newTestElementRepo(t *testing.T) (*elementRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &elementRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var elementRowColumns = []string{"id", "canvas_id", "element_type", "data", "user_id", "created_at", "updated_at"}

func TestListElements_Success(t *testing.T) {
	repo, mock, db := newTestElementRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(elementRowColumns).
		AddRow("e-1", "c-1", "rectangle", []byte(`{"_version":1,"x":10}`), "user-1", now, now).
		AddRow("e-2", "c-1", "sticky-note", []byte(`{"_version":3,"text":"hi"}`), "user-2", now, now)

	mock.ExpectQuery("SELECT (.+) FROM elements").
		WithArgs("c-1").
		WillReturnRows(rows)

	elements, err := repo.ListElements(context.Background(), "c-1")
	require.NoError(t, err)
	require.Len(t, elements, 2)

	assert.Equal(t, "e-1", elements[0].ID)
	assert.Equal(t, "rectangle", elements[0].ElementType)
	assert.Equal(t, int64(1), elements[0].Version())
	assert.Equal(t, float64(10), elements[0].Data["x"])
	assert.Equal(t, int64(3), elements[1].Version())
	require.NotNil(t, elements[0].CreatedAt)
}

func TestListElements_QueryError(t *testing.T) {
	repo, mock, db := newTestElementRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM elements").
		WillReturnError(errors.New("db network error"))

	_, err := repo.ListElements(context.Background(), "c-1")
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetElement_Success(t *testing.T) {
	repo, mock, db := newTestElementRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(elementRowColumns).
		AddRow("e-1", "c-1", "rectangle", []byte(`{"_version":2}`), "user-1", now, now)

	mock.ExpectQuery("SELECT (.+) FROM elements").
		WithArgs("e-1").
		WillReturnRows(rows)

	element, err := repo.GetElement(context.Background(), "e-1")
	require.NoError(t, err)
	assert.Equal(t, "e-1", element.ID)
	assert.Equal(t, int64(2), element.Version())
}

func TestGetElement_NotFound(t *testing.T) {
	repo, mock, db := newTestElementRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM elements").
		WithArgs("e-missing").
		WillReturnRows(sqlmock.NewRows(elementRowColumns))

	_, err := repo.GetElement(context.Background(), "e-missing")
	require.ErrorIs(t, err, ErrElementNotFound)
}

func TestInsertElement_Success(t *testing.T) {
	repo, mock, db := newTestElementRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	element := models.Element{
		ID:          "e-1",
		CanvasID:    "c-1",
		ElementType: "rectangle",
		Data:        map[string]any{models.AttrVersion: int64(1)},
		UserID:      "user-1",
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO canvases").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO elements").
		WillReturnRows(sqlmock.NewRows(elementRowColumns).
			AddRow("e-1", "c-1", "rectangle", []byte(`{"_version":1}`), "user-1", now, now))
	mock.ExpectCommit()

	saved, err := repo.InsertElement(context.Background(), element)
	require.NoError(t, err)
	assert.Equal(t, "e-1", saved.ID)
	assert.Equal(t, int64(1), saved.Version())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertElement_DuplicateID(t *testing.T) {
	repo, mock, db := newTestElementRepo(t)
	defer db.Close()

	element := models.Element{ID: "e-1", CanvasID: "c-1"}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO canvases").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO elements").
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.InsertElement(context.Background(), element)
	require.ErrorIs(t, err, ErrDuplicateElement)
}

func TestReplaceElement_Success(t *testing.T) {
	repo, mock, db := newTestElementRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	element := models.Element{
		ID:          "e-1",
		CanvasID:    "c-1",
		ElementType: "ellipse",
		Data:        map[string]any{models.AttrVersion: int64(4)},
		UserID:      "user-1",
		UpdatedAt:   &now,
	}

	mock.ExpectQuery("UPDATE elements").
		WillReturnRows(sqlmock.NewRows(elementRowColumns).
			AddRow("e-1", "c-1", "ellipse", []byte(`{"_version":4}`), "user-1", now, now))

	saved, err := repo.ReplaceElement(context.Background(), "e-1", element)
	require.NoError(t, err)
	assert.Equal(t, int64(4), saved.Version())
	assert.Equal(t, "ellipse", saved.ElementType)
}

func TestReplaceElement_NotFound(t *testing.T) {
	repo, mock, db := newTestElementRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE elements").
		WillReturnRows(sqlmock.NewRows(elementRowColumns))

	_, err := repo.ReplaceElement(context.Background(), "e-missing", models.Element{ID: "e-missing"})
	require.ErrorIs(t, err, ErrElementNotFound)
}

func TestDeleteElement_AbsentRowIsNoOp(t *testing.T) {
	repo, mock, db := newTestElementRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM elements").
		WithArgs("e-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteElement(context.Background(), "e-missing"))
}

func TestTouchCanvas_UpsertsRow(t *testing.T) {
	repo, mock, db := newTestElementRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO canvases").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.TouchCanvas(context.Background(), "c-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
