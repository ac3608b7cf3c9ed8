package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/collabcanvas/collab-canvas/internal/logger"
	"github.com/collabcanvas/collab-canvas/internal/mock"
	"github.com/collabcanvas/collab-canvas/internal/store"
	"github.com/collabcanvas/collab-canvas/models"
)

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockElementRepository) {
	t.Helper()

	repo := mock.NewMockElementRepository(ctrl)
	h := NewHandler(&store.Storages{ElementRepository: repo}, nil, logger.Nop())
	return h, repo
}

func doRequest(t *testing.T, h *Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestListElements_ReturnsCanvasElements(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo := newTestHandler(t, ctrl)

	now := time.Now().UTC()
	elements := []models.Element{
		{ID: "e-1", CanvasID: "c-1", ElementType: "rectangle", Data: map[string]any{"_version": float64(1)}, CreatedAt: &now},
	}
	repo.EXPECT().ListElements(gomock.Any(), "c-1").Return(elements, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/canvases/c-1/elements", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []models.Element
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "e-1", got[0].ID)
}

func TestCreateElement_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo := newTestHandler(t, ctrl)

	repo.EXPECT().InsertElement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, e models.Element) (models.Element, error) {
			// canvas id must come from the URL, not the body
			assert.Equal(t, "c-1", e.CanvasID)
			assert.NotEmpty(t, e.ID)
			require.NotNil(t, e.CreatedAt)
			return e, nil
		})

	body, _ := json.Marshal(models.Element{
		CanvasID:    "c-other",
		ElementType: "sticky-note",
		Data:        map[string]any{"text": "hello"},
	})

	rec := doRequest(t, h, http.MethodPost, "/api/canvases/c-1/elements", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Element
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "c-1", got.CanvasID)
}

func TestCreateElement_MissingType(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl)

	body, _ := json.Marshal(models.Element{Data: map[string]any{"x": 1}})
	rec := doRequest(t, h, http.MethodPost, "/api/canvases/c-1/elements", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateElement_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodPost, "/api/canvases/c-1/elements", []byte("{not json"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateElement_DuplicateID(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo := newTestHandler(t, ctrl)

	repo.EXPECT().InsertElement(gomock.Any(), gomock.Any()).
		Return(models.Element{}, store.ErrDuplicateElement)

	body, _ := json.Marshal(models.Element{ID: "e-1", ElementType: "rectangle"})
	rec := doRequest(t, h, http.MethodPost, "/api/canvases/c-1/elements", body)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetElement_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo := newTestHandler(t, ctrl)

	repo.EXPECT().GetElement(gomock.Any(), "e-missing").
		Return(models.Element{}, store.ErrElementNotFound)

	rec := doRequest(t, h, http.MethodGet, "/api/elements/e-missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReplaceElement_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo := newTestHandler(t, ctrl)

	repo.EXPECT().ReplaceElement(gomock.Any(), "e-1", gomock.Any()).
		DoAndReturn(func(_ any, _ string, e models.Element) (models.Element, error) {
			return e, nil
		})

	body, _ := json.Marshal(models.Element{ElementType: "ellipse", Data: map[string]any{"_version": 4}})
	rec := doRequest(t, h, http.MethodPut, "/api/elements/e-1", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Element
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ellipse", got.ElementType)
}

func TestDeleteElement_NoContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo := newTestHandler(t, ctrl)

	repo.EXPECT().DeleteElement(gomock.Any(), "e-1").Return(nil)

	rec := doRequest(t, h, http.MethodDelete, "/api/elements/e-1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTouchCanvas_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo := newTestHandler(t, ctrl)

	repo.EXPECT().TouchCanvas(gomock.Any(), "c-1").Return(nil)

	rec := doRequest(t, h, http.MethodPost, "/api/canvases/c-1/touch", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPing_DatabaseUp(t *testing.T) {
	db, mockDB, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	mockDB.ExpectPing()

	h := NewHandler(&store.Storages{}, &store.DB{DB: db}, logger.Nop())
	rec := doRequest(t, h, http.MethodGet, "/api/ping", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPing_DatabaseDown(t *testing.T) {
	db, mockDB, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mockDB.ExpectPing().WillReturnError(assert.AnError)

	h := NewHandler(&store.Storages{}, &store.DB{DB: db}, logger.Nop())
	rec := doRequest(t, h, http.MethodGet, "/api/ping", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestUnsupportedMethodHidesRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodPatch, "/api/ping", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTraceIDHeaderIsSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo := newTestHandler(t, ctrl)

	repo.EXPECT().TouchCanvas(gomock.Any(), "c-1").Return(nil)

	rec := doRequest(t, h, http.MethodPost, "/api/canvases/c-1/touch", nil)
	require.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
