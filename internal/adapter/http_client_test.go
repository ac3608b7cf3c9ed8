package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabcanvas/collab-canvas/models"
)

func newTestStore(t *testing.T, handler http.Handler) (RemoteElementStore, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := NewHTTPRemoteStore(HTTPClientConfig{BaseURL: srv.URL, Timeout: 2 * time.Second})
	return store, srv
}

func TestHTTPRemoteStore_List_Success(t *testing.T) {
	want := []models.Element{
		{ID: "e1", CanvasID: "c1", ElementType: "rect", Data: map[string]any{"left": float64(10)}},
		{ID: "e2", CanvasID: "c1", ElementType: "circle"},
	}

	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/canvases/c1/elements", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(want))
	}))

	got, err := store.List(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHTTPRemoteStore_List_ServerError(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := store.List(context.Background(), "c1")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPRemoteStore_List_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	store := NewHTTPRemoteStore(HTTPClientConfig{BaseURL: srv.URL, Timeout: time.Second})

	_, err := store.List(context.Background(), "c1")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPRemoteStore_Get_NotFound(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such element", http.StatusNotFound)
	}))

	_, err := store.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPRemoteStore_Insert_ReturnsConfirmedRecord(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/canvases/c1/elements", r.URL.Path)

		var el models.Element
		require.NoError(t, json.NewDecoder(r.Body).Decode(&el))

		// server echoes the record back as the canonical copy
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(el))
	}))

	el := models.Element{ID: "e1", CanvasID: "c1", ElementType: "rect", Data: map[string]any{models.AttrVersion: float64(1)}}
	confirmed, err := store.Insert(context.Background(), el)
	require.NoError(t, err)
	assert.Equal(t, "e1", confirmed.ID)
	assert.Equal(t, int64(1), confirmed.Version())
}

func TestHTTPRemoteStore_Insert_Rejected(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "duplicate id", http.StatusConflict)
	}))

	_, err := store.Insert(context.Background(), models.Element{ID: "e1", CanvasID: "c1"})
	require.ErrorIs(t, err, ErrRejected)
}

func TestHTTPRemoteStore_Replace_NotFound(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such element", http.StatusNotFound)
	}))

	_, err := store.Replace(context.Background(), "missing", models.Element{ID: "missing"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPRemoteStore_Delete_AbsenceIsNotAnError(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such element", http.StatusNotFound)
	}))

	err := store.Delete(context.Background(), "already-gone")
	require.NoError(t, err)
}

func TestHTTPRemoteStore_TouchCanvas(t *testing.T) {
	var touched string
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		touched = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, store.TouchCanvas(context.Background(), "c1"))
	assert.Equal(t, "/api/canvases/c1/touch", touched)
}
