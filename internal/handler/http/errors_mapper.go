package http

import (
	"errors"
	"net/http"

	"github.com/collabcanvas/collab-canvas/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrElementNotFound:  http.StatusNotFound,
	store.ErrDuplicateElement: http.StatusConflict,
	store.ErrElementNotSaved:  http.StatusInternalServerError,
	store.ErrDecodingData:     http.StatusInternalServerError,
	store.ErrEncodingData:     http.StatusUnprocessableEntity,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

var dbErrorClassifier = store.NewPostgresErrorClassifier()

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	// transient database failures surface as 503 so clients queue and retry
	if dbErrorClassifier.Classify(err) == store.Retryable {
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}
