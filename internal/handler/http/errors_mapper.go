package http

import (
	"errors"
	"net/http"

	"github.com/staykeeper/staykeeper/internal/service"
	"github.com/staykeeper/staykeeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrUnknownCategory:         http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrSlugAlreadyExists:  http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,

	// absence and foreign ownership are indistinguishable on purpose
	store.ErrNotFound:            http.StatusNotFound,
	store.ErrNotFoundOrForbidden: http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the status code mapped from err's family.
// 5xx responses never leak internal details to the caller.
func writeError(w http.ResponseWriter, err error, message string) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	if message == "" {
		message = err.Error()
	}
	http.Error(w, message, status)
}
