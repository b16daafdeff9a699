package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Brommah/contentfinal-sub002/internal/entitystore"
	"github.com/Brommah/contentfinal-sub002/internal/storage"
	syncsvc "github.com/Brommah/contentfinal-sub002/internal/sync"
	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

// maxBodyBytes ограничивает размер тела запроса
const maxBodyBytes = 1 << 20

// writeJSON кодирует ответ с указанным статусом
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors to HTTP statuses. Unknown errors are
// logged and hidden behind a generic message.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	resp := api.ErrorResponse{Error: api.ErrCodeInternal, Message: "internal server error"}
	status := http.StatusInternalServerError

	var cfgErr *syncsvc.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		status = http.StatusConflict
		resp = api.ErrorResponse{Error: api.ErrCodeNotConfigured, Message: cfgErr.Reason, Field: cfgErr.Field}
	case errors.Is(err, entitystore.ErrEntityNotFound), errors.Is(err, storage.ErrUserNotFound):
		status = http.StatusNotFound
		resp = api.ErrorResponse{Error: api.ErrCodeNotFound, Message: err.Error()}
	case errors.Is(err, entitystore.ErrTypeMismatch):
		status = http.StatusConflict
		resp = api.ErrorResponse{Error: api.ErrCodeTypeMismatch, Message: err.Error()}
	case errors.Is(err, entitystore.ErrRevisionChanged):
		status = http.StatusConflict
		resp = api.ErrorResponse{Error: api.ErrCodeRevisionChanged, Message: err.Error()}
	case errors.Is(err, syncsvc.ErrNoConflict):
		status = http.StatusConflict
		resp = api.ErrorResponse{Error: api.ErrCodeNoConflict, Message: err.Error()}
	case errors.Is(err, entitystore.ErrInvalidType), errors.Is(err, syncsvc.ErrInvalidChoice), errors.Is(err, errInvalidRequest):
		status = http.StatusBadRequest
		resp = api.ErrorResponse{Error: api.ErrCodeInvalidRequest, Message: err.Error()}
	default:
		logger.Error("Request failed", "error", err)
	}

	writeJSON(w, logger, status, resp)
}

// errInvalidRequest помечает ошибки разбора запроса
var errInvalidRequest = errors.New("invalid request")

// decodeJSON читает тело запроса в v. Пустое тело допустимо, если allowEmpty.
func decodeJSON(r *http.Request, v any, allowEmpty bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", errInvalidRequest, err)
	}
	return nil
}
