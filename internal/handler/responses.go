package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// bufferPool holds encode buffers; catalog payloads are a few KB
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

// respondJSON encodes payload before writing headers, so an encoding failure
// still produces a clean 500 instead of a truncated body
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Something went wrong"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// RespondError writes the same {"error": ...} body for middleware outside this package
func RespondError(w http.ResponseWriter, status int, message string) {
	respondError(w, status, message)
}

// respondCatalogError maps a catalog error to a status and message.
// Lookups that miss are 404; everything else is a 500 naming the entity.
func respondCatalogError(w http.ResponseWriter, r *http.Request, entity string, err error) {
	switch {
	case errors.Is(err, domain.ErrNPCNotFound):
		respondError(w, http.StatusNotFound, ErrMsgNPCNotFound)
	case errors.Is(err, domain.ErrCropNotFound):
		respondError(w, http.StatusNotFound, ErrMsgCropNotFound)
	default:
		logger.FromContext(r.Context()).Error(LogMsgRequestFailed, "entity", entity, "path", r.URL.Path, "error", err)
		respondError(w, http.StatusInternalServerError, fmt.Sprintf(ErrMsgFetchFailedFmt, entity))
	}
}
