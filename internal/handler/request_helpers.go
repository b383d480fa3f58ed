package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/ValleyCompanion_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// If it returns an error, the response has already been written and the handler
// should return.
//
// Example usage:
//
//	var req PlannerSummaryRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Planner summary"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(fmt.Sprintf("Invalid %s request", actionName), "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// queryParam returns the first value of a query parameter, or "".
// Repeated parameters are ignored rather than rejected.
func queryParam(r *http.Request, name string) string {
	return r.URL.Query().Get(name)
}
