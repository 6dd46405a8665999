package lookupapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/browscap/pkg/browscap"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any, meta map[string]any) {
	writeJSON(w, http.StatusOK, Envelope{Data: data, Meta: meta})
}

func writeError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	writeJSON(w, status, Envelope{Error: &ErrorDetail{Code: code, Message: err.Error()}})
}

// classify maps an error to its HTTP status and machine-readable code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrEmptyQuery), errors.Is(err, ErrEmptyBatch):
		return http.StatusBadRequest, "empty_query"
	case errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest, "invalid_body"
	case errors.Is(err, ErrBatchTooLarge), errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, "too_large"
	case errors.Is(err, browscap.ErrClosed):
		return http.StatusServiceUnavailable, "unavailable"
	case errors.Is(err, browscap.ErrCyclicInheritance):
		return http.StatusInternalServerError, "cyclic_inheritance"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
