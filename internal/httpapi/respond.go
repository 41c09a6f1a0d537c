package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abhisek/mathiz-eval/internal/classifier"
	"github.com/abhisek/mathiz-eval/internal/codec"
)

// Error codes returned in the "error" field.
const (
	CodeBadRequest       = "bad_request"
	CodeMalformedRequest = "malformed_request"
	CodeNotFound         = "not_found"
	CodeInternal         = "internal_error"
)

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// writeJSON encodes body as the JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps err to a status code and error body. Internal errors omit
// their description.
func writeError(w http.ResponseWriter, err error) {
	var decodeErr *codec.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: CodeBadRequest, ErrorDescription: err.Error()})
	case errors.Is(err, classifier.ErrMalformedRequest):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: CodeMalformedRequest, ErrorDescription: err.Error()})
	case errors.Is(err, classifier.ErrNotRegistered):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: CodeNotFound, ErrorDescription: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: CodeInternal})
	}
}
