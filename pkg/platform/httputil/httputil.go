// Package httputil writes JSON bodies and domain error envelopes.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "github.com/kkutopiaa/tdd-restful-service/pkg/domain-errors"
)

// ErrorResponse is the JSON error envelope sent to clients.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// ErrorBody translates err into a status and envelope. Internal errors never
// expose their message.
func ErrorBody(err error) (int, ErrorResponse) {
	code := dErrors.CodeOf(err)
	status := dErrors.ToHTTPStatus(code)
	body := ErrorResponse{Error: string(code)}
	if de, ok := dErrors.As(err); ok && status < http.StatusInternalServerError {
		body.Description = de.Message
	}
	return status, body
}

// WriteError writes err as a JSON error envelope.
func WriteError(w http.ResponseWriter, err error) {
	status, body := ErrorBody(err)
	WriteJSON(w, status, body)
}

// WriteJSON writes v with status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
