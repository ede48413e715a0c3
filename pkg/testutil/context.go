package testutil

import (
	"net/http"
	"time"

	"github.com/kkutopiaa/tdd-restful-service/pkg/requestcontext"
)

// WithRequestID sets the request id middleware would have assigned.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithTime pins the request-scoped clock.
func WithTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
