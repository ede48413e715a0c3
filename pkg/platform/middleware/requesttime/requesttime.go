// Package requesttime pins a single "now" for the whole request, so every
// timestamp a resource produces agrees.
package requesttime

import (
	"net/http"
	"time"

	"github.com/kkutopiaa/tdd-restful-service/pkg/requestcontext"
)

// Middleware stores the time the request arrived in its context.
func Middleware(next http.Handler) http.Handler {
	return WithClock(time.Now)(next)
}

// WithClock is Middleware with an injectable clock.
func WithClock(now func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithTime(r.Context(), now())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
