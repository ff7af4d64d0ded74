package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/termforge/termgate/pkg/ctxutil"
)

// RequestIDHeader carries the request identifier on requests and responses.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that ensures every request has an identifier:
// an incoming header value is reused, otherwise a new UUID is generated.
// The identifier is stored in the request context and echoed on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
