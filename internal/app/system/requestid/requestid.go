// Package requestid assigns a correlation ID to each inbound request.
//
// The ID is taken from the X-Request-ID header when a proxy already set one,
// otherwise a new UUID is generated. Handlers read it via FromRequest for
// log fields, and the ad-config client forwards it on outbound fetches.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is the request/response header carrying the correlation ID.
const Header = "X-Request-ID"

type ctxKey string

const requestIDKey ctxKey = "requestID"

// Middleware ensures every request has a correlation ID in context and
// echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the correlation ID, or "" if none is set.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// FromRequest returns the correlation ID for the request, or "" if none is set.
func FromRequest(r *http.Request) string {
	return FromContext(r.Context())
}
