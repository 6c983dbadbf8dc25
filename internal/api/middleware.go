package api

import (
	"net/http"

	"github.com/google/uuid"
)

// requestIDHeader carries the request correlation id.
const requestIDHeader = "X-Request-Id"

// requestID assigns a request id when the client did not supply one and
// echoes it on the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
