package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/returns-backend/pkg/ctxutil"
)

// ActorHeader names the warehouse user performing the request. It is set by
// the gateway in front of this service.
const ActorHeader = "X-User-Id"

// Actor stores the user id from ActorHeader in the context. Requests without
// the header proceed anonymously; a malformed id is rejected with 400.
func Actor() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(ActorHeader))
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}
			id, err := uuid.Parse(raw)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, "invalid "+ActorHeader+" header")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithActor(r.Context(), id)))
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}` + "\n"))
}
