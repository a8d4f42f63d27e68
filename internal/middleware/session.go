package middleware

import (
	"context"
	"net/http"

	"github.com/mlevan/tinyapp/internal/models"
)

type contextKey string

const sessionKey contextKey = "session"

type sessionDecoder interface {
	FromRequest(r *http.Request) models.Session
}

// WithSession decodes the session cookie once per request and stashes
// the typed session in the request context. Handlers read it back via
// SessionFromContext and never see cookie bytes.
func WithSession(sessions sessionDecoder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := sessions.FromRequest(r)
			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session decoded for this request, or
// the zero Session when the middleware did not run or no cookie was
// sent.
func SessionFromContext(ctx context.Context) models.Session {
	sess, _ := ctx.Value(sessionKey).(models.Session)
	return sess
}
