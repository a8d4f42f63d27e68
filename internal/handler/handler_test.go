package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mlevan/tinyapp/internal/idgen"
	"github.com/mlevan/tinyapp/internal/session"
	"github.com/mlevan/tinyapp/internal/urlstore"
	"github.com/mlevan/tinyapp/internal/userstore"
)

type testEnv struct {
	users    *userstore.Store
	urls     *urlstore.Store
	sessions *session.Manager
	router   *chi.Mux
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	users := userstore.New(logger)
	urls := urlstore.New(idgen.New(), logger)
	sessions := session.NewManager("session", "test-secret-key", logger)

	h := New(users, urls, sessions, "http://localhost:8080", logger)

	return &testEnv{
		users:    users,
		urls:     urls,
		sessions: sessions,
		router:   h.SetupRouter(),
	}
}

// register creates an account directly in the store and returns its
// id together with a valid session cookie for it.
func (e *testEnv) register(t *testing.T, email, password string) (string, *http.Cookie) {
	t.Helper()

	id, err := e.users.Create(email, password)
	require.NoError(t, err)

	return id, e.cookieFor(t, id)
}

// cookieFor issues a session cookie for an arbitrary user id, whether
// or not that id resolves to an account.
func (e *testEnv) cookieFor(t *testing.T, userID string) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, e.sessions.Issue(rec, userID))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

// do runs one request through the router. A nil form sends no body; a
// nil cookie sends no session.
func (e *testEnv) do(method, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func formOf(pairs ...string) url.Values {
	form := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		form.Set(pairs[i], pairs[i+1])
	}
	return form
}
