package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	type want struct {
		statusCode int
		location   string
		sessionSet bool
	}

	tests := []struct {
		name  string
		email string
		pass  string
		setup func(t *testing.T, e *testEnv)
		want  want
	}{
		{
			name:  "positive: new account",
			email: "a@x.com",
			pass:  "pw1",
			want: want{
				statusCode: http.StatusFound,
				location:   "/urls",
				sessionSet: true,
			},
		},
		{
			name:  "negative: duplicate email",
			email: "a@x.com",
			pass:  "pw2",
			setup: func(t *testing.T, e *testEnv) {
				_, err := e.users.Create("a@x.com", "pw1")
				require.NoError(t, err)
			},
			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:  "negative: missing email",
			email: "",
			pass:  "pw1",
			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:  "negative: missing password",
			email: "a@x.com",
			pass:  "",
			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			if tt.setup != nil {
				tt.setup(t, e)
			}

			w := e.do(http.MethodPost, "/register", formOf("email", tt.email, "password", tt.pass), nil)

			assert.Equal(t, tt.want.statusCode, w.Code)
			if tt.want.location != "" {
				assert.Equal(t, tt.want.location, w.Header().Get("Location"))
			}

			if tt.want.sessionSet {
				require.NotEmpty(t, w.Result().Cookies(), "registration must open a session")

				user, ok := e.users.FindByEmail(tt.email)
				require.True(t, ok)
				assert.NotEmpty(t, user.ID)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	type want struct {
		statusCode int
		location   string
		sessionSet bool
	}

	tests := []struct {
		name  string
		email string
		pass  string
		want  want
	}{
		{
			name:  "positive: correct credentials",
			email: "a@x.com",
			pass:  "pw1",
			want: want{
				statusCode: http.StatusFound,
				location:   "/urls",
				sessionSet: true,
			},
		},
		{
			name:  "negative: wrong password",
			email: "a@x.com",
			pass:  "wrong",
			want: want{
				statusCode: http.StatusForbidden,
			},
		},
		{
			name:  "negative: unknown email",
			email: "nouser@x.com",
			pass:  "pw1",
			want: want{
				statusCode: http.StatusForbidden,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			_, err := e.users.Create("a@x.com", "pw1")
			require.NoError(t, err)

			w := e.do(http.MethodPost, "/login", formOf("email", tt.email, "password", tt.pass), nil)

			assert.Equal(t, tt.want.statusCode, w.Code)
			if tt.want.location != "" {
				assert.Equal(t, tt.want.location, w.Header().Get("Location"))
			}
			if tt.want.sessionSet {
				assert.NotEmpty(t, w.Result().Cookies())
			}
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	e := newTestEnv(t)
	_, cookie := e.register(t, "a@x.com", "pw1")

	w := e.do(http.MethodPost, "/logout", nil, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge, "logout must expire the session cookie")
}

func TestAuthPagesBounceLoggedInUsers(t *testing.T) {
	e := newTestEnv(t)
	_, cookie := e.register(t, "a@x.com", "pw1")

	for _, path := range []string{"/register", "/login", "/"} {
		w := e.do(http.MethodGet, path, nil, cookie)

		assert.Equal(t, http.StatusFound, w.Code, "GET %s", path)
		assert.Equal(t, "/urls", w.Header().Get("Location"), "GET %s", path)
	}
}

func TestAuthPagesRenderForVisitors(t *testing.T) {
	e := newTestEnv(t)

	for _, path := range []string{"/register", "/login"} {
		w := e.do(http.MethodGet, path, nil, nil)

		assert.Equal(t, http.StatusOK, w.Code, "GET %s", path)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html", "GET %s", path)
	}

	// The home page sends visitors to the login form.
	w := e.do(http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestStaleSessionCookieIsUnauthenticated(t *testing.T) {
	e := newTestEnv(t)

	// Correctly signed cookie naming a user that does not exist.
	stale := e.cookieFor(t, "ghost-user-id")

	w := e.do(http.MethodGet, "/urls", nil, stale)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(http.MethodGet, "/", nil, stale)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
