// Package session encodes the user identity into a signed cookie and
// decodes it back at the request boundary. Core logic never touches
// raw cookie bytes; it only ever sees the typed models.Session.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/mlevan/tinyapp/internal/models"
)

const sessionTTL = 24 * time.Hour

// Claims is the JWT payload carried by the session cookie.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Manager issues, clears and verifies session cookies. The cookie
// value is an HS256-signed JWT whose only custom claim is the user id.
type Manager struct {
	cookieName string
	secret     []byte
	logger     *zap.Logger
}

func NewManager(cookieName, secret string, logger *zap.Logger) *Manager {
	return &Manager{
		cookieName: cookieName,
		secret:     []byte(secret),
		logger:     logger,
	}
}

// Issue signs a token for userID and sets it as the session cookie.
func (m *Manager) Issue(w http.ResponseWriter, userID string) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    signed,
		Path:     "/",
		Expires:  time.Now().Add(sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// FromRequest decodes the session cookie into a typed session. A
// missing, malformed, tampered or expired cookie yields the zero
// Session; verification failures are never surfaced to the client.
func (m *Manager) FromRequest(r *http.Request) models.Session {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return models.Session{}
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		m.logger.Debug("Rejected session cookie", zap.Error(err))
		return models.Session{}
	}

	return models.Session{UserID: claims.UserID}
}
