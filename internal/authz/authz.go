// Package authz holds the pure authorization decisions applied by the
// request handlers. Nothing here mutates state: each function maps a
// session identity and a resource to an allow/deny outcome.
package authz

import (
	"errors"

	"github.com/mlevan/tinyapp/internal/models"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("forbidden")
)

// UserFinder resolves a user id against the current registry.
type UserFinder interface {
	FindByID(id string) (models.User, bool)
}

// RequireSession resolves the session to a current account id. A
// session naming a user id that no longer (or never) exists — a stale
// or forged cookie — is treated as unauthenticated, not accepted on
// format alone.
func RequireSession(sess models.Session, users UserFinder) (string, error) {
	if !sess.Present() {
		return "", ErrUnauthenticated
	}
	if _, ok := users.FindByID(sess.UserID); !ok {
		return "", ErrUnauthenticated
	}
	return sess.UserID, nil
}

// CanViewURL allows access iff userID owns the record.
func CanViewURL(userID string, rec models.URLRecord) error {
	if rec.OwnerID != userID {
		return ErrForbidden
	}
	return nil
}

// CanMutateURL shares the view rule: only the owner may edit or
// delete a record.
func CanMutateURL(userID string, rec models.URLRecord) error {
	return CanViewURL(userID, rec)
}

// IsAlreadyAuthenticated reports whether the session resolves to a
// current account. Used to bounce logged-in users away from the login
// and registration pages.
func IsAlreadyAuthenticated(sess models.Session, users UserFinder) bool {
	_, err := RequireSession(sess, users)
	return err == nil
}
