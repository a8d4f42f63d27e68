// Package handler wires the HTTP surface: routing, form decoding and
// the mapping of store and authorization failures onto status codes.
package handler

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/mlevan/tinyapp/internal/middleware"
	"github.com/mlevan/tinyapp/internal/models"
	"github.com/mlevan/tinyapp/internal/session"
	"github.com/mlevan/tinyapp/internal/urlstore"
	"github.com/mlevan/tinyapp/internal/userstore"
)

type Handler struct {
	users    *userstore.Store
	urls     *urlstore.Store
	sessions *session.Manager
	baseURL  string
	pages    map[string]*template.Template
	logger   *zap.Logger
}

func New(
	users *userstore.Store,
	urls *urlstore.Store,
	sessions *session.Manager,
	baseURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		users:    users,
		urls:     urls,
		sessions: sessions,
		baseURL:  baseURL,
		pages:    parseTemplates(),
		logger:   logger,
	}
}

// currentUser resolves the request's session to a current account,
// if any.
func (h *Handler) currentUser(r *http.Request) (models.User, bool) {
	sess := middleware.SessionFromContext(r.Context())
	if !sess.Present() {
		return models.User{}, false
	}
	return h.users.FindByID(sess.UserID)
}
