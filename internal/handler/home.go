package handler

import (
	"net/http"

	"github.com/mlevan/tinyapp/internal/authz"
	"github.com/mlevan/tinyapp/internal/middleware"
)

// HomeHandler sends logged-in visitors to their URL list and everyone
// else to the login page.
func (h *Handler) HomeHandler(rw http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if authz.IsAlreadyAuthenticated(sess, h.users) {
		http.Redirect(rw, r, "/urls", http.StatusFound)
		return
	}
	http.Redirect(rw, r, "/login", http.StatusFound)
}
