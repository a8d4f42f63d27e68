package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mlevan/tinyapp/internal/authz"
	"github.com/mlevan/tinyapp/internal/middleware"
	"github.com/mlevan/tinyapp/internal/userstore"
)

// RegisterPageHandler renders the registration form. Logged-in users
// are bounced to their URL list instead.
func (h *Handler) RegisterPageHandler(rw http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if authz.IsAlreadyAuthenticated(sess, h.users) {
		http.Redirect(rw, r, "/urls", http.StatusFound)
		return
	}
	h.renderPage(rw, http.StatusOK, "register", pageData{})
}

// RegisterHandler creates an account from the submitted form, opens a
// session for it and redirects to the URL list.
func (h *Handler) RegisterHandler(rw http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(rw, r, http.StatusBadRequest, "Could not read the submitted form.")
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	if email == "" || password == "" {
		h.renderError(rw, r, http.StatusBadRequest,
			"Please include both a valid email and password.")
		return
	}

	userID, err := h.users.Create(email, password)
	if errors.Is(err, userstore.ErrDuplicateEmail) {
		h.renderError(rw, r, http.StatusBadRequest,
			"An account already exists for this email address.")
		return
	}
	if err != nil {
		h.logger.Error("Failed to create user", zap.Error(err))
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.sessions.Issue(rw, userID); err != nil {
		h.logger.Error("Failed to issue session", zap.Error(err))
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(rw, r, "/urls", http.StatusFound)
}

// LoginPageHandler renders the login form, bouncing logged-in users
// to their URL list.
func (h *Handler) LoginPageHandler(rw http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if authz.IsAlreadyAuthenticated(sess, h.users) {
		http.Redirect(rw, r, "/urls", http.StatusFound)
		return
	}
	h.renderPage(rw, http.StatusOK, "login", pageData{})
}

// LoginHandler verifies the submitted credentials and opens a session.
// Both an unknown email and a wrong password yield 403.
func (h *Handler) LoginHandler(rw http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(rw, r, http.StatusBadRequest, "Could not read the submitted form.")
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	userID, err := h.users.VerifyCredentials(email, password)
	switch {
	case errors.Is(err, userstore.ErrNoSuchAccount):
		h.renderError(rw, r, http.StatusForbidden,
			"There is no account associated with this email address.")
		return
	case errors.Is(err, userstore.ErrWrongPassword):
		h.renderError(rw, r, http.StatusForbidden,
			"The password you entered does not match the one associated with the provided email address.")
		return
	case err != nil:
		h.logger.Error("Failed to verify credentials", zap.Error(err))
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.sessions.Issue(rw, userID); err != nil {
		h.logger.Error("Failed to issue session", zap.Error(err))
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(rw, r, "/urls", http.StatusFound)
}

// LogoutHandler clears the session cookie and redirects to the login
// page. It never fails, logged in or not.
func (h *Handler) LogoutHandler(rw http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(rw)
	http.Redirect(rw, r, "/login", http.StatusFound)
}
