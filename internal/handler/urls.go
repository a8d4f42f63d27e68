package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mlevan/tinyapp/internal/authz"
	"github.com/mlevan/tinyapp/internal/middleware"
	"github.com/mlevan/tinyapp/internal/urlstore"
)

const loginPrompt = "Please log in to access this page."

// ListURLsHandler renders the URL list of the logged-in user. Other
// users' records are never included.
func (h *Handler) ListURLsHandler(rw http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	userID, err := authz.RequireSession(sess, h.users)
	if err != nil {
		h.renderError(rw, r, http.StatusUnauthorized, loginPrompt)
		return
	}

	user, _ := h.users.FindByID(userID)

	h.renderPage(rw, http.StatusOK, "urls_index", pageData{
		UserEmail: user.Email,
		URLs:      h.urls.ListByOwner(userID),
	})
}

// NewURLFormHandler renders the creation form; visitors without a
// session are redirected to the login page.
func (h *Handler) NewURLFormHandler(rw http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	userID, err := authz.RequireSession(sess, h.users)
	if err != nil {
		http.Redirect(rw, r, "/login", http.StatusFound)
		return
	}

	user, _ := h.users.FindByID(userID)

	h.renderPage(rw, http.StatusOK, "urls_new", pageData{UserEmail: user.Email})
}

// CreateURLHandler shortens the submitted long URL for the logged-in
// user and redirects to the new record's page. A long URL anyone has
// already shortened is rejected, before the session check.
func (h *Handler) CreateURLHandler(rw http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(rw, r, http.StatusBadRequest, "Could not read the submitted form.")
		return
	}

	longURL := r.PostFormValue("longURL")

	if h.urls.HasLongURL(longURL) {
		h.renderError(rw, r, http.StatusBadRequest, "URL already exists.")
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	userID, err := authz.RequireSession(sess, h.users)
	if err != nil {
		h.renderError(rw, r, http.StatusUnauthorized,
			"You must be logged in to a valid account to create short URLs.")
		return
	}

	code, err := h.urls.Create(longURL, userID)
	if errors.Is(err, urlstore.ErrDuplicateLongURL) {
		h.renderError(rw, r, http.StatusBadRequest, "URL already exists.")
		return
	}
	if err != nil {
		h.logger.Error("Failed to create short URL", zap.Error(err))
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(rw, r, "/urls/"+code, http.StatusFound)
}

// ShowURLHandler renders a single record to its owner.
func (h *Handler) ShowURLHandler(rw http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	userID, err := authz.RequireSession(sess, h.users)
	if err != nil {
		h.renderError(rw, r, http.StatusUnauthorized, loginPrompt)
		return
	}

	code := chi.URLParam(r, "shortCode")
	rec, ok := h.urls.Get(code)
	if !ok {
		h.renderError(rw, r, http.StatusNotFound,
			"The short URL you entered does not correspond with a long URL at this time.")
		return
	}

	if err := authz.CanViewURL(userID, rec); err != nil {
		h.renderError(rw, r, http.StatusForbidden,
			"You are not authorized to access this URL.")
		return
	}

	user, _ := h.users.FindByID(userID)
	shortURL, _ := url.JoinPath(h.baseURL, "u", code)

	h.renderPage(rw, http.StatusOK, "urls_show", pageData{
		UserEmail: user.Email,
		Record:    rec,
		ShortURL:  shortURL,
	})
}

// UpdateURLHandler overwrites the long URL of a record owned by the
// logged-in user and redirects back to the list. An unknown code and
// a foreign record are both reported as 403.
func (h *Handler) UpdateURLHandler(rw http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	userID, err := authz.RequireSession(sess, h.users)
	if err != nil {
		h.renderError(rw, r, http.StatusUnauthorized, loginPrompt)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderError(rw, r, http.StatusBadRequest, "Could not read the submitted form.")
		return
	}

	code := chi.URLParam(r, "shortCode")
	newLongURL := r.PostFormValue("newLongURL")

	if err := h.urls.UpdateLongURL(code, newLongURL, userID); err != nil {
		h.renderError(rw, r, http.StatusForbidden,
			"You are not authorized to modify this URL.")
		return
	}

	http.Redirect(rw, r, "/urls", http.StatusFound)
}

// DeleteURLHandler removes a record owned by the logged-in user and
// redirects back to the list. Missing session, unknown code and
// foreign record all collapse into 401.
func (h *Handler) DeleteURLHandler(rw http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	userID, err := authz.RequireSession(sess, h.users)
	if err != nil {
		h.renderError(rw, r, http.StatusUnauthorized,
			"You do not have authorization to delete this short URL.")
		return
	}

	if err := h.urls.Delete(chi.URLParam(r, "shortCode"), userID); err != nil {
		h.renderError(rw, r, http.StatusUnauthorized,
			"You do not have authorization to delete this short URL.")
		return
	}

	http.Redirect(rw, r, "/urls", http.StatusFound)
}
