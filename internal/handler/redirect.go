package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RedirectHandler follows a short code to its long URL. This is the
// one route open to everyone; no session is consulted.
func (h *Handler) RedirectHandler(rw http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "shortCode")

	rec, ok := h.urls.Get(code)
	if !ok {
		http.Error(rw,
			"The short URL you are trying to access does not correspond with a long URL at this time.",
			http.StatusNotFound)
		return
	}

	http.Redirect(rw, r, rec.LongURL, http.StatusFound)
}
