package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlevan/tinyapp/internal/middleware"
)

func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Gzip)
	r.Use(middleware.WithSession(h.sessions))

	r.Get("/", h.HomeHandler)

	r.Get("/register", h.RegisterPageHandler)
	r.Post("/register", h.RegisterHandler)
	r.Get("/login", h.LoginPageHandler)
	r.Post("/login", h.LoginHandler)
	r.Post("/logout", h.LogoutHandler)

	r.Route("/urls", func(r chi.Router) {
		r.Get("/", h.ListURLsHandler)
		r.Post("/", h.CreateURLHandler)
		r.Get("/new", h.NewURLFormHandler)
		r.Get("/{shortCode}", h.ShowURLHandler)
		r.Post("/{shortCode}", h.UpdateURLHandler)
		r.Post("/{shortCode}/delete", h.DeleteURLHandler)
	})

	r.Get("/u/{shortCode}", h.RedirectHandler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	return r
}
