package handler

import (
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/mlevan/tinyapp/internal/models"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var pageNames = []string{
	"urls_index",
	"urls_new",
	"urls_show",
	"register",
	"login",
	"error",
}

func parseTemplates() map[string]*template.Template {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		pages[name] = template.Must(template.ParseFS(
			templateFS,
			"templates/layout.gohtml",
			"templates/"+name+".gohtml",
		))
	}
	return pages
}

// pageData carries everything the templates may need: the logged-in
// user's email for the header plus page-specific fields.
type pageData struct {
	UserEmail string
	Message   string
	URLs      map[string]models.URLRecord
	Record    models.URLRecord
	ShortURL  string
}

func (h *Handler) renderPage(rw http.ResponseWriter, status int, page string, data pageData) {
	tmpl, ok := h.pages[page]
	if !ok {
		h.logger.Error("Unknown page template", zap.String("page", page))
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	rw.WriteHeader(status)

	if err := tmpl.ExecuteTemplate(rw, page+".gohtml", data); err != nil {
		h.logger.Error("Failed to render page",
			zap.String("page", page),
			zap.Error(err))
	}
}

// renderError renders the error page with a user-facing message.
func (h *Handler) renderError(rw http.ResponseWriter, r *http.Request, status int, message string) {
	data := pageData{Message: message}
	if user, ok := h.currentUser(r); ok {
		data.UserEmail = user.Email
	}
	h.renderPage(rw, status, "error", data)
}
