package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/alorle/acestream-panel/present"
)

//go:embed templates/panel.html
var templateFS embed.FS

var panelTemplate = template.Must(template.ParseFS(templateFS, "templates/panel.html"))

// CreatePanelHandler returns the handler for the panel page. The template
// only reads fields off the render contract; all resolution already
// happened in the presentation adapter.
func CreatePanelHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		s, err := deps.App.Settings(r.Context())
		if err != nil {
			deps.Log.Error("Loading settings failed", map[string]interface{}{"error": err.Error()})
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		page := present.Render(deps.App.Snapshot(), s)
		if len(deps.Cfg.Sources.Direct) > 0 {
			page.DefaultSourceURL = deps.Cfg.Sources.Direct[0]
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := panelTemplate.Execute(w, page); err != nil {
			deps.Log.Error("Rendering panel failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

// CreateListsHandler returns the handler that accepts the three source
// textareas, persists them, and rebuilds the catalog.
func CreateListsHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		s, err := deps.App.Settings(r.Context())
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		s.DirectSources = r.PostFormValue("direct_sources")
		s.MovieSources = r.PostFormValue("movie_sources")
		s.WebSources = r.PostFormValue("web_sources")

		if err := deps.App.SaveSettings(r.Context(), s); err != nil {
			deps.Log.Error("Saving source lists failed", map[string]interface{}{"error": err.Error()})
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		deps.App.Refresh(r.Context(), s)

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
