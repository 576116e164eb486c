package handlers

import (
	"errors"
	"net/http"

	"github.com/alorle/acestream-panel/internal/settings"
)

// CreateSettingsHandler returns the handler for the engine settings form.
// A rejected save leaves the stored settings untouched.
func CreateSettingsHandler(deps Dependencies) http.HandlerFunc {
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

		s.Protocol = r.PostFormValue("protocol")
		s.Server = r.PostFormValue("server")
		s.ConAcexy = r.PostFormValue("con_acexy") != ""
		s.ExportSTRM = r.PostFormValue("export_strm") != ""

		if err := deps.App.SaveSettings(r.Context(), s); err != nil {
			if errors.Is(err, settings.ErrInvalidProtocol) || errors.Is(err, settings.ErrInvalidServer) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			deps.Log.Error("Saving settings failed", map[string]interface{}{"error": err.Error()})
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
