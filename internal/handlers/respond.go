package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/classifier"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/imaging"
)

// Predictor is the classifier surface the handlers need. A nil Predictor
// means the model failed to load at startup; inference endpoints then refuse
// requests with a service-level error.
type Predictor interface {
	Predict(t *imaging.Tensor) (classifier.Prediction, error)
	Info() classifier.ModelInfo
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// wantsJSON decides whether an upload response should be JSON or a redirect
// to the result page. AJAX callers and the field sensor get JSON; plain form
// posts from the browser get redirected.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return r.URL.Query().Get("ajax") == "1"
}

// allowedFile reports whether the filename carries an accepted image
// extension. Checked before any decode attempt.
func allowedFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// sanitizeFilename strips path components and anything outside a conservative
// character set, so user-supplied names are safe to join onto the upload
// directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return "upload"
	}
	return cleaned
}
