package handlers

import (
	"net/http"
	"time"

	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/config"
)

// HealthHandler reports process liveness. The overall status stays "healthy"
// even when the model failed to load; model_status is the field to watch.
func HealthHandler(cfg *config.Config, pred Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		modelStatus := "loaded"
		if pred == nil {
			modelStatus = "failed"
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":       "healthy",
			"model_status": modelStatus,
			"model_path":   cfg.ModelPath,
			"timestamp":    time.Now().Format(time.RFC3339),
		})
	}
}

// ModelInfoHandler exposes the classifier metadata.
func ModelInfoHandler(pred Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pred == nil {
			writeError(w, http.StatusInternalServerError, "Model not loaded")
			return
		}
		writeJSON(w, http.StatusOK, pred.Info())
	}
}
