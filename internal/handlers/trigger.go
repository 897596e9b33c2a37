package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/logger"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/sensor"
)

// TriggerSensorHandler asks the field sensor to capture an image. The sensor
// uploads the capture to /upload on its own; this call only kicks it off.
func TriggerSensorHandler(client *sensor.Client, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply, err := client.Trigger(r.Context())
		if err != nil {
			var statusErr *sensor.StatusError
			switch {
			case errors.As(err, &statusErr):
				writeJSON(w, http.StatusBadRequest, map[string]interface{}{
					"status":  "error",
					"message": fmt.Sprintf("Field sensor returned error: %d", statusErr.StatusCode),
				})
			case errors.Is(err, sensor.ErrUnreachable):
				writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
					"status":  "error",
					"message": "Cannot connect to field sensor. Check if it's online and the address is correct.",
				})
			default:
				writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
					"status":  "error",
					"message": fmt.Sprintf("Error: %v", err),
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":         "success",
			"message":        "Field sensor camera triggered successfully!",
			"esp32_response": reply,
		})
	}
}
