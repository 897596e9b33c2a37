package routes

import (
	"html/template"
	"net/http"

	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/config"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/handlers"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/ledger"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/logger"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/sensor"
	ws "github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/services/websocket"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Config    *config.Config
	Logger    *logger.Logger
	Predictor handlers.Predictor
	Ledger    *ledger.Ledger
	Sensor    *sensor.Client
	Hub       *ws.HubService
	Templates *template.Template
}

// SetupRoutes registers page routes, the inference API, and static file
// serving for uploaded and demo images.
func SetupRoutes(d Deps) http.Handler {
	mux := http.NewServeMux()

	// Stored images and assets
	mux.Handle("GET /static/uploads/", http.StripPrefix("/static/uploads/", http.FileServer(http.Dir(d.Config.UploadDirectory))))
	mux.Handle("GET /static/demo/", http.StripPrefix("/static/demo/", http.FileServer(http.Dir(d.Config.DemoDirectory))))

	// Pages
	mux.HandleFunc("GET /{$}", handlers.IndexHandler(d.Templates, d.Logger))
	mux.HandleFunc("GET /dashboard", handlers.DashboardHandler(d.Config, d.Logger, d.Predictor, d.Ledger, d.Templates))
	mux.HandleFunc("GET /history", handlers.HistoryHandler(d.Ledger, d.Templates, d.Logger))
	mux.HandleFunc("GET /result/{filename}", handlers.ResultHandler(d.Ledger, d.Templates, d.Logger))

	// Inference API
	mux.HandleFunc("POST /upload", handlers.UploadHandler(d.Config, d.Logger, d.Predictor, d.Ledger))
	mux.HandleFunc("POST /trigger_esp32", handlers.TriggerSensorHandler(d.Sensor, d.Logger))
	mux.HandleFunc("GET /health", handlers.HealthHandler(d.Config, d.Predictor))
	mux.HandleFunc("GET /model_info", handlers.ModelInfoHandler(d.Predictor))

	// Live prediction feed
	mux.HandleFunc("GET /api/events", handlers.EventsHandler(d.Hub, d.Logger))

	return mux
}
