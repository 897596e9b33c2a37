package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/config"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/ledger"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/logger"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/sensor"
	ws "github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/services/websocket"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/web"
)

func setupTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		ModelPath:       "models/best_model.onnx",
		UploadDirectory: t.TempDir(),
		DemoDirectory:   t.TempDir(),
		LogDirectory:    t.TempDir(),
		MaxUploadSize:   10,
	}
	log := logger.NewLogger(cfg)

	return SetupRoutes(Deps{
		Config:    cfg,
		Logger:    log,
		Predictor: nil, // model failed to load
		Ledger:    ledger.New(),
		Sensor:    sensor.NewClient("127.0.0.1:1", 1*time.Second, log),
		Hub:       ws.NewHubService(log),
		Templates: web.Templates(),
	})
}

func TestRoutes_IndexPage(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET / returned %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Maize") {
		t.Error("Index page missing title")
	}
}

func TestRoutes_UnknownPathNotFound(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /nope returned %d, expected 404", rec.Code)
	}
}

func TestRoutes_HealthReportsFailedModel(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health returned %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"status":"healthy"`) || !strings.Contains(body, `"model_status":"failed"`) {
		t.Errorf("Unexpected health payload: %s", body)
	}
}

func TestRoutes_UploadRefusedWithoutModel(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("irrelevant")))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("POST /upload returned %d, expected 500 with no model", rec.Code)
	}
}

func TestRoutes_UploadRejectsGet(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/upload", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /upload returned %d, expected 405", rec.Code)
	}
}
