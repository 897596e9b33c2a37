package app

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/classifier"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/config"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/handlers"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/ledger"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/logger"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/routes"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/sensor"
	ws "github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/services/websocket"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/web"
)

type App struct {
	config     *config.Config
	logger     *logger.Logger
	classifier *classifier.Classifier
	ledger     *ledger.Ledger
	hub        *ws.HubService
	sensor     *sensor.Client
}

// NewApp wires the application. A model that fails to load is logged and left
// nil; the server still starts and inference endpoints refuse requests.
func NewApp() *App {
	cfg := config.Load()
	log := logger.NewLogger(cfg)

	for _, dir := range []string{cfg.UploadDirectory, cfg.DemoDirectory} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Error("Failed to create directory %s: %v", dir, err)
		}
	}

	clf, err := classifier.New(cfg.ModelPath, cfg.MetadataPath, log)
	if err != nil {
		log.Error("Error loading model: %v", err)
		clf = nil
	}

	led := ledger.New()
	hub := ws.NewHubService(log)
	led.OnAppend(hub.BroadcastRecord)

	sensorClient := sensor.NewClient(cfg.SensorAddress, time.Duration(cfg.SensorTimeout)*time.Second, log)

	return &App{
		config:     cfg,
		logger:     log,
		classifier: clf,
		ledger:     led,
		hub:        hub,
		sensor:     sensorClient,
	}
}

func (a *App) Run() error {
	go a.hub.Run()

	// A nil *Classifier must become a nil interface, not a non-nil interface
	// holding a nil pointer.
	var pred handlers.Predictor
	if a.classifier != nil {
		pred = a.classifier
	}

	router := routes.SetupRoutes(routes.Deps{
		Config:    a.config,
		Logger:    a.logger,
		Predictor: pred,
		Ledger:    a.ledger,
		Sensor:    a.sensor,
		Hub:       a.hub,
		Templates: web.Templates(),
	})

	a.logger.Info("🚀 Maize Disease Detection Server")
	a.logger.Info("📍 URL: http://localhost:%d", a.config.Port)
	a.logger.Info("📁 Uploads: %s", a.config.UploadDirectory)
	a.logger.Info("📁 Demo images: %s", a.config.DemoDirectory)
	a.logger.Info("🤖 Model: %s", a.config.ModelPath)
	if a.classifier != nil {
		a.logger.Info("✅ Model loaded successfully! Ready to serve detections.")
	} else {
		a.logger.Warning("❌ Model failed to load. Check the model path and file.")
	}

	return http.ListenAndServe(fmt.Sprintf(":%d", a.config.Port), router)
}

// Close releases the classifier session.
func (a *App) Close() {
	if a.classifier != nil {
		a.classifier.Close()
	}
}
