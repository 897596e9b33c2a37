package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/config"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/imaging"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/knowledge"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/ledger"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/logger"
)

// ErrNoInput means neither a raw body nor a multipart "file" field arrived.
var ErrNoInput = errors.New("no usable input in request")

// UploadHandler accepts either a raw binary body (field-sensor path) or a
// multipart form field named "file" (web path), classifies the image, stores
// it, and appends a ledger record. Exactly one record per successful
// inference; failures write nothing.
func UploadHandler(cfg *config.Config, log *logger.Logger, pred Predictor, led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pred == nil {
			writeError(w, http.StatusInternalServerError, "Model not loaded. Please check server logs.")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxUploadSize<<20)

		contentType := r.Header.Get("Content-Type")
		log.Info("Received request - Content-Type: %s", contentType)

		if strings.HasPrefix(contentType, "multipart/") {
			handleFormUpload(w, r, cfg, log, pred, led)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Error reading request body: %v", err)
			writeError(w, http.StatusBadRequest, "Failed to read request body")
			return
		}

		if len(body) > 0 {
			handleSensorUpload(w, body, cfg, log, pred, led)
			return
		}

		log.Warning("Rejected upload: %v", ErrNoInput)
		writeError(w, http.StatusBadRequest, "No file uploaded")
	}
}

// handleSensorUpload processes raw JPEG bytes pushed by the field sensor.
func handleSensorUpload(w http.ResponseWriter, body []byte, cfg *config.Config, log *logger.Logger, pred Predictor, led *ledger.Ledger) {
	log.Info("Processing field sensor image data... (%d bytes)", len(body))

	tensor, looksJPEG, err := imaging.DecodeBytes(body)
	if !looksJPEG {
		log.Warning("Data doesn't appear to be a JPEG image")
	}
	if err != nil {
		log.Error("Error decoding sensor image: %v", err)
		writeError(w, http.StatusBadRequest, "Failed to process the image")
		return
	}

	result, err := pred.Predict(tensor)
	if err != nil {
		log.Error("Error classifying sensor image: %v", err)
		writeError(w, http.StatusBadRequest, "Failed to process the image")
		return
	}

	now := time.Now()
	filename := "sensor_capture_" + now.Format("20060102_150405") + ".jpg"

	if err := saveBytes(cfg.UploadDirectory, filename, body); err != nil {
		log.Error("Error saving sensor image: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save the image")
		return
	}
	log.Info("✅ Image saved as: %s", filename)

	led.Append(ledger.Record{
		Filename:   filename,
		Label:      result.Label,
		Confidence: result.Confidence,
		Time:       now,
		Source:     ledger.SourceFieldSensor,
	})

	log.Info("🏆 Model Prediction: %s (confidence: %.2f%%)", result.Label, result.Confidence*100)

	disease, err := knowledge.Lookup(result.Label)
	if err != nil {
		log.Error("Knowledge base lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Unknown class label")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "success",
		"label":      result.Label,
		"confidence": result.Confidence,
		"info":       disease.Info,
		"solution":   disease.Solution,
		"saved_as":   filename,
	})
}

// handleFormUpload processes a browser multipart upload.
func handleFormUpload(w http.ResponseWriter, r *http.Request, cfg *config.Config, log *logger.Logger, pred Predictor, led *ledger.Ledger) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if !allowedFile(header.Filename) {
		writeError(w, http.StatusBadRequest, "Invalid file format")
		return
	}

	filename := sanitizeFilename(header.Filename)
	savePath := filepath.Join(cfg.UploadDirectory, filename)

	if err := saveReader(savePath, file); err != nil {
		log.Error("Error saving uploaded file %s: %v", filename, err)
		writeError(w, http.StatusInternalServerError, "Failed to save the image")
		return
	}
	log.Info("Received file: %s, size: %d bytes", filename, header.Size)

	tensor, err := imaging.DecodeFile(savePath)
	if err != nil {
		log.Error("Error decoding uploaded image: %v", err)
		writeError(w, http.StatusBadRequest, "Failed to process the image")
		return
	}

	result, err := pred.Predict(tensor)
	if err != nil {
		log.Error("Error classifying uploaded image: %v", err)
		writeError(w, http.StatusBadRequest, "Failed to process the image")
		return
	}

	led.Append(ledger.Record{
		Filename:   filename,
		Label:      result.Label,
		Confidence: result.Confidence,
		Time:       time.Now(),
		Source:     ledger.SourceWebUpload,
	})

	log.Info("🏆 Model Prediction: %s (confidence: %.2f%%)", result.Label, result.Confidence*100)

	if !wantsJSON(r) {
		http.Redirect(w, r, "/result/"+filename, http.StatusFound)
		return
	}

	disease, err := knowledge.Lookup(result.Label)
	if err != nil {
		log.Error("Knowledge base lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Unknown class label")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "success",
		"label":      result.Label,
		"confidence": result.Confidence,
		"info":       disease.Info,
		"solution":   disease.Solution,
		"filename":   filename,
	})
}

func saveBytes(dir, filename string, data []byte) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, filename), data, 0644)
}

func saveReader(path string, src io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}
