package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/sensor"
)

func triggerHandler(t *testing.T, sensorHandler http.HandlerFunc) http.HandlerFunc {
	t.Helper()

	server := httptest.NewServer(sensorHandler)
	t.Cleanup(server.Close)

	cfg := newTestConfig(t)
	log := newTestLogger(t, cfg)
	client := sensor.NewClient(strings.TrimPrefix(server.URL, "http://"), 2*time.Second, log)
	return TriggerSensorHandler(client, log)
}

func TestTrigger_Success(t *testing.T) {
	handler := triggerHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"capturing","resolution":"UXGA"}`))
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/trigger_esp32", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp struct {
		Status   string          `json:"status"`
		Message  string          `json:"message"`
		Response json.RawMessage `json:"esp32_response"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}

	if resp.Status != "success" {
		t.Errorf("status = %q", resp.Status)
	}
	if !strings.Contains(string(resp.Response), "capturing") {
		t.Errorf("esp32_response missing sensor payload: %s", resp.Response)
	}
}

func TestTrigger_SensorErrorStatus(t *testing.T) {
	handler := triggerHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/trigger_esp32", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for a bad sensor status, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if resp["status"] != "error" {
		t.Errorf("status = %q", resp["status"])
	}
	if !strings.Contains(resp["message"], "418") {
		t.Errorf("message should embed the sensor status code, got %q", resp["message"])
	}
}

func TestTrigger_SensorUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := strings.TrimPrefix(server.URL, "http://")
	server.Close()

	cfg := newTestConfig(t)
	log := newTestLogger(t, cfg)
	handler := TriggerSensorHandler(sensor.NewClient(addr, 1*time.Second, log), log)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/trigger_esp32", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500 for an unreachable sensor, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if resp["status"] != "error" {
		t.Errorf("status = %q", resp["status"])
	}
}
