package handlers

import (
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/config"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/imaging"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/knowledge"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/ledger"
	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/logger"
)

// demoFiles are the fixed sample images (one per class) classified on the
// dashboard when present on disk.
var demoFiles = []string{"healthy.jpg", "blight.jpg", "grayleaf.jpg", "rust.jpg"}

// DemoResult is one dashboard sample classification. Confidence here is a
// percentage for display.
type DemoResult struct {
	Filename   string
	Label      knowledge.Label
	Confidence float64
}

// IndexHandler serves the main upload page.
func IndexHandler(tmpl *template.Template, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := tmpl.ExecuteTemplate(w, "index.html", nil); err != nil {
			log.Error("Error rendering index: %v", err)
		}
	}
}

// DashboardHandler classifies the demo set and renders it with the ledger
// history. Read-only: demo classifications are not appended to the ledger.
func DashboardHandler(cfg *config.Config, log *logger.Logger, pred Predictor, led *ledger.Ledger, tmpl *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var demoResults []DemoResult
		if pred != nil {
			for _, f := range demoFiles {
				path := filepath.Join(cfg.DemoDirectory, f)
				if _, err := os.Stat(path); err != nil {
					continue
				}

				tensor, err := imaging.DecodeFile(path)
				if err != nil {
					log.Error("Error decoding demo image %s: %v", f, err)
					continue
				}
				result, err := pred.Predict(tensor)
				if err != nil {
					log.Error("Error classifying demo image %s: %v", f, err)
					continue
				}

				demoResults = append(demoResults, DemoResult{
					Filename:   f,
					Label:      result.Label,
					Confidence: result.Confidence * 100,
				})
			}
		}

		data := struct {
			DemoResults []DemoResult
			History     []ledger.Record
		}{
			DemoResults: demoResults,
			History:     led.ListRecent(),
		}

		if err := tmpl.ExecuteTemplate(w, "dashboard.html", data); err != nil {
			log.Error("Error rendering dashboard: %v", err)
		}
	}
}

// HistoryHandler renders the full ledger, newest first.
func HistoryHandler(led *ledger.Ledger, tmpl *template.Template, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := struct {
			Items []ledger.Record
		}{
			Items: led.ListRecent(),
		}

		if err := tmpl.ExecuteTemplate(w, "history.html", data); err != nil {
			log.Error("Error rendering history: %v", err)
		}
	}
}

// ResultHandler renders the result page for one stored image, or sends the
// caller back to the dashboard when no ledger entry matches.
func ResultHandler(led *ledger.Ledger, tmpl *template.Template, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := r.PathValue("filename")

		record, ok := led.FindByFilename(filename)
		if !ok {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}

		disease, err := knowledge.Lookup(record.Label)
		if err != nil {
			log.Error("Knowledge base lookup failed for %s: %v", filename, err)
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}

		data := struct {
			ledger.Record
			Disease knowledge.Disease
		}{
			Record:  record,
			Disease: disease,
		}

		if err := tmpl.ExecuteTemplate(w, "result.html", data); err != nil {
			log.Error("Error rendering result page: %v", err)
		}
	}
}
