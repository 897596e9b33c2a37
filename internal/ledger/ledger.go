package ledger

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/knowledge"
)

// Source tags where an inference request came from.
type Source string

const (
	SourceWebUpload   Source = "Web Upload"
	SourceFieldSensor Source = "ESP32"
)

// Record is one inference event. Created exactly once per successful
// classification and never mutated afterwards.
type Record struct {
	Filename   string          `json:"filename"`
	Label      knowledge.Label `json:"label"`
	Confidence float64         `json:"confidence"`
	Time       time.Time       `json:"-"`
	Source     Source          `json:"source"`
}

// MarshalJSON formats the timestamp with second precision.
func (r Record) MarshalJSON() ([]byte, error) {
	type Alias Record
	return json.Marshal(&struct {
		Time string `json:"time"`
		Alias
	}{
		Time:  r.Time.Format("2006-01-02 15:04:05"),
		Alias: (Alias)(r),
	})
}

// Ledger is the process-wide append-only prediction history. It starts empty,
// grows unboundedly, and is never persisted.
type Ledger struct {
	mu        sync.Mutex
	records   []Record
	observers []func(Record)
}

func New() *Ledger {
	return &Ledger{
		records: make([]Record, 0),
	}
}

// OnAppend registers an observer invoked after every append. Register before
// the server starts taking requests; registration is not itself synchronized
// with appends in flight.
func (l *Ledger) OnAppend(fn func(Record)) {
	l.observers = append(l.observers, fn)
}

// Append adds a record to the end of the history. No deduplication: a repeated
// filename yields a second record, both remain.
func (l *Ledger) Append(r Record) {
	l.mu.Lock()
	l.records = append(l.records, r)
	l.mu.Unlock()

	for _, fn := range l.observers {
		fn(r)
	}
}

// ListRecent returns a copy of the history, newest first.
func (l *Ledger) ListRecent() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Record, len(l.records))
	for i, r := range l.records {
		out[len(l.records)-1-i] = r
	}
	return out
}

// FindByFilename scans in insertion order and returns the first match, i.e.
// the oldest record for that filename. Display views iterate newest-first
// instead; the mismatch is long-standing behavior and kept as is.
func (l *Ledger) FindByFilename(name string) (Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range l.records {
		if r.Filename == name {
			return r, true
		}
	}
	return Record{}, false
}

// Len reports the number of records.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
