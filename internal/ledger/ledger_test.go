package ledger

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/knowledge"
)

func record(filename string, label knowledge.Label) Record {
	return Record{
		Filename:   filename,
		Label:      label,
		Confidence: 0.9,
		Time:       time.Now(),
		Source:     SourceWebUpload,
	}
}

func TestListRecent_NewestFirst(t *testing.T) {
	l := New()

	for i := 0; i < 5; i++ {
		l.Append(record(fmt.Sprintf("leaf_%d.jpg", i), knowledge.Healthy))
	}

	recent := l.ListRecent()
	if len(recent) != 5 {
		t.Fatalf("Expected 5 records, got %d", len(recent))
	}

	for i, r := range recent {
		expected := fmt.Sprintf("leaf_%d.jpg", 4-i)
		if r.Filename != expected {
			t.Errorf("ListRecent()[%d].Filename = %q, expected %q", i, r.Filename, expected)
		}
	}
}

func TestFindByFilename_OldestMatchWins(t *testing.T) {
	l := New()

	first := record("capture.jpg", knowledge.Blight)
	second := record("capture.jpg", knowledge.Healthy)
	l.Append(first)
	l.Append(second)

	found, ok := l.FindByFilename("capture.jpg")
	if !ok {
		t.Fatal("Expected to find a record")
	}

	// Lookup scans oldest-first while display views go newest-first; the
	// oldest record wins here.
	if found.Label != knowledge.Blight {
		t.Errorf("FindByFilename returned label %q, expected the older %q", found.Label, knowledge.Blight)
	}
}

func TestFindByFilename_Missing(t *testing.T) {
	l := New()
	l.Append(record("present.jpg", knowledge.Healthy))

	if _, ok := l.FindByFilename("doesnotexist.jpg"); ok {
		t.Error("Expected no match for unknown filename")
	}
}

func TestAppend_Concurrent(t *testing.T) {
	l := New()

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Append(record(fmt.Sprintf("leaf_%d.jpg", i), knowledge.CommonRust))
		}(i)
	}
	wg.Wait()

	if l.Len() != n {
		t.Errorf("Expected %d records after concurrent appends, got %d", n, l.Len())
	}
}

func TestOnAppend_ObserverSeesEveryRecord(t *testing.T) {
	l := New()

	var seen []string
	l.OnAppend(func(r Record) {
		seen = append(seen, r.Filename)
	})

	l.Append(record("a.jpg", knowledge.Healthy))
	l.Append(record("b.jpg", knowledge.Blight))

	if len(seen) != 2 || seen[0] != "a.jpg" || seen[1] != "b.jpg" {
		t.Errorf("Observer saw %v, expected [a.jpg b.jpg]", seen)
	}
}

func TestRecord_MarshalJSON(t *testing.T) {
	r := Record{
		Filename:   "leaf.png",
		Label:      knowledge.GrayLeafSpot,
		Confidence: 0.8765,
		Time:       time.Date(2025, 6, 15, 14, 30, 5, 0, time.UTC),
		Source:     SourceFieldSensor,
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	s := string(data)
	if !strings.Contains(s, `"time":"2025-06-15 14:30:05"`) {
		t.Errorf("Expected second-precision timestamp, got: %s", s)
	}
	if !strings.Contains(s, `"source":"ESP32"`) {
		t.Errorf("Expected ESP32 source tag, got: %s", s)
	}
	if !strings.Contains(s, `"label":"Gray Leaf Spot"`) {
		t.Errorf("Expected label in JSON, got: %s", s)
	}
}
