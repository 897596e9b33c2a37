package knowledge

import "testing"

func TestLookup_AllLabels(t *testing.T) {
	for _, label := range Labels() {
		d, err := Lookup(label)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", label, err)
		}

		if d.Info == "" {
			t.Errorf("Lookup(%q): empty Info", label)
		}
		if d.Solution == "" {
			t.Errorf("Lookup(%q): empty Solution", label)
		}
		if len(d.Symptoms) == 0 {
			t.Errorf("Lookup(%q): no symptoms", label)
		}
		if len(d.Treatments) == 0 {
			t.Errorf("Lookup(%q): no treatments", label)
		}
	}
}

func TestLookup_UnknownLabel(t *testing.T) {
	_, err := Lookup(Label("Powdery Mildew"))
	if err == nil {
		t.Fatal("Expected error for unknown label, got nil")
	}

	if _, ok := err.(*ErrUnknownLabel); !ok {
		t.Errorf("Expected *ErrUnknownLabel, got %T", err)
	}
}

func TestLookup_HealthySolution(t *testing.T) {
	d, err := Lookup(Healthy)
	if err != nil {
		t.Fatalf("Lookup(Healthy) failed: %v", err)
	}

	expected := "No action required. Maintain current good management practices and continue regular monitoring."
	if d.Solution != expected {
		t.Errorf("Healthy solution = %q, expected %q", d.Solution, expected)
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		input   string
		want    Label
		wantErr bool
	}{
		{"Blight", Blight, false},
		{"Common Rust", CommonRust, false},
		{"Gray Leaf Spot", GrayLeafSpot, false},
		{"Healthy", Healthy, false},
		{"healthy", "", true},
		{"", "", true},
		{"Rust", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLabel(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLabel(%q): expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLabel(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLabel(%q) = %q, expected %q", tt.input, got, tt.want)
		}
	}
}

func TestLabels_Order(t *testing.T) {
	labels := Labels()
	if len(labels) != 4 {
		t.Fatalf("Expected 4 labels, got %d", len(labels))
	}

	// Training order matters: it is the order of the model's output row.
	expected := []Label{Blight, CommonRust, GrayLeafSpot, Healthy}
	for i, l := range expected {
		if labels[i] != l {
			t.Errorf("Labels()[%d] = %q, expected %q", i, labels[i], l)
		}
	}
}
