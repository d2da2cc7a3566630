package json

import (
	stdjson "encoding/json"
	"testing"
)

type testReport struct {
	Output  string `json:"output" default:"resources/app.ico"`
	Bytes   int64  `json:"bytes"`
	Entries int    `json:"entries" default:"1"`
}

func TestMarshalAppliesDefaults(t *testing.T) {
	report := &testReport{Bytes: 4096}

	data, err := Marshal(report)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	if report.Output != "resources/app.ico" {
		t.Fatalf("expected default Output, got %q", report.Output)
	}
	if report.Entries != 1 {
		t.Fatalf("expected default Entries=1, got %d", report.Entries)
	}

	var decoded testReport
	if err := stdjson.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("encoded JSON should be valid, got error: %v", err)
	}
	if decoded != *report {
		t.Fatalf("expected marshaled JSON to match struct with defaults applied, got %+v", decoded)
	}
}

func TestUnmarshalAppliesDefaultsForMissingFields(t *testing.T) {
	input := []byte(`{"bytes":123}`)

	var report testReport
	if err := Unmarshal(input, &report); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if report.Output != "resources/app.ico" {
		t.Fatalf("expected default Output, got %q", report.Output)
	}
	if report.Bytes != 123 {
		t.Fatalf("expected Bytes from JSON to be 123, got %d", report.Bytes)
	}
}
