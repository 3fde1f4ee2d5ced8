package domain

import (
	"testing"
	"time"
)

func TestParseIntensity(t *testing.T) {
	for _, value := range []string{"minimum", "low", "normal", "high", "maximum", "intervals"} {
		got, err := ParseIntensity(value)
		if err != nil {
			t.Fatalf("parse %q: %v", value, err)
		}
		if string(got) != value {
			t.Fatalf("parse %q: got %q", value, got)
		}
	}

	if got, err := ParseIntensity("  High "); err != nil || got != IntensityHigh {
		t.Fatalf("expected case and space insensitive parse, got %q, %v", got, err)
	}
	if _, err := ParseIntensity("extreme"); err == nil {
		t.Fatalf("expected error for unknown intensity")
	}
}

func TestExerciseValidate(t *testing.T) {
	sportType := &SportType{ID: 1, Name: "Cycling", Color: "#0000ff"}
	subType := &SportSubType{ID: 1, Name: "MTB"}
	valid := Exercise{
		SportType:    sportType,
		SportSubType: subType,
		DateTime:     time.Date(2025, 7, 15, 9, 30, 0, 0, time.UTC),
		Intensity:    IntensityNormal,
		Distance:     42,
		AvgSpeed:     20,
		Duration:     7560,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid exercise rejected: %v", err)
	}

	cases := map[string]func(e *Exercise){
		"missing sport type": func(e *Exercise) { e.SportType = nil },
		"missing sub-type":   func(e *Exercise) { e.SportSubType = nil },
		"zero date":          func(e *Exercise) { e.DateTime = time.Time{} },
		"bad intensity":      func(e *Exercise) { e.Intensity = "leisurely" },
		"negative distance":  func(e *Exercise) { e.Distance = -1 },
		"negative duration":  func(e *Exercise) { e.Duration = -1 },
	}
	for name, mutate := range cases {
		e := valid
		mutate(&e)
		if err := e.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestNoteAndWeightValidate(t *testing.T) {
	now := time.Now()

	if err := (&Note{DateTime: now, Comment: "rest day"}).Validate(); err != nil {
		t.Fatalf("valid note rejected: %v", err)
	}
	if err := (&Note{DateTime: now}).Validate(); err == nil {
		t.Fatalf("expected error for empty note comment")
	}
	if err := (&Note{Comment: "rest day"}).Validate(); err == nil {
		t.Fatalf("expected error for zero note date")
	}

	if err := (&Weight{DateTime: now, Value: 80.5}).Validate(); err != nil {
		t.Fatalf("valid weight rejected: %v", err)
	}
	if err := (&Weight{DateTime: now, Value: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero weight value")
	}
}
