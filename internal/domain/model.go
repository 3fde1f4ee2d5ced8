package domain

import (
	"fmt"
	"strings"
	"time"
)

// IDObject is the identity capability shared by every stored entity. An
// identity is a positive integer, assigned once and never changed afterwards.
// Zero means "not stored yet"; the store assigns an identity on create.
type IDObject interface {
	GetID() int64
}

// Intensity categorizes how hard an exercise was.
type Intensity string

const (
	IntensityMinimum   Intensity = "minimum"
	IntensityLow       Intensity = "low"
	IntensityNormal    Intensity = "normal"
	IntensityHigh      Intensity = "high"
	IntensityMaximum   Intensity = "maximum"
	IntensityIntervals Intensity = "intervals"
)

// ParseIntensity maps a stored or user-supplied value to an Intensity.
func ParseIntensity(value string) (Intensity, error) {
	switch Intensity(strings.ToLower(strings.TrimSpace(value))) {
	case IntensityMinimum:
		return IntensityMinimum, nil
	case IntensityLow:
		return IntensityLow, nil
	case IntensityNormal:
		return IntensityNormal, nil
	case IntensityHigh:
		return IntensityHigh, nil
	case IntensityMaximum:
		return IntensityMaximum, nil
	case IntensityIntervals:
		return IntensityIntervals, nil
	}
	return "", fmt.Errorf("unknown intensity %q", value)
}

// SportType is the root of the reference data: it owns its sub-types and its
// equipment, and exercises point at all three.
type SportType struct {
	ID        int64
	Name      string
	Color     string
	FitID     *int64
	SubTypes  SportSubTypeList
	Equipment EquipmentList
}

func (s *SportType) GetID() int64 { return s.ID }

func (s *SportType) Validate() error {
	if s.ID < 0 {
		return fmt.Errorf("sport type id must not be negative")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("sport type name is required")
	}
	return nil
}

// SportSubType belongs to exactly one SportType. Its lifecycle is bound to
// the parent; it is never stored or loaded on its own.
type SportSubType struct {
	ID    int64
	Name  string
	FitID *int64
}

func (s *SportSubType) GetID() int64 { return s.ID }

func (s *SportSubType) Validate() error {
	if s.ID < 0 {
		return fmt.Errorf("sport sub-type id must not be negative")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("sport sub-type name is required")
	}
	return nil
}

// Equipment belongs to exactly one SportType.
type Equipment struct {
	ID   int64
	Name string
}

func (e *Equipment) GetID() int64 { return e.ID }

func (e *Equipment) Validate() error {
	if e.ID < 0 {
		return fmt.Errorf("equipment id must not be negative")
	}
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("equipment name is required")
	}
	return nil
}

// Exercise is one recorded training unit. It references its sport type, a
// sub-type owned by that sport type and optionally a piece of equipment owned
// by the same sport type. References are live objects, not raw identifiers;
// the store resolves them on read and validates them on write.
type Exercise struct {
	ID           int64
	SportType    *SportType
	SportSubType *SportSubType
	Equipment    *Equipment
	DateTime     time.Time
	Intensity    Intensity
	Distance     float64
	AvgSpeed     float64
	Duration     int
	Ascent       int
	Descent      int
	SourceFile   string
	Comment      string
}

func (e *Exercise) GetID() int64 { return e.ID }

func (e *Exercise) Validate() error {
	if e.ID < 0 {
		return fmt.Errorf("exercise id must not be negative")
	}
	if e.SportType == nil {
		return fmt.Errorf("exercise requires a sport type")
	}
	if e.SportSubType == nil {
		return fmt.Errorf("exercise requires a sport sub-type")
	}
	if e.DateTime.IsZero() {
		return fmt.Errorf("exercise date is required")
	}
	if _, err := ParseIntensity(string(e.Intensity)); err != nil {
		return err
	}
	if e.Distance < 0 {
		return fmt.Errorf("exercise distance must not be negative")
	}
	if e.AvgSpeed < 0 {
		return fmt.Errorf("exercise average speed must not be negative")
	}
	if e.Duration < 0 {
		return fmt.Errorf("exercise duration must not be negative")
	}
	if e.Ascent < 0 || e.Descent < 0 {
		return fmt.Errorf("exercise ascent and descent must not be negative")
	}
	return nil
}

// Note is a free-text diary entry.
type Note struct {
	ID       int64
	DateTime time.Time
	Comment  string
}

func (n *Note) GetID() int64 { return n.ID }

func (n *Note) Validate() error {
	if n.ID < 0 {
		return fmt.Errorf("note id must not be negative")
	}
	if n.DateTime.IsZero() {
		return fmt.Errorf("note date is required")
	}
	if strings.TrimSpace(n.Comment) == "" {
		return fmt.Errorf("note comment is required")
	}
	return nil
}

// Weight is one body-weight measurement.
type Weight struct {
	ID       int64
	DateTime time.Time
	Value    float64
	Comment  string
}

func (w *Weight) GetID() int64 { return w.ID }

func (w *Weight) Validate() error {
	if w.ID < 0 {
		return fmt.Errorf("weight id must not be negative")
	}
	if w.DateTime.IsZero() {
		return fmt.Errorf("weight date is required")
	}
	if w.Value <= 0 {
		return fmt.Errorf("weight value must be positive")
	}
	return nil
}

// ApplicationData bundles the four top-level containers that make up one
// complete dataset: the reference data plus everything recorded against it.
type ApplicationData struct {
	SportTypes SportTypeList
	Exercises  ExerciseList
	Notes      NoteList
	Weights    WeightList
}
