package application

import (
	"fmt"
	"time"

	"github.com/sporttracker/sporttracker/internal/domain"
)

// Dataset is the JSON exchange document for a complete application dataset.
// Legacy-format importers and the export command speak this shape; inside the
// core it is converted to identity containers with live references.
type Dataset struct {
	SportTypes []DatasetSportType `json:"sport_types"`
	Exercises  []DatasetExercise  `json:"exercises"`
	Notes      []DatasetNote      `json:"notes"`
	Weights    []DatasetWeight    `json:"weights"`
}

type DatasetSportType struct {
	ID        int64                 `json:"id"`
	Name      string                `json:"name"`
	Color     string                `json:"color"`
	FitID     *int64                `json:"fit_id,omitempty"`
	SubTypes  []DatasetSportSubType `json:"sub_types"`
	Equipment []DatasetEquipment    `json:"equipment"`
}

type DatasetSportSubType struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	FitID *int64 `json:"fit_id,omitempty"`
}

type DatasetEquipment struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DatasetExercise struct {
	ID             int64     `json:"id"`
	SportTypeID    int64     `json:"sport_type_id"`
	SportSubTypeID int64     `json:"sport_sub_type_id"`
	EquipmentID    *int64    `json:"equipment_id,omitempty"`
	DateTime       time.Time `json:"date_time"`
	Intensity      string    `json:"intensity"`
	Distance       float64   `json:"distance"`
	AvgSpeed       float64   `json:"avg_speed"`
	Duration       int       `json:"duration"`
	Ascent         int       `json:"ascent"`
	Descent        int       `json:"descent"`
	SourceFile     string    `json:"source_file,omitempty"`
	Comment        string    `json:"comment,omitempty"`
}

type DatasetNote struct {
	ID       int64     `json:"id"`
	DateTime time.Time `json:"date_time"`
	Comment  string    `json:"comment"`
}

type DatasetWeight struct {
	ID       int64     `json:"id"`
	DateTime time.Time `json:"date_time"`
	Value    float64   `json:"value"`
	Comment  string    `json:"comment,omitempty"`
}

// ToApplicationData builds identity containers from the document, resolving
// every exercise reference into a live object. Unresolvable references fail
// with an integrity error naming the entity.
func (d Dataset) ToApplicationData() (domain.ApplicationData, error) {
	var data domain.ApplicationData

	for _, st := range d.SportTypes {
		sportType := &domain.SportType{ID: st.ID, Name: st.Name, Color: st.Color, FitID: st.FitID}
		for _, sub := range st.SubTypes {
			if err := sportType.SubTypes.Set(&domain.SportSubType{ID: sub.ID, Name: sub.Name, FitID: sub.FitID}); err != nil {
				return domain.ApplicationData{}, fmt.Errorf("sport type %d: %v: %w", st.ID, err, domain.ErrIntegrity)
			}
		}
		for _, eq := range st.Equipment {
			if err := sportType.Equipment.Set(&domain.Equipment{ID: eq.ID, Name: eq.Name}); err != nil {
				return domain.ApplicationData{}, fmt.Errorf("sport type %d: %v: %w", st.ID, err, domain.ErrIntegrity)
			}
		}
		if err := data.SportTypes.Set(sportType); err != nil {
			return domain.ApplicationData{}, fmt.Errorf("sport types: %v: %w", err, domain.ErrIntegrity)
		}
	}

	for _, ex := range d.Exercises {
		exercise, err := ex.ToExercise(data.SportTypes)
		if err != nil {
			return domain.ApplicationData{}, err
		}
		if err := data.Exercises.Set(exercise); err != nil {
			return domain.ApplicationData{}, fmt.Errorf("exercises: %v: %w", err, domain.ErrIntegrity)
		}
	}

	for _, n := range d.Notes {
		if err := data.Notes.Set(&domain.Note{ID: n.ID, DateTime: n.DateTime, Comment: n.Comment}); err != nil {
			return domain.ApplicationData{}, fmt.Errorf("notes: %v: %w", err, domain.ErrIntegrity)
		}
	}
	for _, w := range d.Weights {
		if err := data.Weights.Set(&domain.Weight{ID: w.ID, DateTime: w.DateTime, Value: w.Value, Comment: w.Comment}); err != nil {
			return domain.ApplicationData{}, fmt.Errorf("weights: %v: %w", err, domain.ErrIntegrity)
		}
	}

	return data, nil
}

// ToExercise resolves the document row into a live exercise against the
// given sport type collection, either the rest of a dataset or the loaded
// store contents. References that do not resolve fail with an integrity
// error naming the exercise.
func (e DatasetExercise) ToExercise(sportTypes domain.SportTypeList) (*domain.Exercise, error) {
	sportType, ok := sportTypes.ByID(e.SportTypeID)
	if !ok {
		return nil, fmt.Errorf("exercise %d: unknown sport type %d: %w", e.ID, e.SportTypeID, domain.ErrIntegrity)
	}
	subType, ok := sportType.SubTypes.ByID(e.SportSubTypeID)
	if !ok {
		return nil, fmt.Errorf("exercise %d: sub-type %d not owned by sport type %d: %w", e.ID, e.SportSubTypeID, sportType.ID, domain.ErrIntegrity)
	}
	var equipment *domain.Equipment
	if e.EquipmentID != nil {
		equipment, ok = sportType.Equipment.ByID(*e.EquipmentID)
		if !ok {
			return nil, fmt.Errorf("exercise %d: equipment %d not owned by sport type %d: %w", e.ID, *e.EquipmentID, sportType.ID, domain.ErrIntegrity)
		}
	}
	intensity, err := domain.ParseIntensity(e.Intensity)
	if err != nil {
		return nil, fmt.Errorf("exercise %d: %w", e.ID, err)
	}
	return &domain.Exercise{
		ID:           e.ID,
		SportType:    sportType,
		SportSubType: subType,
		Equipment:    equipment,
		DateTime:     e.DateTime,
		Intensity:    intensity,
		Distance:     e.Distance,
		AvgSpeed:     e.AvgSpeed,
		Duration:     e.Duration,
		Ascent:       e.Ascent,
		Descent:      e.Descent,
		SourceFile:   e.SourceFile,
		Comment:      e.Comment,
	}, nil
}

// NewDatasetExercise flattens one exercise into its exchange row.
func NewDatasetExercise(exercise *domain.Exercise) DatasetExercise {
	var equipmentID *int64
	if exercise.Equipment != nil {
		id := exercise.Equipment.ID
		equipmentID = &id
	}
	return DatasetExercise{
		ID:             exercise.ID,
		SportTypeID:    exercise.SportType.ID,
		SportSubTypeID: exercise.SportSubType.ID,
		EquipmentID:    equipmentID,
		DateTime:       exercise.DateTime,
		Intensity:      string(exercise.Intensity),
		Distance:       exercise.Distance,
		AvgSpeed:       exercise.AvgSpeed,
		Duration:       exercise.Duration,
		Ascent:         exercise.Ascent,
		Descent:        exercise.Descent,
		SourceFile:     exercise.SourceFile,
		Comment:        exercise.Comment,
	}
}

// DatasetFromApplicationData flattens loaded containers back into the
// exchange document, for export.
func DatasetFromApplicationData(data domain.ApplicationData) Dataset {
	doc := Dataset{
		SportTypes: make([]DatasetSportType, 0, data.SportTypes.Len()),
		Exercises:  make([]DatasetExercise, 0, data.Exercises.Len()),
		Notes:      make([]DatasetNote, 0, data.Notes.Len()),
		Weights:    make([]DatasetWeight, 0, data.Weights.Len()),
	}

	data.SportTypes.Each(func(sportType *domain.SportType) {
		st := DatasetSportType{
			ID:        sportType.ID,
			Name:      sportType.Name,
			Color:     sportType.Color,
			FitID:     sportType.FitID,
			SubTypes:  make([]DatasetSportSubType, 0, sportType.SubTypes.Len()),
			Equipment: make([]DatasetEquipment, 0, sportType.Equipment.Len()),
		}
		sportType.SubTypes.Each(func(sub *domain.SportSubType) {
			st.SubTypes = append(st.SubTypes, DatasetSportSubType{ID: sub.ID, Name: sub.Name, FitID: sub.FitID})
		})
		sportType.Equipment.Each(func(eq *domain.Equipment) {
			st.Equipment = append(st.Equipment, DatasetEquipment{ID: eq.ID, Name: eq.Name})
		})
		doc.SportTypes = append(doc.SportTypes, st)
	})

	data.Exercises.Each(func(exercise *domain.Exercise) {
		doc.Exercises = append(doc.Exercises, NewDatasetExercise(exercise))
	})

	data.Notes.Each(func(note *domain.Note) {
		doc.Notes = append(doc.Notes, DatasetNote{ID: note.ID, DateTime: note.DateTime, Comment: note.Comment})
	})
	data.Weights.Each(func(weight *domain.Weight) {
		doc.Weights = append(doc.Weights, DatasetWeight{ID: weight.ID, DateTime: weight.DateTime, Value: weight.Value, Comment: weight.Comment})
	})

	return doc
}
