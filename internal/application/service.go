package application

import (
	"context"
	"fmt"

	"github.com/sporttracker/sporttracker/internal/domain"
)

// TrackerService is the use-case layer over the storage session. The GUI and
// the legacy-format importers hand it fully-formed identity containers; it
// never sees file formats or widgets.
type TrackerService struct {
	session domain.Session
}

func NewTrackerService(session domain.Session) *TrackerService {
	return &TrackerService{session: session}
}

// ImportApplicationData persists a complete dataset in one transaction,
// keeping every original identity and cross-reference. Parents are written
// before the entities that reference them; exercise references are resolved
// against the input containers, not against the store. Any failure rolls the
// whole import back, the store is left exactly as it was.
//
// Importing into a store that already holds one of the identities is a
// duplicate-identity conflict: the import aborts with an integrity error
// rather than overwriting.
func (s *TrackerService) ImportApplicationData(ctx context.Context, data domain.ApplicationData) error {
	if err := checkExerciseReferences(data); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	err := s.session.InTransaction(ctx, func(ctx context.Context, repos domain.Repositories) error {
		for _, sportType := range data.SportTypes.All() {
			if sportType.ID <= 0 {
				return fmt.Errorf("sport type %q has no identity: %w", sportType.Name, domain.ErrIntegrity)
			}
			if _, err := repos.SportTypes().Create(ctx, sportType); err != nil {
				return err
			}
			for _, subType := range sportType.SubTypes.All() {
				if _, err := repos.SportSubTypes().Create(ctx, sportType, subType); err != nil {
					return err
				}
			}
			for _, equipment := range sportType.Equipment.All() {
				if _, err := repos.Equipment().Create(ctx, sportType, equipment); err != nil {
					return err
				}
			}
		}
		for _, exercise := range data.Exercises.All() {
			if exercise.ID <= 0 {
				return fmt.Errorf("exercise without identity: %w", domain.ErrIntegrity)
			}
			if _, err := repos.Exercises().Create(ctx, exercise); err != nil {
				return err
			}
		}
		for _, note := range data.Notes.All() {
			if note.ID <= 0 {
				return fmt.Errorf("note without identity: %w", domain.ErrIntegrity)
			}
			if _, err := repos.Notes().Create(ctx, note); err != nil {
				return err
			}
		}
		for _, weight := range data.Weights.All() {
			if weight.ID <= 0 {
				return fmt.Errorf("weight without identity: %w", domain.ErrIntegrity)
			}
			if _, err := repos.Weights().Create(ctx, weight); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	return nil
}

// checkExerciseReferences resolves every exercise reference inside the input
// sport type collection before anything touches the store, so a broken
// dataset fails fast and names the offending exercise.
func checkExerciseReferences(data domain.ApplicationData) error {
	for _, exercise := range data.Exercises.All() {
		if exercise.SportType == nil || exercise.SportSubType == nil {
			return fmt.Errorf("exercise %d: missing sport type or sub-type reference: %w", exercise.ID, domain.ErrIntegrity)
		}
		sportType, ok := data.SportTypes.ByID(exercise.SportType.ID)
		if !ok {
			return fmt.Errorf("exercise %d: sport type %d not in dataset: %w", exercise.ID, exercise.SportType.ID, domain.ErrIntegrity)
		}
		if _, ok := sportType.SubTypes.ByID(exercise.SportSubType.ID); !ok {
			return fmt.Errorf("exercise %d: sub-type %d not owned by sport type %d: %w",
				exercise.ID, exercise.SportSubType.ID, sportType.ID, domain.ErrIntegrity)
		}
		if exercise.Equipment != nil {
			if _, ok := sportType.Equipment.ByID(exercise.Equipment.ID); !ok {
				return fmt.Errorf("exercise %d: equipment %d not owned by sport type %d: %w",
					exercise.ID, exercise.Equipment.ID, sportType.ID, domain.ErrIntegrity)
			}
		}
	}
	return nil
}

// LoadAll reads the full dataset parent-first: sport types (with nested
// sub-types and equipment) feed the exercise read.
func (s *TrackerService) LoadAll(ctx context.Context) (domain.ApplicationData, error) {
	sportTypes, err := s.session.SportTypes().ReadAll(ctx)
	if err != nil {
		return domain.ApplicationData{}, err
	}
	exercises, err := s.session.Exercises().ReadAll(ctx, sportTypes)
	if err != nil {
		return domain.ApplicationData{}, err
	}
	notes, err := s.session.Notes().ReadAll(ctx)
	if err != nil {
		return domain.ApplicationData{}, err
	}
	weights, err := s.session.Weights().ReadAll(ctx)
	if err != nil {
		return domain.ApplicationData{}, err
	}
	return domain.ApplicationData{
		SportTypes: sportTypes,
		Exercises:  exercises,
		Notes:      notes,
		Weights:    weights,
	}, nil
}

func (s *TrackerService) SportTypes(ctx context.Context) (domain.SportTypeList, error) {
	return s.session.SportTypes().ReadAll(ctx)
}

func (s *TrackerService) Exercises(ctx context.Context, sportTypeID int64) (domain.ExerciseList, error) {
	sportTypes, err := s.session.SportTypes().ReadAll(ctx)
	if err != nil {
		return domain.ExerciseList{}, err
	}
	exercises, err := s.session.Exercises().ReadAll(ctx, sportTypes)
	if err != nil {
		return domain.ExerciseList{}, err
	}
	if sportTypeID == 0 {
		return exercises, nil
	}
	var filtered domain.ExerciseList
	for _, exercise := range exercises.All() {
		if exercise.SportType.ID == sportTypeID {
			if err := filtered.Set(exercise); err != nil {
				return domain.ExerciseList{}, err
			}
		}
	}
	return filtered, nil
}

func (s *TrackerService) Notes(ctx context.Context) (domain.NoteList, error) {
	return s.session.Notes().ReadAll(ctx)
}

func (s *TrackerService) Weights(ctx context.Context) (domain.WeightList, error) {
	return s.session.Weights().ReadAll(ctx)
}

func (s *TrackerService) AddNote(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	return s.session.Notes().Create(ctx, note)
}

func (s *TrackerService) AddWeight(ctx context.Context, weight *domain.Weight) (*domain.Weight, error) {
	return s.session.Weights().Create(ctx, weight)
}

func (s *TrackerService) AddExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	return s.session.Exercises().Create(ctx, exercise)
}

// DeleteSportType removes a sport type and its owned sub-types and equipment.
// It fails while exercises still reference the sport type.
func (s *TrackerService) DeleteSportType(ctx context.Context, id int64) error {
	return s.session.SportTypes().Delete(ctx, id)
}

func (s *TrackerService) DeleteExercise(ctx context.Context, id int64) error {
	return s.session.Exercises().Delete(ctx, id)
}

func (s *TrackerService) DeleteNote(ctx context.Context, id int64) error {
	return s.session.Notes().Delete(ctx, id)
}

func (s *TrackerService) DeleteWeight(ctx context.Context, id int64) error {
	return s.session.Weights().Delete(ctx, id)
}
