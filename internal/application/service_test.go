package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqliteadapter "github.com/sporttracker/sporttracker/internal/adapters/db/sqlite"
	"github.com/sporttracker/sporttracker/internal/domain"
)

func newTestService(t *testing.T) *TrackerService {
	t.Helper()
	session, err := sqliteadapter.Open(context.Background(), sqliteadapter.InMemory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return NewTrackerService(session)
}

// sampleDataset is a small but complete dataset with deliberately
// non-sequential identities, so identity preservation is observable.
func sampleDataset() Dataset {
	fitID := int64(2)
	equipmentID := int64(4)
	return Dataset{
		SportTypes: []DatasetSportType{
			{
				ID: 5, Name: "Cycling", Color: "#0000ff", FitID: &fitID,
				SubTypes:  []DatasetSportSubType{{ID: 3, Name: "MTB"}, {ID: 9, Name: "Road"}},
				Equipment: []DatasetEquipment{{ID: 4, Name: "Bike 1"}},
			},
			{
				ID: 2, Name: "Running", Color: "#00ff00",
				SubTypes: []DatasetSportSubType{{ID: 1, Name: "Trail"}},
			},
		},
		Exercises: []DatasetExercise{
			{
				ID: 11, SportTypeID: 5, SportSubTypeID: 3, EquipmentID: &equipmentID,
				DateTime:  time.Date(2025, 7, 15, 9, 30, 0, 0, time.UTC),
				Intensity: "normal", Distance: 42.0, AvgSpeed: 20.0, Duration: 7560,
			},
			{
				ID: 12, SportTypeID: 2, SportSubTypeID: 1,
				DateTime:  time.Date(2025, 7, 16, 7, 0, 0, 0, time.UTC),
				Intensity: "high", Distance: 10.5, AvgSpeed: 11.2, Duration: 3375,
			},
		},
		Notes:   []DatasetNote{{ID: 3, DateTime: time.Date(2025, 7, 15, 21, 0, 0, 0, time.UTC), Comment: "Some comment about the ride"}},
		Weights: []DatasetWeight{{ID: 6, DateTime: time.Date(2025, 7, 15, 8, 0, 0, 0, time.UTC), Value: 123.4}},
	}
}

func TestImportPreservesIdentitiesAndReferences(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	data, err := sampleDataset().ToApplicationData()
	require.NoError(t, err)
	require.NoError(t, svc.ImportApplicationData(ctx, data))

	loaded, err := svc.LoadAll(ctx)
	require.NoError(t, err)

	cycling, ok := loaded.SportTypes.ByID(5)
	require.True(t, ok, "sport type 5 must keep its identity")
	assert.Equal(t, "Cycling", cycling.Name)
	require.NotNil(t, cycling.FitID)
	assert.Equal(t, int64(2), *cycling.FitID)
	_, ok = cycling.SubTypes.ByID(9)
	assert.True(t, ok, "sub-type 9 must keep its identity")

	exercise, ok := loaded.Exercises.ByID(11)
	require.True(t, ok, "exercise 11 must keep its identity")
	assert.Same(t, cycling, exercise.SportType, "exercise must reference the loaded sport type instance")
	require.NotNil(t, exercise.Equipment)
	assert.Equal(t, int64(4), exercise.Equipment.ID)

	_, ok = loaded.Notes.ByID(3)
	assert.True(t, ok)
	weight, ok := loaded.Weights.ByID(6)
	require.True(t, ok)
	assert.Equal(t, 123.4, weight.Value)
}

func TestImportIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	// occupy the note identity the dataset wants, so the import fails after
	// sport types and exercises were already written inside the transaction
	conflicting := domain.ApplicationData{}
	require.NoError(t, conflicting.Notes.Set(&domain.Note{ID: 3, DateTime: time.Now(), Comment: "already here"}))
	require.NoError(t, svc.ImportApplicationData(ctx, conflicting))

	data, err := sampleDataset().ToApplicationData()
	require.NoError(t, err)
	err = svc.ImportApplicationData(ctx, data)
	require.ErrorIs(t, err, domain.ErrIntegrity)

	loaded, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, loaded.SportTypes.Len(), "failed import must not leave sport types behind")
	assert.Zero(t, loaded.Exercises.Len())
	assert.Zero(t, loaded.Weights.Len())
	note, ok := loaded.Notes.ByID(3)
	require.True(t, ok)
	assert.Equal(t, "already here", note.Comment, "the pre-existing note must be untouched")
}

func TestImportRejectsUnresolvableReferenceBeforeWriting(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	data, err := sampleDataset().ToApplicationData()
	require.NoError(t, err)
	exercise, _ := data.Exercises.ByID(11)
	exercise.SportSubType = &domain.SportSubType{ID: 77, Name: "Ghost"}

	err = svc.ImportApplicationData(ctx, data)
	require.ErrorIs(t, err, domain.ErrIntegrity)
	assert.Contains(t, err.Error(), "exercise 11", "the error must name the offending exercise")

	loaded, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, loaded.SportTypes.Len())
}

func TestImportAcceptsPartialDatasets(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	// a dataset holding only reference data, no diary entries
	var data domain.ApplicationData
	require.NoError(t, data.SportTypes.Set(&domain.SportType{ID: 1, Name: "Cycling", Color: "#0000ff"}))
	require.NoError(t, svc.ImportApplicationData(ctx, data))

	loaded, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.SportTypes.Len())
	assert.Zero(t, loaded.Exercises.Len())
}

func TestImportIntoNonEmptyStoreRejectsDuplicateIdentity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	data, err := sampleDataset().ToApplicationData()
	require.NoError(t, err)
	require.NoError(t, svc.ImportApplicationData(ctx, data))

	again, err := sampleDataset().ToApplicationData()
	require.NoError(t, err)
	err = svc.ImportApplicationData(ctx, again)
	require.ErrorIs(t, err, domain.ErrIntegrity)

	// the first import is untouched
	loaded, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.SportTypes.Len())
	assert.Equal(t, 2, loaded.Exercises.Len())
}

func TestExercisesFilterBySportType(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	data, err := sampleDataset().ToApplicationData()
	require.NoError(t, err)
	require.NoError(t, svc.ImportApplicationData(ctx, data))

	all, err := svc.Exercises(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Len())

	onlyCycling, err := svc.Exercises(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, 1, onlyCycling.Len())
	_, ok := onlyCycling.ByID(11)
	assert.True(t, ok)
}

func TestAddAndDeleteDiaryEntries(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	note, err := svc.AddNote(ctx, &domain.Note{DateTime: time.Now(), Comment: "easy spin"})
	require.NoError(t, err)
	assert.Positive(t, note.ID)

	weight, err := svc.AddWeight(ctx, &domain.Weight{DateTime: time.Now(), Value: 80.2})
	require.NoError(t, err)
	assert.Positive(t, weight.ID)

	require.NoError(t, svc.DeleteNote(ctx, note.ID))
	require.ErrorIs(t, svc.DeleteNote(ctx, note.ID), domain.ErrNotFound)

	require.NoError(t, svc.DeleteWeight(ctx, weight.ID))
	weights, err := svc.Weights(ctx)
	require.NoError(t, err)
	assert.Zero(t, weights.Len())
}

func TestDatasetRejectsDanglingReferences(t *testing.T) {
	doc := sampleDataset()
	doc.Exercises[0].SportTypeID = 99
	_, err := doc.ToApplicationData()
	require.ErrorIs(t, err, domain.ErrIntegrity)

	doc = sampleDataset()
	doc.Exercises[1].SportSubTypeID = 3 // owned by Cycling, not Running
	_, err = doc.ToApplicationData()
	require.ErrorIs(t, err, domain.ErrIntegrity)

	doc = sampleDataset()
	badEquipment := int64(123)
	doc.Exercises[0].EquipmentID = &badEquipment
	_, err = doc.ToApplicationData()
	require.ErrorIs(t, err, domain.ErrIntegrity)
}

func TestDatasetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	data, err := sampleDataset().ToApplicationData()
	require.NoError(t, err)
	require.NoError(t, svc.ImportApplicationData(ctx, data))

	loaded, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	exported := DatasetFromApplicationData(loaded)

	assert.Len(t, exported.SportTypes, 2)
	assert.Len(t, exported.Exercises, 2)
	assert.Len(t, exported.Notes, 1)
	assert.Len(t, exported.Weights, 1)

	reimported, err := exported.ToApplicationData()
	require.NoError(t, err)
	assert.Equal(t, data.SportTypes.Len(), reimported.SportTypes.Len())
	assert.Equal(t, data.Exercises.Len(), reimported.Exercises.Len())
}

func TestImportKeepsDisplayOrderOfSubTypesAndEquipment(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	// display order differs from identity order and must survive the store
	doc := Dataset{
		SportTypes: []DatasetSportType{
			{
				ID: 1, Name: "Cycling", Color: "#0000ff",
				SubTypes:  []DatasetSportSubType{{ID: 9, Name: "Road"}, {ID: 3, Name: "MTB"}},
				Equipment: []DatasetEquipment{{ID: 7, Name: "Bike 2"}, {ID: 2, Name: "Bike 1"}},
			},
		},
	}
	data, err := doc.ToApplicationData()
	require.NoError(t, err)
	require.NoError(t, svc.ImportApplicationData(ctx, data))

	loaded, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	cycling, ok := loaded.SportTypes.ByID(1)
	require.True(t, ok)

	var subOrder []int64
	cycling.SubTypes.Each(func(s *domain.SportSubType) { subOrder = append(subOrder, s.ID) })
	assert.Equal(t, []int64{9, 3}, subOrder, "sub-type display order must survive the round-trip")

	var equipmentOrder []int64
	cycling.Equipment.Each(func(e *domain.Equipment) { equipmentOrder = append(equipmentOrder, e.ID) })
	assert.Equal(t, []int64{7, 2}, equipmentOrder, "equipment display order must survive the round-trip")
}

func TestAddExerciseAgainstStoredReferenceData(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	data, err := sampleDataset().ToApplicationData()
	require.NoError(t, err)
	require.NoError(t, svc.ImportApplicationData(ctx, data))

	sportTypes, err := svc.SportTypes(ctx)
	require.NoError(t, err)

	row := DatasetExercise{
		SportTypeID:    5,
		SportSubTypeID: 9,
		DateTime:       time.Date(2025, 7, 20, 10, 0, 0, 0, time.UTC),
		Intensity:      "low",
		Distance:       25.0,
		AvgSpeed:       22.1,
		Duration:       4070,
	}
	exercise, err := row.ToExercise(sportTypes)
	require.NoError(t, err)

	created, err := svc.AddExercise(ctx, exercise)
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	all, err := svc.Exercises(ctx, 5)
	require.NoError(t, err)
	loaded, ok := all.ByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, int64(9), loaded.SportSubType.ID)
	assert.Equal(t, 25.0, loaded.Distance)

	// a row referencing a sub-type the sport type does not own never
	// reaches the store
	row.SportSubTypeID = 77
	_, err = row.ToExercise(sportTypes)
	require.ErrorIs(t, err, domain.ErrIntegrity)
}
