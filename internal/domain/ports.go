package domain

import "context"

// SportTypeRepository mediates persistence for sport types including their
// owned sub-types and equipment. ReadAll loads the children nested, so the
// returned list is sufficient input for ExerciseRepository.ReadAll.
type SportTypeRepository interface {
	Create(ctx context.Context, sportType *SportType) (*SportType, error)
	ReadAll(ctx context.Context) (SportTypeList, error)
	ReadByID(ctx context.Context, id int64) (*SportType, error)
	Update(ctx context.Context, sportType *SportType) error
	// Delete cascades to the owned sub-types and equipment. It fails with
	// ErrConstraint while any exercise still references the sport type.
	Delete(ctx context.Context, id int64) error
}

// SportSubTypeRepository persists sub-types of one parent sport type. The
// parent is supplied on read so rows resolve against it instead of a second
// round-trip.
type SportSubTypeRepository interface {
	Create(ctx context.Context, sportType *SportType, subType *SportSubType) (*SportSubType, error)
	ReadAll(ctx context.Context, sportType *SportType) (SportSubTypeList, error)
	ReadByID(ctx context.Context, id int64) (*SportSubType, error)
	Update(ctx context.Context, sportType *SportType, subType *SportSubType) error
	Delete(ctx context.Context, id int64) error
}

// EquipmentRepository persists equipment of one parent sport type.
type EquipmentRepository interface {
	Create(ctx context.Context, sportType *SportType, equipment *Equipment) (*Equipment, error)
	ReadAll(ctx context.Context, sportType *SportType) (EquipmentList, error)
	ReadByID(ctx context.Context, id int64) (*Equipment, error)
	Update(ctx context.Context, sportType *SportType, equipment *Equipment) error
	Delete(ctx context.Context, id int64) error
}

// ExerciseRepository persists exercises. ReadAll and ReadByID need the
// already-loaded sport type collection (which transitively carries sub-types
// and equipment) to resolve foreign keys into live references; a dangling
// reference is ErrIntegrity, never a skipped row.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *Exercise) (*Exercise, error)
	ReadAll(ctx context.Context, sportTypes SportTypeList) (ExerciseList, error)
	ReadByID(ctx context.Context, sportTypes SportTypeList, id int64) (*Exercise, error)
	Update(ctx context.Context, exercise *Exercise) error
	Delete(ctx context.Context, id int64) error
}

type NoteRepository interface {
	Create(ctx context.Context, note *Note) (*Note, error)
	ReadAll(ctx context.Context) (NoteList, error)
	ReadByID(ctx context.Context, id int64) (*Note, error)
	Update(ctx context.Context, note *Note) error
	Delete(ctx context.Context, id int64) error
}

type WeightRepository interface {
	Create(ctx context.Context, weight *Weight) (*Weight, error)
	ReadAll(ctx context.Context) (WeightList, error)
	ReadByID(ctx context.Context, id int64) (*Weight, error)
	Update(ctx context.Context, weight *Weight) error
	Delete(ctx context.Context, id int64) error
}

// Repositories is the set of per-entity repositories bound to one store
// handle, either the session itself (auto-commit per operation) or a running
// transaction scope.
type Repositories interface {
	SportTypes() SportTypeRepository
	SportSubTypes() SportSubTypeRepository
	Equipment() EquipmentRepository
	Exercises() ExerciseRepository
	Notes() NoteRepository
	Weights() WeightRepository
}

// Session owns the store handle, schema bootstrap and the transaction
// boundary. One logical transaction runs at a time; concurrent InTransaction
// calls are serialized, a nested call fails with ErrNestedTransaction.
type Session interface {
	Repositories

	// InTransaction runs fn in one transaction scope. If fn returns nil the
	// transaction commits; any error rolls back in full and is returned
	// unchanged. fn must use the context it receives; calling InTransaction
	// again with that context is rejected as a nested transaction.
	InTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error

	Close() error
}
