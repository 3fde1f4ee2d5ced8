package sqlite

import (
	"context"
	"fmt"

	"github.com/sporttracker/sporttracker/internal/domain"
	"gorm.io/gorm"
)

// SportTypeRepository persists sport types. Owned sub-types and equipment are
// written through their own repositories and loaded nested on ReadAll.
type SportTypeRepository struct {
	db *gorm.DB
}

func NewSportTypeRepository(db *gorm.DB) *SportTypeRepository {
	return &SportTypeRepository{db: db}
}

func (r *SportTypeRepository) Create(ctx context.Context, sportType *domain.SportType) (*domain.SportType, error) {
	if err := sportType.Validate(); err != nil {
		return nil, fmt.Errorf("create sport type: %w", err)
	}
	m := SportTypeModel{ID: sportType.ID, Name: sportType.Name, Color: sportType.Color, FitID: sportType.FitID}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, writeError(fmt.Sprintf("create sport type %d", sportType.ID), err)
	}
	sportType.ID = m.ID
	return sportType, nil
}

func (r *SportTypeRepository) ReadAll(ctx context.Context) (domain.SportTypeList, error) {
	var rows []SportTypeModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return domain.SportTypeList{}, readError("read sport types", err)
	}

	subTypes := NewSportSubTypeRepository(r.db)
	equipment := NewEquipmentRepository(r.db)

	var list domain.SportTypeList
	for _, m := range rows {
		sportType := rowToSportType(m)
		subs, err := subTypes.ReadAll(ctx, sportType)
		if err != nil {
			return domain.SportTypeList{}, err
		}
		sportType.SubTypes = subs
		eq, err := equipment.ReadAll(ctx, sportType)
		if err != nil {
			return domain.SportTypeList{}, err
		}
		sportType.Equipment = eq
		if err := list.Set(sportType); err != nil {
			return domain.SportTypeList{}, fmt.Errorf("read sport types: %v: %w", err, domain.ErrIntegrity)
		}
	}
	return list, nil
}

func (r *SportTypeRepository) ReadByID(ctx context.Context, id int64) (*domain.SportType, error) {
	var m SportTypeModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, readError(fmt.Sprintf("read sport type %d", id), err)
	}
	sportType := rowToSportType(m)
	subs, err := NewSportSubTypeRepository(r.db).ReadAll(ctx, sportType)
	if err != nil {
		return nil, err
	}
	sportType.SubTypes = subs
	eq, err := NewEquipmentRepository(r.db).ReadAll(ctx, sportType)
	if err != nil {
		return nil, err
	}
	sportType.Equipment = eq
	return sportType, nil
}

func (r *SportTypeRepository) Update(ctx context.Context, sportType *domain.SportType) error {
	if err := sportType.Validate(); err != nil {
		return fmt.Errorf("update sport type: %w", err)
	}
	res := r.db.WithContext(ctx).Model(&SportTypeModel{}).Where("id = ?", sportType.ID).Updates(map[string]any{
		"name":   sportType.Name,
		"color":  sportType.Color,
		"fit_id": sportType.FitID,
	})
	if res.Error != nil {
		return writeError(fmt.Sprintf("update sport type %d", sportType.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update sport type %d: %w", sportType.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the sport type and cascades to its owned sub-types and
// equipment. It fails while exercises still reference the sport type.
func (r *SportTypeRepository) Delete(ctx context.Context, id int64) error {
	var referencing int64
	if err := r.db.WithContext(ctx).Model(&ExerciseModel{}).Where("sport_type_id = ?", id).Count(&referencing).Error; err != nil {
		return readError(fmt.Sprintf("delete sport type %d", id), err)
	}
	if referencing > 0 {
		return fmt.Errorf("delete sport type %d: %d exercises reference it: %w", id, referencing, domain.ErrConstraint)
	}
	res := r.db.WithContext(ctx).Delete(&SportTypeModel{}, id)
	if res.Error != nil {
		return deleteError(fmt.Sprintf("delete sport type %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete sport type %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func rowToSportType(m SportTypeModel) *domain.SportType {
	return &domain.SportType{ID: m.ID, Name: m.Name, Color: m.Color, FitID: m.FitID}
}

// nextPosition appends at the end of the parent's display order. The order is
// the creation order within the parent, independent of the identities, which
// an import keeps from the source dataset.
func nextPosition(ctx context.Context, db *gorm.DB, model any, sportTypeID int64) (int64, error) {
	var position int64
	err := db.WithContext(ctx).Model(model).
		Where("sport_type_id = ?", sportTypeID).
		Select("COALESCE(MAX(position), 0) + 1").
		Scan(&position).Error
	return position, err
}

// SportSubTypeRepository persists the sub-types of one parent sport type.
// ReadAll returns them in display order, the order they were created in.
type SportSubTypeRepository struct {
	db *gorm.DB
}

func NewSportSubTypeRepository(db *gorm.DB) *SportSubTypeRepository {
	return &SportSubTypeRepository{db: db}
}

func (r *SportSubTypeRepository) Create(ctx context.Context, sportType *domain.SportType, subType *domain.SportSubType) (*domain.SportSubType, error) {
	if err := subType.Validate(); err != nil {
		return nil, fmt.Errorf("create sport sub-type: %w", err)
	}
	if sportType == nil || sportType.ID <= 0 {
		return nil, fmt.Errorf("create sport sub-type %d: no parent sport type: %w", subType.ID, domain.ErrIntegrity)
	}
	position, err := nextPosition(ctx, r.db, &SportSubTypeModel{}, sportType.ID)
	if err != nil {
		return nil, readError(fmt.Sprintf("create sport sub-type %d", subType.ID), err)
	}
	m := SportSubTypeModel{ID: subType.ID, SportTypeID: sportType.ID, Position: position, Name: subType.Name, FitID: subType.FitID}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, writeError(fmt.Sprintf("create sport sub-type %d", subType.ID), err)
	}
	subType.ID = m.ID
	return subType, nil
}

func (r *SportSubTypeRepository) ReadAll(ctx context.Context, sportType *domain.SportType) (domain.SportSubTypeList, error) {
	var rows []SportSubTypeModel
	if err := r.db.WithContext(ctx).Where("sport_type_id = ?", sportType.ID).Order("position ASC, id ASC").Find(&rows).Error; err != nil {
		return domain.SportSubTypeList{}, readError(fmt.Sprintf("read sub-types of sport type %d", sportType.ID), err)
	}
	var list domain.SportSubTypeList
	for _, m := range rows {
		if err := list.Set(&domain.SportSubType{ID: m.ID, Name: m.Name, FitID: m.FitID}); err != nil {
			return domain.SportSubTypeList{}, fmt.Errorf("read sub-types: %v: %w", err, domain.ErrIntegrity)
		}
	}
	return list, nil
}

func (r *SportSubTypeRepository) ReadByID(ctx context.Context, id int64) (*domain.SportSubType, error) {
	var m SportSubTypeModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, readError(fmt.Sprintf("read sport sub-type %d", id), err)
	}
	return &domain.SportSubType{ID: m.ID, Name: m.Name, FitID: m.FitID}, nil
}

func (r *SportSubTypeRepository) Update(ctx context.Context, sportType *domain.SportType, subType *domain.SportSubType) error {
	if err := subType.Validate(); err != nil {
		return fmt.Errorf("update sport sub-type: %w", err)
	}
	res := r.db.WithContext(ctx).Model(&SportSubTypeModel{}).
		Where("id = ? AND sport_type_id = ?", subType.ID, sportType.ID).
		Updates(map[string]any{"name": subType.Name, "fit_id": subType.FitID})
	if res.Error != nil {
		return writeError(fmt.Sprintf("update sport sub-type %d", subType.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update sport sub-type %d: %w", subType.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *SportSubTypeRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&SportSubTypeModel{}, id)
	if res.Error != nil {
		return deleteError(fmt.Sprintf("delete sport sub-type %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete sport sub-type %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// EquipmentRepository persists the equipment of one parent sport type.
type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, sportType *domain.SportType, equipment *domain.Equipment) (*domain.Equipment, error) {
	if err := equipment.Validate(); err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}
	if sportType == nil || sportType.ID <= 0 {
		return nil, fmt.Errorf("create equipment %d: no parent sport type: %w", equipment.ID, domain.ErrIntegrity)
	}
	position, err := nextPosition(ctx, r.db, &EquipmentModel{}, sportType.ID)
	if err != nil {
		return nil, readError(fmt.Sprintf("create equipment %d", equipment.ID), err)
	}
	m := EquipmentModel{ID: equipment.ID, SportTypeID: sportType.ID, Position: position, Name: equipment.Name}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, writeError(fmt.Sprintf("create equipment %d", equipment.ID), err)
	}
	equipment.ID = m.ID
	return equipment, nil
}

func (r *EquipmentRepository) ReadAll(ctx context.Context, sportType *domain.SportType) (domain.EquipmentList, error) {
	var rows []EquipmentModel
	if err := r.db.WithContext(ctx).Where("sport_type_id = ?", sportType.ID).Order("position ASC, id ASC").Find(&rows).Error; err != nil {
		return domain.EquipmentList{}, readError(fmt.Sprintf("read equipment of sport type %d", sportType.ID), err)
	}
	var list domain.EquipmentList
	for _, m := range rows {
		if err := list.Set(&domain.Equipment{ID: m.ID, Name: m.Name}); err != nil {
			return domain.EquipmentList{}, fmt.Errorf("read equipment: %v: %w", err, domain.ErrIntegrity)
		}
	}
	return list, nil
}

func (r *EquipmentRepository) ReadByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var m EquipmentModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, readError(fmt.Sprintf("read equipment %d", id), err)
	}
	return &domain.Equipment{ID: m.ID, Name: m.Name}, nil
}

func (r *EquipmentRepository) Update(ctx context.Context, sportType *domain.SportType, equipment *domain.Equipment) error {
	if err := equipment.Validate(); err != nil {
		return fmt.Errorf("update equipment: %w", err)
	}
	res := r.db.WithContext(ctx).Model(&EquipmentModel{}).
		Where("id = ? AND sport_type_id = ?", equipment.ID, sportType.ID).
		Updates(map[string]any{"name": equipment.Name})
	if res.Error != nil {
		return writeError(fmt.Sprintf("update equipment %d", equipment.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update equipment %d: %w", equipment.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&EquipmentModel{}, id)
	if res.Error != nil {
		return deleteError(fmt.Sprintf("delete equipment %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete equipment %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ExerciseRepository persists exercises. Reads resolve foreign keys inside
// the supplied sport type collection; writes verify that the referenced
// sub-type and equipment belong to the referenced sport type, which a plain
// row-level foreign key cannot express.
type ExerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if err := exercise.Validate(); err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	if err := r.checkOwnership(ctx, exercise); err != nil {
		return nil, err
	}
	m := exerciseToRow(exercise)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, writeError(fmt.Sprintf("create exercise %d", exercise.ID), err)
	}
	exercise.ID = m.ID
	return exercise, nil
}

// checkOwnership rejects an exercise whose sub-type or equipment is owned by
// a different sport type than the one it references.
func (r *ExerciseRepository) checkOwnership(ctx context.Context, exercise *domain.Exercise) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&SportSubTypeModel{}).
		Where("id = ? AND sport_type_id = ?", exercise.SportSubType.ID, exercise.SportType.ID).
		Count(&count).Error
	if err != nil {
		return readError(fmt.Sprintf("exercise %d", exercise.ID), err)
	}
	if count == 0 {
		return fmt.Errorf("exercise %d: sub-type %d does not belong to sport type %d: %w",
			exercise.ID, exercise.SportSubType.ID, exercise.SportType.ID, domain.ErrIntegrity)
	}
	if exercise.Equipment == nil {
		return nil
	}
	err = r.db.WithContext(ctx).Model(&EquipmentModel{}).
		Where("id = ? AND sport_type_id = ?", exercise.Equipment.ID, exercise.SportType.ID).
		Count(&count).Error
	if err != nil {
		return readError(fmt.Sprintf("exercise %d", exercise.ID), err)
	}
	if count == 0 {
		return fmt.Errorf("exercise %d: equipment %d does not belong to sport type %d: %w",
			exercise.ID, exercise.Equipment.ID, exercise.SportType.ID, domain.ErrIntegrity)
	}
	return nil
}

func (r *ExerciseRepository) ReadAll(ctx context.Context, sportTypes domain.SportTypeList) (domain.ExerciseList, error) {
	var rows []ExerciseModel
	if err := r.db.WithContext(ctx).Order("date_time ASC, id ASC").Find(&rows).Error; err != nil {
		return domain.ExerciseList{}, readError("read exercises", err)
	}
	var list domain.ExerciseList
	for _, m := range rows {
		exercise, err := rowToExercise(m, sportTypes)
		if err != nil {
			return domain.ExerciseList{}, err
		}
		if err := list.Set(exercise); err != nil {
			return domain.ExerciseList{}, fmt.Errorf("read exercises: %v: %w", err, domain.ErrIntegrity)
		}
	}
	return list, nil
}

func (r *ExerciseRepository) ReadByID(ctx context.Context, sportTypes domain.SportTypeList, id int64) (*domain.Exercise, error) {
	var m ExerciseModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, readError(fmt.Sprintf("read exercise %d", id), err)
	}
	return rowToExercise(m, sportTypes)
}

func (r *ExerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	if err := exercise.Validate(); err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	if err := r.checkOwnership(ctx, exercise); err != nil {
		return err
	}
	var equipmentID *int64
	if exercise.Equipment != nil {
		equipmentID = &exercise.Equipment.ID
	}
	res := r.db.WithContext(ctx).Model(&ExerciseModel{}).Where("id = ?", exercise.ID).Updates(map[string]any{
		"sport_type_id":     exercise.SportType.ID,
		"sport_sub_type_id": exercise.SportSubType.ID,
		"equipment_id":      equipmentID,
		"date_time":         exercise.DateTime,
		"intensity":         string(exercise.Intensity),
		"distance":          exercise.Distance,
		"avg_speed":         exercise.AvgSpeed,
		"duration":          exercise.Duration,
		"ascent":            exercise.Ascent,
		"descent":           exercise.Descent,
		"source_file":       exercise.SourceFile,
		"comment":           exercise.Comment,
	})
	if res.Error != nil {
		return writeError(fmt.Sprintf("update exercise %d", exercise.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update exercise %d: %w", exercise.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *ExerciseRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&ExerciseModel{}, id)
	if res.Error != nil {
		return deleteError(fmt.Sprintf("delete exercise %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete exercise %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func exerciseToRow(exercise *domain.Exercise) ExerciseModel {
	var equipmentID *int64
	if exercise.Equipment != nil {
		equipmentID = &exercise.Equipment.ID
	}
	return ExerciseModel{
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

func rowToExercise(m ExerciseModel, sportTypes domain.SportTypeList) (*domain.Exercise, error) {
	sportType, ok := sportTypes.ByID(m.SportTypeID)
	if !ok {
		return nil, fmt.Errorf("exercise %d: dangling sport type %d: %w", m.ID, m.SportTypeID, domain.ErrIntegrity)
	}
	subType, ok := sportType.SubTypes.ByID(m.SportSubTypeID)
	if !ok {
		return nil, fmt.Errorf("exercise %d: dangling sport sub-type %d: %w", m.ID, m.SportSubTypeID, domain.ErrIntegrity)
	}
	var equipment *domain.Equipment
	if m.EquipmentID != nil {
		equipment, ok = sportType.Equipment.ByID(*m.EquipmentID)
		if !ok {
			return nil, fmt.Errorf("exercise %d: dangling equipment %d: %w", m.ID, *m.EquipmentID, domain.ErrIntegrity)
		}
	}
	intensity, err := domain.ParseIntensity(m.Intensity)
	if err != nil {
		return nil, fmt.Errorf("exercise %d: %v: %w", m.ID, err, domain.ErrIntegrity)
	}
	return &domain.Exercise{
		ID:           m.ID,
		SportType:    sportType,
		SportSubType: subType,
		Equipment:    equipment,
		DateTime:     m.DateTime,
		Intensity:    intensity,
		Distance:     m.Distance,
		AvgSpeed:     m.AvgSpeed,
		Duration:     m.Duration,
		Ascent:       m.Ascent,
		Descent:      m.Descent,
		SourceFile:   m.SourceFile,
		Comment:      m.Comment,
	}, nil
}

// NoteRepository persists diary notes.
type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	if err := note.Validate(); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	m := NoteModel{ID: note.ID, DateTime: note.DateTime, Comment: note.Comment}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, writeError(fmt.Sprintf("create note %d", note.ID), err)
	}
	note.ID = m.ID
	return note, nil
}

func (r *NoteRepository) ReadAll(ctx context.Context) (domain.NoteList, error) {
	var rows []NoteModel
	if err := r.db.WithContext(ctx).Order("date_time ASC, id ASC").Find(&rows).Error; err != nil {
		return domain.NoteList{}, readError("read notes", err)
	}
	var list domain.NoteList
	for _, m := range rows {
		if err := list.Set(&domain.Note{ID: m.ID, DateTime: m.DateTime, Comment: m.Comment}); err != nil {
			return domain.NoteList{}, fmt.Errorf("read notes: %v: %w", err, domain.ErrIntegrity)
		}
	}
	return list, nil
}

func (r *NoteRepository) ReadByID(ctx context.Context, id int64) (*domain.Note, error) {
	var m NoteModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, readError(fmt.Sprintf("read note %d", id), err)
	}
	return &domain.Note{ID: m.ID, DateTime: m.DateTime, Comment: m.Comment}, nil
}

func (r *NoteRepository) Update(ctx context.Context, note *domain.Note) error {
	if err := note.Validate(); err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	res := r.db.WithContext(ctx).Model(&NoteModel{}).Where("id = ?", note.ID).Updates(map[string]any{
		"date_time": note.DateTime,
		"comment":   note.Comment,
	})
	if res.Error != nil {
		return writeError(fmt.Sprintf("update note %d", note.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update note %d: %w", note.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&NoteModel{}, id)
	if res.Error != nil {
		return deleteError(fmt.Sprintf("delete note %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete note %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// WeightRepository persists body-weight entries.
type WeightRepository struct {
	db *gorm.DB
}

func NewWeightRepository(db *gorm.DB) *WeightRepository {
	return &WeightRepository{db: db}
}

func (r *WeightRepository) Create(ctx context.Context, weight *domain.Weight) (*domain.Weight, error) {
	if err := weight.Validate(); err != nil {
		return nil, fmt.Errorf("create weight: %w", err)
	}
	m := WeightModel{ID: weight.ID, DateTime: weight.DateTime, Value: weight.Value, Comment: weight.Comment}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, writeError(fmt.Sprintf("create weight %d", weight.ID), err)
	}
	weight.ID = m.ID
	return weight, nil
}

func (r *WeightRepository) ReadAll(ctx context.Context) (domain.WeightList, error) {
	var rows []WeightModel
	if err := r.db.WithContext(ctx).Order("date_time ASC, id ASC").Find(&rows).Error; err != nil {
		return domain.WeightList{}, readError("read weights", err)
	}
	var list domain.WeightList
	for _, m := range rows {
		if err := list.Set(&domain.Weight{ID: m.ID, DateTime: m.DateTime, Value: m.Value, Comment: m.Comment}); err != nil {
			return domain.WeightList{}, fmt.Errorf("read weights: %v: %w", err, domain.ErrIntegrity)
		}
	}
	return list, nil
}

func (r *WeightRepository) ReadByID(ctx context.Context, id int64) (*domain.Weight, error) {
	var m WeightModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, readError(fmt.Sprintf("read weight %d", id), err)
	}
	return &domain.Weight{ID: m.ID, DateTime: m.DateTime, Value: m.Value, Comment: m.Comment}, nil
}

func (r *WeightRepository) Update(ctx context.Context, weight *domain.Weight) error {
	if err := weight.Validate(); err != nil {
		return fmt.Errorf("update weight: %w", err)
	}
	res := r.db.WithContext(ctx).Model(&WeightModel{}).Where("id = ?", weight.ID).Updates(map[string]any{
		"date_time": weight.DateTime,
		"value":     weight.Value,
		"comment":   weight.Comment,
	})
	if res.Error != nil {
		return writeError(fmt.Sprintf("update weight %d", weight.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update weight %d: %w", weight.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *WeightRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&WeightModel{}, id)
	if res.Error != nil {
		return deleteError(fmt.Sprintf("delete weight %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete weight %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

var (
	_ domain.SportTypeRepository    = (*SportTypeRepository)(nil)
	_ domain.SportSubTypeRepository = (*SportSubTypeRepository)(nil)
	_ domain.EquipmentRepository    = (*EquipmentRepository)(nil)
	_ domain.ExerciseRepository     = (*ExerciseRepository)(nil)
	_ domain.NoteRepository         = (*NoteRepository)(nil)
	_ domain.WeightRepository       = (*WeightRepository)(nil)
)
