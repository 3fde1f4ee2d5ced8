package sqlite

import "time"

type SportTypeModel struct {
	ID    int64  `gorm:"primaryKey"`
	Name  string `gorm:"not null"`
	Color string `gorm:"not null"`
	FitID *int64
}

func (SportTypeModel) TableName() string { return "sport_type" }

type SportSubTypeModel struct {
	ID          int64  `gorm:"primaryKey"`
	SportTypeID int64  `gorm:"not null;index"`
	Position    int64  `gorm:"not null"`
	Name        string `gorm:"not null"`
	FitID       *int64
}

func (SportSubTypeModel) TableName() string { return "sport_sub_type" }

type EquipmentModel struct {
	ID          int64  `gorm:"primaryKey"`
	SportTypeID int64  `gorm:"not null;index"`
	Position    int64  `gorm:"not null"`
	Name        string `gorm:"not null"`
}

func (EquipmentModel) TableName() string { return "equipment" }

type ExerciseModel struct {
	ID             int64 `gorm:"primaryKey"`
	SportTypeID    int64 `gorm:"not null;index"`
	SportSubTypeID int64 `gorm:"not null;index"`
	EquipmentID    *int64
	DateTime       time.Time `gorm:"not null;index"`
	Intensity      string    `gorm:"not null"`
	Distance       float64   `gorm:"not null"`
	AvgSpeed       float64   `gorm:"not null"`
	Duration       int       `gorm:"not null"`
	Ascent         int       `gorm:"not null"`
	Descent        int       `gorm:"not null"`
	SourceFile     string
	Comment        string
}

func (ExerciseModel) TableName() string { return "exercise" }

type NoteModel struct {
	ID       int64     `gorm:"primaryKey"`
	DateTime time.Time `gorm:"not null;index"`
	Comment  string    `gorm:"not null"`
}

func (NoteModel) TableName() string { return "note" }

type WeightModel struct {
	ID       int64     `gorm:"primaryKey"`
	DateTime time.Time `gorm:"not null;index"`
	Value    float64   `gorm:"not null"`
	Comment  string
}

func (WeightModel) TableName() string { return "weight" }
