package sqlite

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sporttracker/sporttracker/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InMemory is the sentinel store target: a transient database that lives for
// the duration of the session and is discarded on close. It honors every
// repository contract exactly like a file-backed store.
const InMemory = ":memory:"

var memSessionSeq atomic.Int64

// Session owns the single connection to the embedded store and the
// transaction boundary. Repositories obtained from the session auto-commit
// per operation; InTransaction scopes a block of repository operations to one
// transaction.
type Session struct {
	db *gorm.DB

	// txMu serializes transaction scopes: sqlite supports neither nested nor
	// overlapping write transactions on one connection.
	txMu sync.Mutex

	repositories
}

type repositories struct {
	sportTypes *SportTypeRepository
	subTypes   *SportSubTypeRepository
	equipment  *EquipmentRepository
	exercises  *ExerciseRepository
	notes      *NoteRepository
	weights    *WeightRepository
}

func newRepositories(db *gorm.DB) repositories {
	return repositories{
		sportTypes: NewSportTypeRepository(db),
		subTypes:   NewSportSubTypeRepository(db),
		equipment:  NewEquipmentRepository(db),
		exercises:  NewExerciseRepository(db),
		notes:      NewNoteRepository(db),
		weights:    NewWeightRepository(db),
	}
}

func (r repositories) SportTypes() domain.SportTypeRepository       { return r.sportTypes }
func (r repositories) SportSubTypes() domain.SportSubTypeRepository { return r.subTypes }
func (r repositories) Equipment() domain.EquipmentRepository        { return r.equipment }
func (r repositories) Exercises() domain.ExerciseRepository         { return r.exercises }
func (r repositories) Notes() domain.NoteRepository                 { return r.notes }
func (r repositories) Weights() domain.WeightRepository             { return r.weights }

// Open opens or bootstraps the store at the given target, either a filesystem
// path or the InMemory sentinel.
func Open(ctx context.Context, target string) (*Session, error) {
	dsn := fileDSN(target)
	if target == InMemory {
		// Each in-memory session gets its own shared-cache name, otherwise
		// two sessions in one process would alias the same database.
		dsn = fmt.Sprintf("file:sporttracker-mem-%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", memSessionSeq.Add(1))
	}

	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", target, err, domain.ErrConnection)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", target, err, domain.ErrConnection)
	}
	// One pooled connection: the store serves a single process, and the
	// in-memory database must not outlive its only connection.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open %s: %v: %w", target, err, domain.ErrConnection)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("bootstrap %s: %v: %w", target, err, domain.ErrSchema)
	}
	if err := probeSchema(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	s := &Session{db: db}
	s.repositories = newRepositories(db)
	return s, nil
}

func fileDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
}

// probeSchema verifies the column set of every table, so a foreign database
// file with the right table names still fails the open instead of failing
// later mid-operation.
func probeSchema(db *gorm.DB) error {
	probes := map[string]string{
		"sport_type":     "SELECT id, name, color, fit_id FROM sport_type LIMIT 0",
		"sport_sub_type": "SELECT id, sport_type_id, position, name, fit_id FROM sport_sub_type LIMIT 0",
		"equipment":      "SELECT id, sport_type_id, position, name FROM equipment LIMIT 0",
		"exercise":       "SELECT id, sport_type_id, sport_sub_type_id, equipment_id, date_time, intensity, distance, avg_speed, duration, ascent, descent, source_file, comment FROM exercise LIMIT 0",
		"note":           "SELECT id, date_time, comment FROM note LIMIT 0",
		"weight":         "SELECT id, date_time, value, comment FROM weight LIMIT 0",
	}
	for table, probe := range probes {
		if err := db.Exec(probe).Error; err != nil {
			return fmt.Errorf("table %s: %v: %w", table, err, domain.ErrSchema)
		}
	}
	return nil
}

type txMarkerKey struct{}

// InTransaction runs fn as one transaction scope. The block's repository
// operations commit together or not at all. Concurrent calls are serialized;
// a call from inside a running scope is rejected.
func (s *Session) InTransaction(ctx context.Context, fn func(context.Context, domain.Repositories) error) error {
	if ctx.Value(txMarkerKey{}) != nil {
		return domain.ErrNestedTransaction
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	txCtx := context.WithValue(ctx, txMarkerKey{}, struct{}{})
	return s.db.WithContext(txCtx).Transaction(func(tx *gorm.DB) error {
		return fn(txCtx, newRepositories(tx))
	})
}

// Close releases the store handle. An in-memory store is discarded.
func (s *Session) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("close: %v: %w", err, domain.ErrConnection)
	}
	return sqlDB.Close()
}

var _ domain.Session = (*Session)(nil)
