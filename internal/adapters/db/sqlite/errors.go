package sqlite

import (
	"errors"
	"fmt"

	"github.com/sporttracker/sporttracker/internal/domain"
	"gorm.io/gorm"
	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

func constraintCode(err error) (int, bool) {
	var se *sqlite3.Error
	if !errors.As(err, &se) {
		return 0, false
	}
	return se.Code(), true
}

// writeError maps a failed insert or update to the domain taxonomy: identity
// and foreign-key conflicts are integrity violations, everything else is a
// connection-level failure.
func writeError(what string, err error) error {
	if code, ok := constraintCode(err); ok {
		switch code {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY,
			sqlite3lib.SQLITE_CONSTRAINT_UNIQUE,
			sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY,
			sqlite3lib.SQLITE_CONSTRAINT:
			return fmt.Errorf("%s: %v: %w", what, err, domain.ErrIntegrity)
		}
	}
	return fmt.Errorf("%s: %v: %w", what, err, domain.ErrConnection)
}

// deleteError maps a failed delete: a foreign-key violation means dependents
// still reference the row.
func deleteError(what string, err error) error {
	if code, ok := constraintCode(err); ok {
		switch code {
		case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY, sqlite3lib.SQLITE_CONSTRAINT_TRIGGER, sqlite3lib.SQLITE_CONSTRAINT:
			return fmt.Errorf("%s: %v: %w", what, err, domain.ErrConstraint)
		}
	}
	return fmt.Errorf("%s: %v: %w", what, err, domain.ErrConnection)
}

func readError(what string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %v: %w", what, err, domain.ErrConnection)
}
