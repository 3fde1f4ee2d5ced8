package domain

import "errors"

// The store surfaces every failure as exactly one of these sentinels, wrapped
// with context. Repositories never coerce or swallow a violation.
var (
	// ErrSchema: the store file exists but its structure is unrecognized or
	// incompatible. Fatal to opening that store.
	ErrSchema = errors.New("incompatible store schema")

	// ErrNotFound: an operation addressed an identity that does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrIntegrity: a foreign key does not resolve, or a write would create a
	// dangling or duplicate identity. Aborts the enclosing transaction.
	ErrIntegrity = errors.New("referential integrity violation")

	// ErrConstraint: a delete is blocked by existing dependents.
	ErrConstraint = errors.New("delete blocked by dependent entities")

	// ErrConnection: the underlying store could not be opened, read or
	// written.
	ErrConnection = errors.New("store connection failed")

	// ErrNestedTransaction: InTransaction was called from inside a running
	// transaction scope. This is a programming error, not a store condition.
	ErrNestedTransaction = errors.New("nested transaction not supported")
)
