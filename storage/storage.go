// Package storage is the typed data-access layer. It translates portal
// operations into relational reads and writes and carries no
// authorization logic; scoping to a partner is always the caller's job.
package storage

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors surfaced to the API layer so handlers can pick a
// status code without inspecting driver errors.
var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("duplicate record")
	ErrForeignKey = errors.New("referenced record does not exist")
)

// Storage wraps a gorm handle. Construct one per process (or per test)
// and pass it to the controllers; there is no package-level instance.
type Storage struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

// Transaction runs fn against a transactional Storage. Used by the API
// layer to keep row writes and partner counter updates atomic.
func (s *Storage) Transaction(fn func(tx *Storage) error) error {
	return s.db.Transaction(func(txdb *gorm.DB) error {
		return fn(New(txdb))
	})
}

// wrapErr maps gorm's translated errors onto the package sentinels.
// Requires the connection to be opened with TranslateError so unique and
// foreign key violations look the same on Postgres and sqlite.
func wrapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	default:
		return err
	}
}
