package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound means the target row does not exist, or is not visible
	// through the view the write was addressed to.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is a unique-constraint violation (member email).
	ErrDuplicate = errors.New("duplicate value")
	// ErrForeignKey means a borrowing referenced a nonexistent book or
	// member, or a delete would orphan existing borrowings.
	ErrForeignKey = errors.New("referenced row does not exist")
	// ErrCheckOption means a write through available_books produced a row
	// failing the view's filter; the base table is unchanged.
	ErrCheckOption = errors.New("row violates view check option")
	// ErrNotUpdatable means a write was addressed to a join or aggregate
	// view.
	ErrNotUpdatable = errors.New("view is not updatable")
	// ErrNoCopies means a borrow found no available copy to claim.
	ErrNoCopies = errors.New("no available copies")
)

// SQLSTATE classes of interest. The engine enforces all integrity here;
// the store only translates its verdicts.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckOptionViolation = "44000"
	// Postgres reports writes against non-auto-updatable views as either
	// feature-not-supported or object-not-in-prerequisite-state depending
	// on where rewriting fails.
	codeFeatureNotSupported = "0A000"
	codeObjectNotReady      = "55000"
)

// mapPgError translates engine rejections into the store's error taxonomy.
// Unrecognized errors pass through unchanged.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return ErrDuplicate
	case codeForeignKeyViolation:
		return ErrForeignKey
	case codeCheckOptionViolation:
		return ErrCheckOption
	case codeFeatureNotSupported, codeObjectNotReady:
		return ErrNotUpdatable
	}
	return err
}
