package store

import (
	"context"
	"errors"

	"librarydb/internal/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BorrowingPG struct {
	db *pgxpool.Pool
}

func NewBorrowingPG(db *pgxpool.Pool) *BorrowingPG {
	return &BorrowingPG{db: db}
}

// Borrow claims one available copy and opens a loan for it, in a single
// transaction. The copy decrement is guarded so the count never goes
// negative; a book with no copies left fails with ErrNoCopies before any
// borrowing row exists.
func (r *BorrowingPG) Borrow(ctx context.Context, borrowing *entity.Borrowing) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const claim = `
	UPDATE books
	SET available_copies = available_copies - 1
	WHERE book_id = $1 AND available_copies > 0
	`
	result, err := tx.Exec(ctx, claim, borrowing.BookID)
	if err != nil {
		return mapPgError(err)
	}
	if result.RowsAffected() == 0 {
		// Distinguish a missing book from one that is out of copies.
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE book_id = $1)`, borrowing.BookID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		return ErrNoCopies
	}

	const insert = `
	INSERT INTO borrowings (book_id, member_id, due_date)
	VALUES ($1, $2, $3)
	RETURNING borrowing_id, borrow_date
	`
	err = tx.QueryRow(ctx, insert,
		borrowing.BookID,
		borrowing.MemberID,
		borrowing.DueDate,
	).Scan(&borrowing.BorrowingID, &borrowing.BorrowDate)
	if err != nil {
		return mapPgError(err)
	}

	return tx.Commit(ctx)
}

// Return closes an open loan and releases its copy. A borrowing that is
// already closed is left untouched; closed loans are immutable.
func (r *BorrowingPG) Return(ctx context.Context, borrowingID int64) (entity.Borrowing, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Borrowing{}, err
	}
	defer tx.Rollback(ctx)

	const closeLoan = `
	UPDATE borrowings
	SET return_date = CURRENT_DATE
	WHERE borrowing_id = $1 AND return_date IS NULL
	RETURNING borrowing_id, book_id, member_id, borrow_date, due_date, return_date
	`
	var b entity.Borrowing
	err = tx.QueryRow(ctx, closeLoan, borrowingID).Scan(
		&b.BorrowingID,
		&b.BookID,
		&b.MemberID,
		&b.BorrowDate,
		&b.DueDate,
		&b.ReturnDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Borrowing{}, ErrNotFound
		}
		return entity.Borrowing{}, err
	}

	const release = `
	UPDATE books
	SET available_copies = available_copies + 1
	WHERE book_id = $1
	`
	if _, err := tx.Exec(ctx, release, b.BookID); err != nil {
		return entity.Borrowing{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return entity.Borrowing{}, err
	}
	return b, nil
}

func (r *BorrowingPG) GetByID(ctx context.Context, borrowingID int64) (entity.Borrowing, error) {
	const query = `
	SELECT borrowing_id, book_id, member_id, borrow_date, due_date, return_date
	FROM borrowings
	WHERE borrowing_id = $1
	`
	var b entity.Borrowing
	err := r.db.QueryRow(ctx, query, borrowingID).Scan(
		&b.BorrowingID,
		&b.BookID,
		&b.MemberID,
		&b.BorrowDate,
		&b.DueDate,
		&b.ReturnDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Borrowing{}, ErrNotFound
		}
		return entity.Borrowing{}, err
	}
	return b, nil
}
