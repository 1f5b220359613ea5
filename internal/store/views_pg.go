package store

import (
	"context"

	"librarydb/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ViewsPG reads the six derived views and writes through the two updatable
// ones. Writes are issued against the view itself, not the base table, so
// the engine's own updatability and check-option rules stay in force.
type ViewsPG struct {
	db *pgxpool.Pool
}

func NewViewsPG(db *pgxpool.Pool) *ViewsPG {
	return &ViewsPG{db: db}
}

func (r *ViewsPG) CurrentBorrowings(ctx context.Context) ([]entity.CurrentBorrowing, error) {
	const query = `
	SELECT borrowing_id, book_id, title, author, member_id, member_name, borrow_date, due_date
	FROM current_borrowings
	ORDER BY borrowing_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.CurrentBorrowing
	for rows.Next() {
		var cb entity.CurrentBorrowing
		if err := rows.Scan(
			&cb.BorrowingID,
			&cb.BookID,
			&cb.Title,
			&cb.Author,
			&cb.MemberID,
			&cb.MemberName,
			&cb.BorrowDate,
			&cb.DueDate,
		); err != nil {
			return nil, err
		}
		out = append(out, cb)
	}
	return out, rows.Err()
}

func (r *ViewsPG) ActiveMembers(ctx context.Context) ([]entity.ActiveMember, error) {
	const query = `
	SELECT member_id, member_name, borrowed_books, last_borrow_date
	FROM active_members
	ORDER BY member_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.ActiveMember
	for rows.Next() {
		var am entity.ActiveMember
		if err := rows.Scan(&am.MemberID, &am.MemberName, &am.BorrowedBooks, &am.LastBorrowDate); err != nil {
			return nil, err
		}
		out = append(out, am)
	}
	return out, rows.Err()
}

func (r *ViewsPG) BooksByGenre(ctx context.Context) ([]entity.GenreStats, error) {
	const query = `
	SELECT genre, book_count, copies_available
	FROM books_by_genre
	ORDER BY genre NULLS LAST
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.GenreStats
	for rows.Next() {
		var gs entity.GenreStats
		if err := rows.Scan(&gs.Genre, &gs.BookCount, &gs.CopiesAvailable); err != nil {
			return nil, err
		}
		out = append(out, gs)
	}
	return out, rows.Err()
}

func (r *ViewsPG) OverdueBooks(ctx context.Context) ([]entity.OverdueBook, error) {
	const query = `
	SELECT borrowing_id, book_id, title, member_id, member_name, borrow_date, due_date, days_overdue
	FROM overdue_books
	ORDER BY borrowing_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.OverdueBook
	for rows.Next() {
		var ob entity.OverdueBook
		if err := rows.Scan(
			&ob.BorrowingID,
			&ob.BookID,
			&ob.Title,
			&ob.MemberID,
			&ob.MemberName,
			&ob.BorrowDate,
			&ob.DueDate,
			&ob.DaysOverdue,
		); err != nil {
			return nil, err
		}
		out = append(out, ob)
	}
	return out, rows.Err()
}

func (r *ViewsPG) BookTitles(ctx context.Context) ([]entity.BookTitle, error) {
	const query = `
	SELECT book_id, title
	FROM book_titles
	ORDER BY book_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.BookTitle
	for rows.Next() {
		var bt entity.BookTitle
		if err := rows.Scan(&bt.BookID, &bt.Title); err != nil {
			return nil, err
		}
		out = append(out, bt)
	}
	return out, rows.Err()
}

func (r *ViewsPG) AvailableBooks(ctx context.Context) ([]entity.AvailableBook, error) {
	const query = `
	SELECT book_id, title, available_copies
	FROM available_books
	ORDER BY book_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.AvailableBook
	for rows.Next() {
		var ab entity.AvailableBook
		if err := rows.Scan(&ab.BookID, &ab.Title, &ab.AvailableCopies); err != nil {
			return nil, err
		}
		out = append(out, ab)
	}
	return out, rows.Err()
}

// UpdateBookTitle retitles one book through the book_titles view; the
// engine maps the write onto the matching books row and touches nothing
// else.
func (r *ViewsPG) UpdateBookTitle(ctx context.Context, bookID int64, title string) error {
	const query = `UPDATE book_titles SET title = $2 WHERE book_id = $1`
	result, err := r.db.Exec(ctx, query, bookID, title)
	if err != nil {
		return mapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateAvailableCopies writes through available_books. The view's check
// option rejects any post-image with available_copies <= 0, surfaced as
// ErrCheckOption with the base row unchanged. A book already at zero
// copies is invisible through the view and reports ErrNotFound.
func (r *ViewsPG) UpdateAvailableCopies(ctx context.Context, bookID int64, copies int) error {
	const query = `UPDATE available_books SET available_copies = $2 WHERE book_id = $1`
	result, err := r.db.Exec(ctx, query, bookID, copies)
	if err != nil {
		return mapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
