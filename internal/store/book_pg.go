package store

import (
	"context"
	"errors"

	"librarydb/internal/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) Create(ctx context.Context, book *entity.Book) error {
	const query = `
	INSERT INTO books (title, author, published_year, genre, available_copies, total_copies)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING book_id
	`
	err := r.db.QueryRow(ctx, query,
		book.Title,
		book.Author,
		book.PublishedYear,
		book.Genre,
		book.AvailableCopies,
		book.TotalCopies,
	).Scan(&book.BookID)
	return mapPgError(err)
}

func (r *BookPG) GetByID(ctx context.Context, bookID int64) (entity.Book, error) {
	const query = `
	SELECT book_id, title, author, published_year, genre, available_copies, total_copies
	FROM books
	WHERE book_id = $1
	`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, bookID).Scan(
		&b.BookID,
		&b.Title,
		&b.Author,
		&b.PublishedYear,
		&b.Genre,
		&b.AvailableCopies,
		&b.TotalCopies,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

// List returns books, optionally filtered by genre. Ordering is by primary
// key; the schema itself guarantees none.
func (r *BookPG) List(ctx context.Context, genre string) ([]entity.Book, error) {
	query := `
	SELECT book_id, title, author, published_year, genre, available_copies, total_copies
	FROM books
	`
	args := []any{}
	if genre != "" {
		query += ` WHERE genre = $1`
		args = append(args, genre)
	}
	query += ` ORDER BY book_id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(
			&b.BookID,
			&b.Title,
			&b.Author,
			&b.PublishedYear,
			&b.Genre,
			&b.AvailableCopies,
			&b.TotalCopies,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BookPG) Delete(ctx context.Context, bookID int64) error {
	const query = `DELETE FROM books WHERE book_id = $1`
	result, err := r.db.Exec(ctx, query, bookID)
	if err != nil {
		return mapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
