package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewsPG_CurrentBorrowings(t *testing.T) {
	db := setupTestDB(t)
	views := NewViewsPG(db)
	ctx := context.Background()

	book := seedBook(t, db, "The Go Programming Language", "Donovan", "Technology", 2, 2)
	member := seedMember(t, db, "Ada", "ada@example.com")
	open := seedBorrowing(t, db, book.BookID, member.MemberID, nil)

	closed := seedBorrowing(t, db, book.BookID, member.MemberID, nil)
	_, err := NewBorrowingPG(db).Return(ctx, closed.BorrowingID)
	require.NoError(t, err)

	rows, err := views.CurrentBorrowings(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, open.BorrowingID, rows[0].BorrowingID)
	assert.Equal(t, book.BookID, rows[0].BookID)
	assert.Equal(t, "The Go Programming Language", rows[0].Title)
	assert.Equal(t, "Donovan", rows[0].Author)
	assert.Equal(t, member.MemberID, rows[0].MemberID)
	assert.Equal(t, "Ada", rows[0].MemberName)
}

func TestViewsPG_ActiveMembers_IncludesZeroLoanMembers(t *testing.T) {
	db := setupTestDB(t)
	views := NewViewsPG(db)
	ctx := context.Background()

	book := seedBook(t, db, "Dune", "Herbert", "Science Fiction", 3, 3)
	reader := seedMember(t, db, "Ada", "ada@example.com")
	idle := seedMember(t, db, "Grace", "grace@example.com")
	seedBorrowing(t, db, book.BookID, reader.MemberID, nil)
	seedBorrowing(t, db, book.BookID, reader.MemberID, nil)

	rows, err := views.ActiveMembers(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[int64]int{}
	for _, r := range rows {
		byID[r.MemberID] = r.BorrowedBooks
	}
	assert.Equal(t, 2, byID[reader.MemberID])
	assert.Equal(t, 0, byID[idle.MemberID])

	for _, r := range rows {
		if r.MemberID == idle.MemberID {
			assert.Nil(t, r.LastBorrowDate)
		} else {
			assert.NotNil(t, r.LastBorrowDate)
		}
	}
}

func TestViewsPG_ActiveMembers_ClosedLoansDoNotCount(t *testing.T) {
	db := setupTestDB(t)
	views := NewViewsPG(db)
	ctx := context.Background()

	book := seedBook(t, db, "Dune", "Herbert", "Science Fiction", 1, 1)
	member := seedMember(t, db, "Ada", "ada@example.com")
	br := seedBorrowing(t, db, book.BookID, member.MemberID, nil)
	_, err := NewBorrowingPG(db).Return(ctx, br.BorrowingID)
	require.NoError(t, err)

	rows, err := views.ActiveMembers(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].BorrowedBooks)
	assert.Nil(t, rows[0].LastBorrowDate)
}

func TestViewsPG_BooksByGenre_NullGenreIsItsOwnGroup(t *testing.T) {
	db := setupTestDB(t)
	views := NewViewsPG(db)

	seedBook(t, db, "Dune", "Herbert", "Science Fiction", 2, 2)
	seedBook(t, db, "Foundation", "Asimov", "Science Fiction", 1, 1)
	seedBook(t, db, "Odd Pamphlet", "Anon", "", 4, 4)

	rows, err := views.BooksByGenre(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// NULLS LAST ordering puts the NULL-genre group at the end.
	require.NotNil(t, rows[0].Genre)
	assert.Equal(t, "Science Fiction", *rows[0].Genre)
	assert.Equal(t, 2, rows[0].BookCount)
	require.NotNil(t, rows[0].CopiesAvailable)
	assert.Equal(t, 3, *rows[0].CopiesAvailable)

	assert.Nil(t, rows[1].Genre)
	assert.Equal(t, 1, rows[1].BookCount)
	require.NotNil(t, rows[1].CopiesAvailable)
	assert.Equal(t, 4, *rows[1].CopiesAvailable)
}

func TestViewsPG_OverdueBooks(t *testing.T) {
	db := setupTestDB(t)
	views := NewViewsPG(db)
	ctx := context.Background()

	book := seedBook(t, db, "Dune", "Herbert", "Science Fiction", 3, 3)
	member := seedMember(t, db, "Ada", "ada@example.com")

	late := seedBorrowing(t, db, book.BookID, member.MemberID, daysAgo(5))
	seedBorrowing(t, db, book.BookID, member.MemberID, daysAgo(-7)) // due next week
	seedBorrowing(t, db, book.BookID, member.MemberID, nil)         // no due date

	rows, err := views.OverdueBooks(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, late.BorrowingID, rows[0].BorrowingID)
	assert.Equal(t, 5, rows[0].DaysOverdue)
}

func TestViewsPG_OverdueBooks_ReturnedLoanDropsOut(t *testing.T) {
	db := setupTestDB(t)
	views := NewViewsPG(db)
	ctx := context.Background()

	book := seedBook(t, db, "Dune", "Herbert", "Science Fiction", 1, 1)
	member := seedMember(t, db, "Ada", "ada@example.com")
	late := seedBorrowing(t, db, book.BookID, member.MemberID, daysAgo(10))

	rows, err := views.OverdueBooks(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, err = NewBorrowingPG(db).Return(ctx, late.BorrowingID)
	require.NoError(t, err)

	rows, err = views.OverdueBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestViewsPG_UpdateBookTitle(t *testing.T) {
	db := setupTestDB(t)
	views := NewViewsPG(db)
	ctx := context.Background()

	book := seedBook(t, db, "Draft Title", "Donovan", "Technology", 2, 3)

	err := views.UpdateBookTitle(ctx, book.BookID, "Final Title")
	require.NoError(t, err)

	got, err := NewBookPG(db).GetByID(ctx, book.BookID)
	require.NoError(t, err)
	assert.Equal(t, "Final Title", got.Title)
	// Everything but the title is untouched.
	assert.Equal(t, "Donovan", got.Author)
	assert.Equal(t, 2, got.AvailableCopies)
	assert.Equal(t, 3, got.TotalCopies)
}

func TestViewsPG_UpdateBookTitle_MissingBook(t *testing.T) {
	db := setupTestDB(t)
	views := NewViewsPG(db)

	err := views.UpdateBookTitle(context.Background(), 9999, "Nothing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestViewsPG_AvailableBooks_HidesExhaustedBooks(t *testing.T) {
	db := setupTestDB(t)
	views := NewViewsPG(db)

	seedBook(t, db, "In Stock", "Author", "", 2, 2)
	gone := seedBook(t, db, "All Out", "Author", "", 0, 1)

	rows, err := views.AvailableBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.NotEqual(t, gone.BookID, rows[0].BookID)
	assert.Equal(t, "In Stock", rows[0].Title)
}

func TestViewsPG_UpdateAvailableCopies_CheckOptionRejectsZero(t *testing.T) {
	db := setupTestDB(t)
	views := NewViewsPG(db)
	ctx := context.Background()

	book := seedBook(t, db, "Dune", "Herbert", "Science Fiction", 2, 2)

	err := views.UpdateAvailableCopies(ctx, book.BookID, 0)
	assert.ErrorIs(t, err, ErrCheckOption)

	// Rejected with no partial effect.
	got, err := NewBookPG(db).GetByID(ctx, book.BookID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.AvailableCopies)
}

func TestViewsPG_UpdateAvailableCopies_ValidWrite(t *testing.T) {
	db := setupTestDB(t)
	views := NewViewsPG(db)
	ctx := context.Background()

	book := seedBook(t, db, "Dune", "Herbert", "Science Fiction", 2, 5)

	err := views.UpdateAvailableCopies(ctx, book.BookID, 5)
	require.NoError(t, err)

	got, err := NewBookPG(db).GetByID(ctx, book.BookID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.AvailableCopies)
}

func TestViewsPG_UpdateAvailableCopies_ExhaustedBookInvisible(t *testing.T) {
	db := setupTestDB(t)
	views := NewViewsPG(db)

	gone := seedBook(t, db, "All Out", "Author", "", 0, 1)

	err := views.UpdateAvailableCopies(context.Background(), gone.BookID, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestViewsPG_BookTitles(t *testing.T) {
	db := setupTestDB(t)
	views := NewViewsPG(db)

	first := seedBook(t, db, "Alpha", "A", "", 1, 1)
	second := seedBook(t, db, "Beta", "B", "", 0, 1)

	rows, err := views.BookTitles(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.BookID, rows[0].BookID)
	assert.Equal(t, "Alpha", rows[0].Title)
	assert.Equal(t, second.BookID, rows[1].BookID)
	assert.Equal(t, "Beta", rows[1].Title)
}

func TestViewsPG_WriteToReadOnlyViewRejectedByEngine(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	book := seedBook(t, db, "Dune", "Herbert", "Science Fiction", 1, 1)
	member := seedMember(t, db, "Ada", "ada@example.com")
	seedBorrowing(t, db, book.BookID, member.MemberID, nil)

	_, err := db.Exec(ctx, `UPDATE current_borrowings SET title = 'X' WHERE book_id = $1`, book.BookID)
	assert.ErrorIs(t, mapPgError(err), ErrNotUpdatable)

	_, err = db.Exec(ctx, `UPDATE active_members SET borrowed_books = 0`)
	assert.ErrorIs(t, mapPgError(err), ErrNotUpdatable)
}

func TestViewsPG_OverdueDaysMatchCalendarDiff(t *testing.T) {
	db := setupTestDB(t)
	views := NewViewsPG(db)
	ctx := context.Background()

	book := seedBook(t, db, "Dune", "Herbert", "Science Fiction", 1, 1)
	member := seedMember(t, db, "Ada", "ada@example.com")

	due := time.Now().AddDate(0, 0, -3)
	seedBorrowing(t, db, book.BookID, member.MemberID, &due)

	rows, err := views.OverdueBooks(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].DaysOverdue)
}
