package entity

import "time"

// Row types for the derived views. One struct per view, columns in view order.

type CurrentBorrowing struct {
	BorrowingID int64      `json:"borrowing_id"`
	BookID      int64      `json:"book_id"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	MemberID    int64      `json:"member_id"`
	MemberName  string     `json:"member_name"`
	BorrowDate  time.Time  `json:"borrow_date"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

type ActiveMember struct {
	MemberID       int64      `json:"member_id"`
	MemberName     string     `json:"member_name"`
	BorrowedBooks  int        `json:"borrowed_books"`
	LastBorrowDate *time.Time `json:"last_borrow_date,omitempty"`
}

// GenreStats has a nil Genre for the NULL-genre group.
type GenreStats struct {
	Genre           *string `json:"genre"`
	BookCount       int     `json:"book_count"`
	CopiesAvailable *int    `json:"copies_available"`
}

type OverdueBook struct {
	BorrowingID int64     `json:"borrowing_id"`
	BookID      int64     `json:"book_id"`
	Title       string    `json:"title"`
	MemberID    int64     `json:"member_id"`
	MemberName  string    `json:"member_name"`
	BorrowDate  time.Time `json:"borrow_date"`
	DueDate     time.Time `json:"due_date"`
	DaysOverdue int       `json:"days_overdue"`
}

type BookTitle struct {
	BookID int64  `json:"book_id"`
	Title  string `json:"title"`
}

type AvailableBook struct {
	BookID          int64  `json:"book_id"`
	Title           string `json:"title"`
	AvailableCopies int    `json:"available_copies"`
}
