package entity

import "time"

// A Borrowing with a nil ReturnDate is an open loan; once ReturnDate is set
// the loan is closed and never reopened.
type Borrowing struct {
	BorrowingID int64      `json:"borrowing_id"`
	BookID      int64      `json:"book_id"`
	MemberID    int64      `json:"member_id"`
	BorrowDate  time.Time  `json:"borrow_date"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ReturnDate  *time.Time `json:"return_date,omitempty"`
}

func (b Borrowing) Open() bool {
	return b.ReturnDate == nil
}
