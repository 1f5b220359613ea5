package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"librarydb/internal/entity"
)

type BorrowingStore interface {
	Borrow(ctx context.Context, borrowing *entity.Borrowing) error
	Return(ctx context.Context, borrowingID int64) (entity.Borrowing, error)
}

type BorrowingHandler struct {
	borrowings BorrowingStore
}

func NewBorrowingHandler(borrowings BorrowingStore) *BorrowingHandler {
	return &BorrowingHandler{borrowings: borrowings}
}

type CreateBorrowingRequest struct {
	BookID   int64 `json:"book_id" validate:"required,gt=0"`
	MemberID int64 `json:"member_id" validate:"required,gt=0"`
	// Optional, calendar date as YYYY-MM-DD.
	DueDate string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *BorrowingHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req CreateBorrowingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "INVALID_BODY", "malformed JSON body", nil)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request", validationDetails(errs))
		return
	}

	borrowing := entity.Borrowing{
		BookID:   req.BookID,
		MemberID: req.MemberID,
	}
	if req.DueDate != "" {
		due, _ := time.Parse("2006-01-02", req.DueDate)
		borrowing.DueDate = &due
	}
	if err := h.borrowings.Borrow(r.Context(), &borrowing); err != nil {
		storeError(w, err)
		return
	}
	JSONSuccessCreated(w, borrowing)
}

// ServeReturn handles POST /borrowings/{id}/return.
func (h *BorrowingHandler) ServeReturn(w http.ResponseWriter, r *http.Request) {
	const prefix = "/borrowings/"
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 2 || parts[1] != "return" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		JSONError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use POST to return a loan", nil)
		return
	}

	borrowingID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "INVALID_ID", "borrowing id must be an integer", nil)
		return
	}

	borrowing, err := h.borrowings.Return(r.Context(), borrowingID)
	if err != nil {
		storeError(w, err)
		return
	}
	JSONSuccess(w, borrowing)
}
