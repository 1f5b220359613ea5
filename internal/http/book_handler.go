package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"librarydb/internal/entity"
)

type BookStore interface {
	Create(ctx context.Context, book *entity.Book) error
	GetByID(ctx context.Context, bookID int64) (entity.Book, error)
	List(ctx context.Context, genre string) ([]entity.Book, error)
}

type BookHandler struct {
	books BookStore
}

func NewBookHandler(books BookStore) *BookHandler {
	return &BookHandler{books: books}
}

type CreateBookRequest struct {
	Title           string  `json:"title" validate:"required"`
	Author          string  `json:"author" validate:"required"`
	PublishedYear   *int    `json:"published_year" validate:"omitempty,gte=0,lte=9999"`
	Genre           *string `json:"genre"`
	AvailableCopies int     `json:"available_copies" validate:"gte=0"`
	TotalCopies     int     `json:"total_copies" validate:"gte=0"`
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.List(r.Context(), r.URL.Query().Get("genre"))
	if err != nil {
		storeError(w, err)
		return
	}
	JSONSuccess(w, books)
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "INVALID_BODY", "malformed JSON body", nil)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request", validationDetails(errs))
		return
	}

	book := entity.Book{
		Title:           req.Title,
		Author:          req.Author,
		PublishedYear:   req.PublishedYear,
		Genre:           req.Genre,
		AvailableCopies: req.AvailableCopies,
		TotalCopies:     req.TotalCopies,
	}
	if err := h.books.Create(r.Context(), &book); err != nil {
		storeError(w, err)
		return
	}
	JSONSuccessCreated(w, book)
}

// GetByID handles /books/{id} with the ServeMux prefix route.
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	const prefix = "/books/"
	idStr := strings.TrimPrefix(r.URL.Path, prefix)
	if idStr == "" || strings.Contains(idStr, "/") {
		http.NotFound(w, r)
		return
	}
	bookID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "INVALID_ID", "book id must be an integer", nil)
		return
	}

	book, err := h.books.GetByID(r.Context(), bookID)
	if err != nil {
		storeError(w, err)
		return
	}
	JSONSuccess(w, book)
}
