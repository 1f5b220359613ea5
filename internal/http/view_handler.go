package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"librarydb/internal/entity"
	"librarydb/internal/view"
)

// ViewStore is the read/write surface over the derived views.
type ViewStore interface {
	CurrentBorrowings(ctx context.Context) ([]entity.CurrentBorrowing, error)
	ActiveMembers(ctx context.Context) ([]entity.ActiveMember, error)
	BooksByGenre(ctx context.Context) ([]entity.GenreStats, error)
	OverdueBooks(ctx context.Context) ([]entity.OverdueBook, error)
	BookTitles(ctx context.Context) ([]entity.BookTitle, error)
	AvailableBooks(ctx context.Context) ([]entity.AvailableBook, error)
	UpdateBookTitle(ctx context.Context, bookID int64, title string) error
	UpdateAvailableCopies(ctx context.Context, bookID int64, copies int) error
}

type ViewHandler struct {
	views ViewStore
}

func NewViewHandler(views ViewStore) *ViewHandler {
	return &ViewHandler{views: views}
}

type UpdateTitleRequest struct {
	Title string `json:"title" validate:"required"`
}

type UpdateCopiesRequest struct {
	// Pointer so an explicit zero survives decoding; zero must reach the
	// engine and come back as a check-option violation, not vanish here.
	AvailableCopies *int `json:"available_copies" validate:"required"`
}

// ServeViews dispatches /views/{name} and /views/{name}/{book_id}.
func (h *ViewHandler) ServeViews(w http.ResponseWriter, r *http.Request) {
	const prefix = "/views/"
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	parts := strings.Split(strings.Trim(rest, "/"), "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		if r.Method != http.MethodGet {
			JSONError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use GET to read a view", nil)
			return
		}
		h.list(w, r, parts[0])
	case len(parts) == 2:
		if r.Method != http.MethodPatch {
			JSONError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use PATCH to write through a view", nil)
			return
		}
		h.update(w, r, parts[0], parts[1])
	default:
		http.NotFound(w, r)
	}
}

func (h *ViewHandler) list(w http.ResponseWriter, r *http.Request, name string) {
	ctx := r.Context()

	if _, ok := view.Lookup(name); !ok {
		JSONError(w, http.StatusNotFound, "VIEW_NOT_FOUND", "no such view", nil)
		return
	}

	var (
		data any
		err  error
	)
	switch name {
	case "current_borrowings":
		data, err = h.views.CurrentBorrowings(ctx)
	case "active_members":
		data, err = h.views.ActiveMembers(ctx)
	case "books_by_genre":
		data, err = h.views.BooksByGenre(ctx)
	case "overdue_books":
		data, err = h.views.OverdueBooks(ctx)
	case "book_titles":
		data, err = h.views.BookTitles(ctx)
	case "available_books":
		data, err = h.views.AvailableBooks(ctx)
	}
	if err != nil {
		storeError(w, err)
		return
	}
	JSONSuccess(w, data)
}

// update resolves the view's capability before touching the database, per
// the registry; the store's own error mapping is the second line of
// defense.
func (h *ViewHandler) update(w http.ResponseWriter, r *http.Request, name, idStr string) {
	ctx := r.Context()

	def, ok := view.Lookup(name)
	if !ok {
		JSONError(w, http.StatusNotFound, "VIEW_NOT_FOUND", "no such view", nil)
		return
	}
	if !def.Updatable() {
		JSONError(w, http.StatusMethodNotAllowed, "VIEW_NOT_UPDATABLE", "view "+name+" is read-only", nil)
		return
	}

	bookID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || bookID <= 0 {
		JSONError(w, http.StatusBadRequest, "INVALID_ID", "book id must be a positive integer", nil)
		return
	}

	switch name {
	case "book_titles":
		var req UpdateTitleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JSONError(w, http.StatusBadRequest, "INVALID_BODY", "malformed JSON body", nil)
			return
		}
		if errs := ValidateStruct(req); errs != nil {
			JSONError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request", validationDetails(errs))
			return
		}
		if err := h.views.UpdateBookTitle(ctx, bookID, req.Title); err != nil {
			storeError(w, err)
			return
		}
	case "available_books":
		var req UpdateCopiesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JSONError(w, http.StatusBadRequest, "INVALID_BODY", "malformed JSON body", nil)
			return
		}
		if errs := ValidateStruct(req); errs != nil {
			JSONError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request", validationDetails(errs))
			return
		}
		if err := h.views.UpdateAvailableCopies(ctx, bookID, *req.AvailableCopies); err != nil {
			storeError(w, err)
			return
		}
	}
	JSONSuccess(w, map[string]any{"book_id": bookID})
}
