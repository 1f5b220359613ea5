package http

import (
	"errors"
	"net/http"

	"librarydb/internal/store"
)

// storeError translates the store's error taxonomy into a response. Every
// rejection is statement-granular on the database side, so there is never
// partial state to report.
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "no such row", nil)
	case errors.Is(err, store.ErrDuplicate):
		JSONError(w, http.StatusConflict, "DUPLICATE", "value already exists", nil)
	case errors.Is(err, store.ErrForeignKey):
		JSONError(w, http.StatusUnprocessableEntity, "FOREIGN_KEY_VIOLATION", "referenced row does not exist", nil)
	case errors.Is(err, store.ErrCheckOption):
		JSONError(w, http.StatusConflict, "CHECK_OPTION_VIOLATION", "row would no longer satisfy the view predicate", nil)
	case errors.Is(err, store.ErrNotUpdatable):
		JSONError(w, http.StatusMethodNotAllowed, "VIEW_NOT_UPDATABLE", "view does not accept writes", nil)
	case errors.Is(err, store.ErrNoCopies):
		JSONError(w, http.StatusConflict, "NO_COPIES", "no available copies to borrow", nil)
	default:
		JSONError(w, http.StatusInternalServerError, "INTERNAL", "server error", nil)
	}
}
