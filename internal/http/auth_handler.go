package http

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"librarydb/internal/auth"
)

const tokenTTL = 12 * time.Hour

// AuthHandler exchanges the configured API key for a short-lived librarian
// token. There is no user store behind this; members in the schema are
// patrons, not credentials.
type AuthHandler struct {
	secret string
	apiKey string
}

func NewAuthHandler(secret, apiKey string) *AuthHandler {
	return &AuthHandler{secret: secret, apiKey: apiKey}
}

type TokenRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "INVALID_BODY", "malformed JSON body", nil)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request", validationDetails(errs))
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(h.apiKey)) != 1 {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid api key", nil)
		return
	}

	token, err := auth.GenerateToken(h.secret, "librarian", auth.RoleLibrarian, tokenTTL)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL", "server error", nil)
		return
	}
	JSONSuccess(w, map[string]any{
		"token":      token,
		"expires_in": int(tokenTTL.Seconds()),
	})
}
