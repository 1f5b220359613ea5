package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"librarydb/internal/auth"
	"librarydb/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TestBook is a canned book for handler tests.
var TestBook = entity.Book{
	BookID:          1,
	Title:           "The Left Hand of Darkness",
	Author:          "Ursula K. Le Guin",
	AvailableCopies: 2,
	TotalCopies:     3,
}

// TestMember is a canned member for handler tests.
var TestMember = entity.Member{
	MemberID:   1,
	MemberName: "Ada Lovelace",
	Email:      "ada@example.com",
	JoinDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
}

// GenerateTestToken mints a librarian JWT for testing.
func GenerateTestToken(secret string) string {
	token, _ := auth.GenerateToken(secret, "test-librarian", auth.RoleLibrarian, time.Hour)
	return token
}

// GenerateTokenWithRole mints a JWT with an arbitrary role for testing.
func GenerateTokenWithRole(secret, role string) string {
	token, _ := auth.GenerateToken(secret, "test-subject", role, time.Hour)
	return token
}

// GenerateExpiredToken mints an already-expired librarian JWT.
func GenerateExpiredToken(secret string) string {
	c := auth.Claims{
		Sub:  "test-librarian",
		Role: auth.RoleLibrarian,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest creates an HTTP request with an optional JSON body.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithAuth creates an HTTP request carrying a bearer token.
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordResponse is a decoded HTTP response for assertions.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes a recorder into a RecordResponse.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
