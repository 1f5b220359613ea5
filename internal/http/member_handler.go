package http

import (
	"context"
	"encoding/json"
	"net/http"

	"librarydb/internal/entity"
)

type MemberStore interface {
	Create(ctx context.Context, member *entity.Member) error
	List(ctx context.Context) ([]entity.Member, error)
}

type MemberHandler struct {
	members MemberStore
}

func NewMemberHandler(members MemberStore) *MemberHandler {
	return &MemberHandler{members: members}
}

type CreateMemberRequest struct {
	MemberName string `json:"member_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.members.List(r.Context())
	if err != nil {
		storeError(w, err)
		return
	}
	JSONSuccess(w, members)
}

func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "INVALID_BODY", "malformed JSON body", nil)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request", validationDetails(errs))
		return
	}

	member := entity.Member{
		MemberName: req.MemberName,
		Email:      req.Email,
	}
	if err := h.members.Create(r.Context(), &member); err != nil {
		storeError(w, err)
		return
	}
	JSONSuccessCreated(w, member)
}
