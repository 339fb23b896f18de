package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/halaleats/backend/internal/api/validation"
	"github.com/halaleats/backend/internal/domain/entities"
	"github.com/halaleats/backend/internal/domain/repositories"
)

// FriendHandler handles friend-link HTTP requests. Links are directed;
// neither duplicates nor reciprocal pairs are rejected.
type FriendHandler struct {
	friendRepo repositories.FriendRepository
}

// NewFriendHandler creates a new friend handler
func NewFriendHandler(friendRepo repositories.FriendRepository) *FriendHandler {
	return &FriendHandler{
		friendRepo: friendRepo,
	}
}

var createFriendRules = validation.Rules{
	{Name: "user_id", Required: true, Checks: []validation.Check{validation.IsUUID}},
	{Name: "friend_id", Required: true, Checks: []validation.Check{validation.IsUUID}},
}

// ListFriends handles GET /api/friends
func (h *FriendHandler) ListFriends(w http.ResponseWriter, r *http.Request) {
	friends, err := h.friendRepo.List(r.Context())
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to fetch friends.")
		return
	}

	respondWithJSON(w, http.StatusOK, friends)
}

// GetFriend handles GET /api/friends/{id}
func (h *FriendHandler) GetFriend(w http.ResponseWriter, r *http.Request) {
	friend, err := h.friendRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to fetch friend relationship.")
		return
	}

	respondWithJSON(w, http.StatusOK, friend)
}

// CreateFriend handles POST /api/friends
func (h *FriendHandler) CreateFriend(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if violations := createFriendRules.Validate(body); len(violations) > 0 {
		respondWithValidationErrors(w, violations)
		return
	}

	friend := &entities.Friend{
		ID:        uuid.New().String(),
		UserID:    stringField(body, "user_id"),
		FriendID:  stringField(body, "friend_id"),
		CreatedAt: time.Now().UTC(),
	}

	if err := h.friendRepo.Create(r.Context(), friend); err != nil {
		respondWithRepositoryError(w, r, err, "Failed to add a new friend.")
		return
	}

	respondWithJSON(w, http.StatusCreated, friend)
}

// DeleteFriend handles DELETE /api/friends/{id}
func (h *FriendHandler) DeleteFriend(w http.ResponseWriter, r *http.Request) {
	friend, err := h.friendRepo.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to remove friend relationship.")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Friend relationship removed successfully.",
		"friend":  friend,
	})
}
