package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/halaleats/backend/internal/api/validation"
	"github.com/halaleats/backend/internal/domain/entities"
	"github.com/halaleats/backend/internal/domain/repositories"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userRepo repositories.UserRepository
}

// NewUserHandler creates a new user handler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
	}
}

var createUserRules = validation.Rules{
	{Name: "username", Required: true, Checks: []validation.Check{validation.IsString, validation.NotEmpty}},
	{Name: "email", Required: true, Checks: []validation.Check{validation.IsEmail}},
	{Name: "profile_pic", Checks: []validation.Check{validation.IsString}},
}

var updateUserRules = validation.Rules{
	{Name: "username", Checks: []validation.Check{validation.IsString, validation.NotEmpty}},
	{Name: "email", Checks: []validation.Check{validation.IsEmail}},
	{Name: "profile_pic", Checks: []validation.Check{validation.IsString}},
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.List(r.Context())
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to fetch users.")
		return
	}

	respondWithJSON(w, http.StatusOK, users)
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to fetch user.")
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

// CreateUser handles POST /api/users. Follower counts start at zero and the
// profile picture defaults to empty.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if violations := createUserRules.Validate(body); len(violations) > 0 {
		respondWithValidationErrors(w, violations)
		return
	}

	user := &entities.User{
		ID:         uuid.New().String(),
		Username:   stringField(body, "username"),
		Email:      stringField(body, "email"),
		ProfilePic: stringField(body, "profile_pic"),
		CreatedAt:  time.Now().UTC(),
	}

	if err := h.userRepo.Create(r.Context(), user); err != nil {
		respondWithRepositoryError(w, r, err, "Failed to create a new user.")
		return
	}

	respondWithJSON(w, http.StatusCreated, user)
}

// UpdateUser handles PUT /api/users/{id}. Omitted fields keep their stored
// values.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if violations := updateUserRules.Validate(body); len(violations) > 0 {
		respondWithValidationErrors(w, violations)
		return
	}

	update := repositories.UserUpdate{
		Username:   stringPtr(body, "username"),
		Email:      stringPtr(body, "email"),
		ProfilePic: stringPtr(body, "profile_pic"),
	}

	user, err := h.userRepo.Update(r.Context(), r.PathValue("id"), update)
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to update the user.")
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userRepo.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to delete the user.")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User deleted successfully.",
		"user":    user,
	})
}
