package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/halaleats/backend/internal/api/validation"
	"github.com/halaleats/backend/internal/domain/entities"
	"github.com/halaleats/backend/internal/domain/repositories"
)

// ActivityHandler handles activity-log HTTP requests.
type ActivityHandler struct {
	activityRepo repositories.ActivityRepository
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityRepo repositories.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{
		activityRepo: activityRepo,
	}
}

var createActivityRules = validation.Rules{
	{Name: "user_id", Required: true, Checks: []validation.Check{validation.IsUUID}},
	{Name: "restaurant_id", Required: true, Checks: []validation.Check{validation.IsUUID}},
	{Name: "action", Required: true, Checks: []validation.Check{validation.IsString, validation.NotEmpty}},
}

// ListActivity handles GET /api/activity; entries come back newest first.
func (h *ActivityHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.activityRepo.List(r.Context())
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to fetch activity logs.")
		return
	}

	respondWithJSON(w, http.StatusOK, activity)
}

// CreateActivity handles POST /api/activity
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if violations := createActivityRules.Validate(body); len(violations) > 0 {
		respondWithValidationErrors(w, violations)
		return
	}

	activity := &entities.Activity{
		ID:           uuid.New().String(),
		UserID:       stringField(body, "user_id"),
		RestaurantID: stringField(body, "restaurant_id"),
		Action:       stringField(body, "action"),
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.activityRepo.Create(r.Context(), activity); err != nil {
		respondWithRepositoryError(w, r, err, "Failed to create activity log.")
		return
	}

	respondWithJSON(w, http.StatusCreated, activity)
}
