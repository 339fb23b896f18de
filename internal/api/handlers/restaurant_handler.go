package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/halaleats/backend/internal/api/validation"
	"github.com/halaleats/backend/internal/domain/entities"
	"github.com/halaleats/backend/internal/domain/repositories"
)

// RestaurantHandler handles restaurant-related HTTP requests
type RestaurantHandler struct {
	restaurantRepo repositories.RestaurantRepository
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(restaurantRepo repositories.RestaurantRepository) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantRepo: restaurantRepo,
	}
}

var createRestaurantRules = validation.Rules{
	{Name: "name", Required: true, Checks: []validation.Check{validation.IsString, validation.NotEmpty}},
	{Name: "location", Required: true, Checks: []validation.Check{validation.IsString, validation.NotEmpty}},
	{Name: "cuisine", Required: true, Checks: []validation.Check{validation.IsString, validation.NotEmpty}},
	{Name: "rating", Required: true, Checks: []validation.Check{validation.IsFloat(0, 5)}},
}

var updateRestaurantRules = validation.Rules{
	{Name: "name", Checks: []validation.Check{validation.IsString, validation.NotEmpty}},
	{Name: "location", Checks: []validation.Check{validation.IsString, validation.NotEmpty}},
	{Name: "cuisine", Checks: []validation.Check{validation.IsString, validation.NotEmpty}},
	{Name: "rating", Checks: []validation.Check{validation.IsFloat(0, 5)}},
}

// ListRestaurants handles GET /api/restaurants
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.restaurantRepo.List(r.Context())
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to fetch restaurants.")
		return
	}

	respondWithJSON(w, http.StatusOK, restaurants)
}

// GetRestaurant handles GET /api/restaurants/{id}
func (h *RestaurantHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.restaurantRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to fetch restaurant.")
		return
	}

	respondWithJSON(w, http.StatusOK, restaurant)
}

// CreateRestaurant handles POST /api/restaurants
func (h *RestaurantHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if violations := createRestaurantRules.Validate(body); len(violations) > 0 {
		respondWithValidationErrors(w, violations)
		return
	}

	restaurant := &entities.Restaurant{
		ID:        uuid.New().String(),
		Name:      stringField(body, "name"),
		Location:  stringField(body, "location"),
		Cuisine:   stringField(body, "cuisine"),
		Rating:    floatField(body, "rating"),
		CreatedAt: time.Now().UTC(),
	}

	if err := h.restaurantRepo.Create(r.Context(), restaurant); err != nil {
		respondWithRepositoryError(w, r, err, "Failed to create a new restaurant.")
		return
	}

	respondWithJSON(w, http.StatusCreated, restaurant)
}

// UpdateRestaurant handles PUT /api/restaurants/{id}. Omitted fields keep
// their stored values.
func (h *RestaurantHandler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if violations := updateRestaurantRules.Validate(body); len(violations) > 0 {
		respondWithValidationErrors(w, violations)
		return
	}

	update := repositories.RestaurantUpdate{
		Name:     stringPtr(body, "name"),
		Location: stringPtr(body, "location"),
		Cuisine:  stringPtr(body, "cuisine"),
		Rating:   floatPtr(body, "rating"),
	}

	restaurant, err := h.restaurantRepo.Update(r.Context(), r.PathValue("id"), update)
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to update the restaurant.")
		return
	}

	respondWithJSON(w, http.StatusOK, restaurant)
}

// DeleteRestaurant handles DELETE /api/restaurants/{id}
func (h *RestaurantHandler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.restaurantRepo.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to delete the restaurant.")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Restaurant deleted successfully.",
		"restaurant": restaurant,
	})
}
