package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/halaleats/backend/internal/api/middleware"
	"github.com/halaleats/backend/internal/api/validation"
	"github.com/halaleats/backend/internal/domain/entities"
	"github.com/halaleats/backend/internal/domain/repositories"
)

// ReviewHandler handles review-related HTTP requests. A review belongs to
// the authenticated subject that created it; mutations by anyone else are
// answered with the same 404 as a missing review.
type ReviewHandler struct {
	reviewRepo repositories.ReviewRepository
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewRepo repositories.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{
		reviewRepo: reviewRepo,
	}
}

var createReviewRules = validation.Rules{
	{Name: "restaurant_id", Required: true, Checks: []validation.Check{validation.IsUUID}},
	{Name: "rating", Required: true, Checks: []validation.Check{validation.IsFloat(0, 5)}},
	{Name: "comment", Checks: []validation.Check{validation.IsString}},
}

var updateReviewRules = validation.Rules{
	{Name: "rating", Checks: []validation.Check{validation.IsFloat(0, 5)}},
	{Name: "comment", Checks: []validation.Check{validation.IsString}},
}

// ListReviews handles GET /api/reviews. Reviews are joined with the author's
// display name, most recent first.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewRepo.List(r.Context())
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to fetch reviews.")
		return
	}

	respondWithJSON(w, http.StatusOK, reviews)
}

// GetReview handles GET /api/reviews/{id}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviewRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to fetch review.")
		return
	}

	respondWithJSON(w, http.StatusOK, review)
}

// CreateReview handles POST /api/reviews. The review's owner is the
// authenticated subject, not a client-supplied field.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized - No token provided")
		return
	}

	body, err := decodeBody(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if violations := createReviewRules.Validate(body); len(violations) > 0 {
		respondWithValidationErrors(w, violations)
		return
	}

	review := &entities.Review{
		ID:           uuid.New().String(),
		UserID:       subject,
		RestaurantID: stringField(body, "restaurant_id"),
		Rating:       floatField(body, "rating"),
		Comment:      stringField(body, "comment"),
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.reviewRepo.Create(r.Context(), review); err != nil {
		respondWithRepositoryError(w, r, err, "Failed to create a new review.")
		return
	}

	respondWithJSON(w, http.StatusCreated, review)
}

// UpdateReview handles PUT /api/reviews/{id}. Omitted fields keep their
// stored values; only the owner's rows match the update filter.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized - No token provided")
		return
	}

	body, err := decodeBody(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if violations := updateReviewRules.Validate(body); len(violations) > 0 {
		respondWithValidationErrors(w, violations)
		return
	}

	update := repositories.ReviewUpdate{
		Rating:  floatPtr(body, "rating"),
		Comment: stringPtr(body, "comment"),
	}

	review, err := h.reviewRepo.Update(r.Context(), r.PathValue("id"), subject, update)
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to update the review.")
		return
	}

	respondWithJSON(w, http.StatusOK, review)
}

// DeleteReview handles DELETE /api/reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized - No token provided")
		return
	}

	review, err := h.reviewRepo.Delete(r.Context(), r.PathValue("id"), subject)
	if err != nil {
		respondWithRepositoryError(w, r, err, "Failed to delete the review.")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Review deleted successfully.",
		"review":  review,
	})
}
