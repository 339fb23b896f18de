package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halaleats/backend/internal/api/handlers"
	"github.com/halaleats/backend/internal/api/middleware"
	"github.com/halaleats/backend/internal/domain/entities"
	"github.com/halaleats/backend/internal/domain/repositories"
	apperrors "github.com/halaleats/backend/pkg/errors"
)

type stubReviewRepo struct {
	reviews []*entities.ReviewWithAuthor
	review  *entities.Review
	created *entities.Review
	ownerID string
	err     error
}

func (s *stubReviewRepo) List(ctx context.Context) ([]*entities.ReviewWithAuthor, error) {
	return s.reviews, s.err
}

func (s *stubReviewRepo) GetByID(ctx context.Context, id string) (*entities.Review, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.review, nil
}

func (s *stubReviewRepo) Create(ctx context.Context, review *entities.Review) error {
	s.created = review
	return s.err
}

func (s *stubReviewRepo) Update(ctx context.Context, id, ownerID string, update repositories.ReviewUpdate) (*entities.Review, error) {
	s.ownerID = ownerID
	if s.err != nil {
		return nil, s.err
	}
	return s.review, nil
}

func (s *stubReviewRepo) Delete(ctx context.Context, id, ownerID string) (*entities.Review, error) {
	s.ownerID = ownerID
	if s.err != nil {
		return nil, s.err
	}
	return s.review, nil
}

// doAuthedJSON is doJSON with a verified subject already on the request
// context, as the auth middleware would leave it.
func doAuthedJSON(t *testing.T, handlerFn http.HandlerFunc, method, target, subject string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	mux := http.NewServeMux()
	mux.HandleFunc(method+" "+target, handlerFn)

	req := httptest.NewRequest(method, target, &buf)
	req = req.WithContext(middleware.ContextWithSubject(req.Context(), subject))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestCreateReviewOwnerFromSubject(t *testing.T) {
	repo := &stubReviewRepo{}
	h := handlers.NewReviewHandler(repo)

	rr := doAuthedJSON(t, h.CreateReview, http.MethodPost, "/api/reviews", "firebase-uid-1", map[string]interface{}{
		"restaurant_id": "5a0f33cf-5f48-4d6a-9c7a-3f0a7bd0a111",
		"rating":        4.0,
		"comment":       "Great lamb karahi.",
		"user_id":       "someone-else",
	})

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, repo.created)
	assert.Equal(t, "firebase-uid-1", repo.created.UserID, "owner comes from the token, never the body")
	assert.Equal(t, 4.0, repo.created.Rating)
}

func TestCreateReviewNoSubject(t *testing.T) {
	repo := &stubReviewRepo{}
	h := handlers.NewReviewHandler(repo)

	rr := doJSON(t, h.CreateReview, http.MethodPost, "/api/reviews", map[string]interface{}{
		"restaurant_id": "5a0f33cf-5f48-4d6a-9c7a-3f0a7bd0a111",
		"rating":        4.0,
	})

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Nil(t, repo.created)
}

func TestCreateReviewRatingOutOfBounds(t *testing.T) {
	repo := &stubReviewRepo{}
	h := handlers.NewReviewHandler(repo)

	rr := doAuthedJSON(t, h.CreateReview, http.MethodPost, "/api/reviews", "firebase-uid-1", map[string]interface{}{
		"restaurant_id": "5a0f33cf-5f48-4d6a-9c7a-3f0a7bd0a111",
		"rating":        7.5,
	})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Nil(t, repo.created, "invalid payload must not reach the repository")
}

func TestUpdateReviewPassesSubjectAsOwner(t *testing.T) {
	repo := &stubReviewRepo{review: &entities.Review{ID: "rev-1", UserID: "firebase-uid-1", Rating: 5}}
	h := handlers.NewReviewHandler(repo)

	rr := doAuthedJSON(t, h.UpdateReview, http.MethodPut, "/api/reviews/rev-1", "firebase-uid-1", map[string]interface{}{
		"rating": 5.0,
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "firebase-uid-1", repo.ownerID)
}

func TestUpdateReviewNotOwned(t *testing.T) {
	// The repository answers a non-owner mutation exactly as it answers a
	// missing review, so the handler cannot leak which one it was.
	repo := &stubReviewRepo{err: apperrors.NewNotFoundError("Review not found.")}
	h := handlers.NewReviewHandler(repo)

	rr := doAuthedJSON(t, h.UpdateReview, http.MethodPut, "/api/reviews/rev-1", "intruder-uid", map[string]interface{}{
		"rating": 1.0,
	})

	require.Equal(t, http.StatusNotFound, rr.Code)
	var got map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "Review not found.", got["error"])
}

func TestDeleteReviewEnvelope(t *testing.T) {
	repo := &stubReviewRepo{review: &entities.Review{ID: "rev-1", UserID: "firebase-uid-1"}}
	h := handlers.NewReviewHandler(repo)

	rr := doAuthedJSON(t, h.DeleteReview, http.MethodDelete, "/api/reviews/rev-1", "firebase-uid-1", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got struct {
		Message string          `json:"message"`
		Review  entities.Review `json:"review"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "Review deleted successfully.", got.Message)
	assert.Equal(t, "rev-1", got.Review.ID)
	assert.Equal(t, "firebase-uid-1", repo.ownerID)
}

func TestListReviewsIncludesAuthor(t *testing.T) {
	repo := &stubReviewRepo{reviews: []*entities.ReviewWithAuthor{
		{Review: entities.Review{ID: "rev-2", Rating: 5, Comment: "Best mandi in town."}, Username: "amira"},
		{Review: entities.Review{ID: "rev-1", Rating: 3}, Username: "yusuf"},
	}}
	h := handlers.NewReviewHandler(repo)

	rr := doJSON(t, h.ListReviews, http.MethodGet, "/api/reviews", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []entities.ReviewWithAuthor
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "amira", got[0].Username)
}
