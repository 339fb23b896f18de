package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halaleats/backend/internal/api/handlers"
	"github.com/halaleats/backend/internal/domain/entities"
	apperrors "github.com/halaleats/backend/pkg/errors"
)

type stubFriendRepo struct {
	friends []*entities.Friend
	created *entities.Friend
	err     error
}

func (s *stubFriendRepo) List(ctx context.Context) ([]*entities.Friend, error) {
	return s.friends, s.err
}

func (s *stubFriendRepo) GetByID(ctx context.Context, id string) (*entities.Friend, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.friends[0], nil
}

func (s *stubFriendRepo) Create(ctx context.Context, friend *entities.Friend) error {
	s.created = friend
	return s.err
}

func (s *stubFriendRepo) Delete(ctx context.Context, id string) (*entities.Friend, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.friends[0], nil
}

type stubActivityRepo struct {
	activity []*entities.Activity
	created  *entities.Activity
	err      error
}

func (s *stubActivityRepo) List(ctx context.Context) ([]*entities.Activity, error) {
	return s.activity, s.err
}

func (s *stubActivityRepo) Create(ctx context.Context, activity *entities.Activity) error {
	s.created = activity
	return s.err
}

func TestCreateFriendRequiresUUIDs(t *testing.T) {
	repo := &stubFriendRepo{}
	h := handlers.NewFriendHandler(repo)

	rr := doJSON(t, h.CreateFriend, http.MethodPost, "/api/friends", map[string]interface{}{
		"user_id":   "not-a-uuid",
		"friend_id": "e7a1c2f4-90b3-4b6e-8f21-6a5d0c9e1b22",
	})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Nil(t, repo.created)
}

func TestCreateFriendAllowsDuplicates(t *testing.T) {
	repo := &stubFriendRepo{}
	h := handlers.NewFriendHandler(repo)

	body := map[string]interface{}{
		"user_id":   "5a0f33cf-5f48-4d6a-9c7a-3f0a7bd0a111",
		"friend_id": "e7a1c2f4-90b3-4b6e-8f21-6a5d0c9e1b22",
	}

	rr := doJSON(t, h.CreateFriend, http.MethodPost, "/api/friends", body)
	require.Equal(t, http.StatusCreated, rr.Code)
	first := repo.created.ID

	rr = doJSON(t, h.CreateFriend, http.MethodPost, "/api/friends", body)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotEqual(t, first, repo.created.ID, "each link gets its own row")
}

func TestDeleteFriendEnvelope(t *testing.T) {
	repo := &stubFriendRepo{friends: []*entities.Friend{
		{ID: "f-1", UserID: "u-1", FriendID: "u-2"},
	}}
	h := handlers.NewFriendHandler(repo)

	rr := doJSON(t, h.DeleteFriend, http.MethodDelete, "/api/friends/f-1", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got struct {
		Message string          `json:"message"`
		Friend  entities.Friend `json:"friend"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "Friend relationship removed successfully.", got.Message)
	assert.Equal(t, "f-1", got.Friend.ID)
}

func TestGetFriendNotFound(t *testing.T) {
	repo := &stubFriendRepo{err: apperrors.NewNotFoundError("Friend relationship not found.")}
	h := handlers.NewFriendHandler(repo)

	rr := doJSON(t, h.GetFriend, http.MethodGet, "/api/friends/missing", nil)

	require.Equal(t, http.StatusNotFound, rr.Code)
	var got map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "Friend relationship not found.", got["error"])
}

func TestCreateActivity(t *testing.T) {
	repo := &stubActivityRepo{}
	h := handlers.NewActivityHandler(repo)

	rr := doJSON(t, h.CreateActivity, http.MethodPost, "/api/activity", map[string]interface{}{
		"user_id":       "5a0f33cf-5f48-4d6a-9c7a-3f0a7bd0a111",
		"restaurant_id": "e7a1c2f4-90b3-4b6e-8f21-6a5d0c9e1b22",
		"action":        "reviewed",
	})

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, repo.created)
	assert.Equal(t, "reviewed", repo.created.Action)
	assert.NotEmpty(t, repo.created.ID)
}

func TestCreateActivityRejectsBlankAction(t *testing.T) {
	repo := &stubActivityRepo{}
	h := handlers.NewActivityHandler(repo)

	rr := doJSON(t, h.CreateActivity, http.MethodPost, "/api/activity", map[string]interface{}{
		"user_id":       "5a0f33cf-5f48-4d6a-9c7a-3f0a7bd0a111",
		"restaurant_id": "e7a1c2f4-90b3-4b6e-8f21-6a5d0c9e1b22",
		"action":        "",
	})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Nil(t, repo.created)
}
