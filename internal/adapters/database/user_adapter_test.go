package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halaleats/backend/internal/domain/entities"
	"github.com/halaleats/backend/internal/domain/repositories"
	apperrors "github.com/halaleats/backend/pkg/errors"
)

func userRows(users ...*entities.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "username", "email", "profile_pic",
		"followers_count", "following_count", "created_at",
	})
	for _, u := range users {
		rows.AddRow(u.ID, u.Username, u.Email, u.ProfilePic, u.FollowersCount, u.FollowingCount, u.CreatedAt)
	}
	return rows
}

func TestUserAdapter_GetByID(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewUserAdapter(client)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM "users" WHERE`).
		WillReturnRows(userRows(&entities.User{
			ID: "u1", Username: "amina", Email: "amina@example.com", CreatedAt: now,
		}))

	user, err := adapter.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "amina", user.Username)
	assert.Zero(t, user.FollowersCount)
}

func TestUserAdapter_GetByID_NullProfilePic(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewUserAdapter(client)

	rows := sqlmock.NewRows([]string{
		"id", "username", "email", "profile_pic",
		"followers_count", "following_count", "created_at",
	}).AddRow("u1", "amina", "amina@example.com", nil, 0, 0, time.Now())

	mock.ExpectQuery(`SELECT .+ FROM "users" WHERE`).WillReturnRows(rows)

	user, err := adapter.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "", user.ProfilePic)
}

func TestUserAdapter_Update_CoalescesOmittedFields(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewUserAdapter(client)

	now := time.Now()
	mock.ExpectQuery(`UPDATE "users" SET .*COALESCE.* RETURNING`).
		WillReturnRows(userRows(&entities.User{
			ID: "u1", Username: "amina_eats", Email: "amina@example.com", CreatedAt: now,
		}))

	username := "amina_eats"
	user, err := adapter.Update(context.Background(), "u1", repositories.UserUpdate{Username: &username})
	require.NoError(t, err)
	assert.Equal(t, "amina_eats", user.Username)
	assert.Equal(t, "amina@example.com", user.Email)
}

func TestUserAdapter_Delete_NotFound(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewUserAdapter(client)

	mock.ExpectQuery(`DELETE FROM "users"`).WillReturnRows(userRows())

	_, err := adapter.Delete(context.Background(), "missing")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	assert.Equal(t, "User not found.", appErr.Message)
}

func TestUserAdapter_List_StorageFailure(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewUserAdapter(client)

	mock.ExpectQuery(`SELECT .+ FROM "users"`).WillReturnError(sql.ErrConnDone)

	_, err := adapter.List(context.Background())
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}
