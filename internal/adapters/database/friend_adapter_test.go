package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halaleats/backend/internal/domain/entities"
	apperrors "github.com/halaleats/backend/pkg/errors"
)

func friendRows(friends ...*entities.Friend) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "friend_id", "created_at"})
	for _, f := range friends {
		rows.AddRow(f.ID, f.UserID, f.FriendID, f.CreatedAt)
	}
	return rows
}

func TestFriendAdapter_Create(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewFriendAdapter(client)

	mock.ExpectExec(`INSERT INTO "friends"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := adapter.Create(context.Background(), &entities.Friend{
		ID:        "f1",
		UserID:    "u1",
		FriendID:  "u2",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendAdapter_Delete_ReturnsDeletedRow(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewFriendAdapter(client)

	now := time.Now()
	mock.ExpectQuery(`DELETE FROM "friends" WHERE .* RETURNING`).
		WillReturnRows(friendRows(&entities.Friend{ID: "f1", UserID: "u1", FriendID: "u2", CreatedAt: now}))

	friend, err := adapter.Delete(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "u2", friend.FriendID)
}

func TestFriendAdapter_Delete_NotFound(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewFriendAdapter(client)

	mock.ExpectQuery(`DELETE FROM "friends"`).WillReturnRows(friendRows())

	_, err := adapter.Delete(context.Background(), "missing")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	assert.Equal(t, "Friend relationship not found.", appErr.Message)
}
