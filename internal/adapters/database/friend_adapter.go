package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/halaleats/backend/internal/domain/entities"
	"github.com/halaleats/backend/internal/domain/repositories"
	"github.com/halaleats/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/halaleats/backend/pkg/errors"
)

var friendColumns = []interface{}{"id", "user_id", "friend_id", "created_at"}

// FriendAdapter implements friend-link persistence in Postgres. Links are
// directed; duplicates and reciprocal pairs are allowed.
type FriendAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewFriendAdapter creates a new friend adapter.
func NewFriendAdapter(client *postgres.Client) repositories.FriendRepository {
	return &FriendAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List returns all friend links.
func (a *FriendAdapter) List(ctx context.Context) ([]*entities.Friend, error) {
	query, args, err := a.db.Select(friendColumns...).From("friends").ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build friend list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list friends", err)
	}
	defer rows.Close()

	friends := []*entities.Friend{}
	for rows.Next() {
		friend := &entities.Friend{}
		if err := scanFriend(rows, friend); err != nil {
			return nil, apperrors.NewInternalError("failed to scan friend row", err)
		}
		friends = append(friends, friend)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to list friends", err)
	}

	return friends, nil
}

// GetByID retrieves a friend link by ID.
func (a *FriendAdapter) GetByID(ctx context.Context, id string) (*entities.Friend, error) {
	query, args, err := a.db.Select(friendColumns...).
		From("friends").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build friend query", err)
	}

	friend := &entities.Friend{}
	err = scanFriend(a.client.DB().QueryRowContext(ctx, query, args...), friend)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("Friend relationship not found.")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get friend relationship", err)
	}

	return friend, nil
}

// Create inserts a friend link.
func (a *FriendAdapter) Create(ctx context.Context, friend *entities.Friend) error {
	record := goqu.Record{
		"id":         friend.ID,
		"user_id":    friend.UserID,
		"friend_id":  friend.FriendID,
		"created_at": friend.CreatedAt,
	}

	query, args, err := a.db.Insert("friends").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build friend insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create friend relationship", err)
	}

	return nil
}

// Delete removes a friend link and returns the deleted row.
func (a *FriendAdapter) Delete(ctx context.Context, id string) (*entities.Friend, error) {
	query, args, err := a.db.Delete("friends").
		Where(goqu.Ex{"id": id}).
		Returning(friendColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build friend delete query", err)
	}

	friend := &entities.Friend{}
	err = scanFriend(a.client.DB().QueryRowContext(ctx, query, args...), friend)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("Friend relationship not found.")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to delete friend relationship", err)
	}

	return friend, nil
}

func scanFriend(row rowScanner, friend *entities.Friend) error {
	return row.Scan(
		&friend.ID,
		&friend.UserID,
		&friend.FriendID,
		&friend.CreatedAt,
	)
}
