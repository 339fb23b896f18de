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

var userColumns = []interface{}{
	"id", "username", "email", "profile_pic",
	"followers_count", "following_count", "created_at",
}

// UserAdapter implements user persistence in Postgres.
type UserAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewUserAdapter creates a new user adapter.
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List returns all users.
func (a *UserAdapter) List(ctx context.Context) ([]*entities.User, error) {
	query, args, err := a.db.Select(userColumns...).From("users").ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list users", err)
	}
	defer rows.Close()

	users := []*entities.User{}
	for rows.Next() {
		user := &entities.User{}
		if err := scanUser(rows, user); err != nil {
			return nil, apperrors.NewInternalError("failed to scan user row", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to list users", err)
	}

	return users, nil
}

// GetByID retrieves a user by ID.
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	query, args, err := a.db.Select(userColumns...).
		From("users").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user query", err)
	}

	user := &entities.User{}
	err = scanUser(a.client.DB().QueryRowContext(ctx, query, args...), user)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("User not found.")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}

	return user, nil
}

// Create inserts a user. Follower counts start at zero.
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	record := goqu.Record{
		"id":              user.ID,
		"username":        user.Username,
		"email":           user.Email,
		"profile_pic":     user.ProfilePic,
		"followers_count": user.FollowersCount,
		"following_count": user.FollowingCount,
		"created_at":      user.CreatedAt,
	}

	query, args, err := a.db.Insert("users").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build user insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create user", err)
	}

	return nil
}

// Update applies a partial update in a single statement. Omitted fields fall
// back to the stored value via COALESCE.
func (a *UserAdapter) Update(ctx context.Context, id string, update repositories.UserUpdate) (*entities.User, error) {
	record := goqu.Record{
		"username":    goqu.COALESCE(goqu.V(nullable(update.Username)), goqu.C("username")),
		"email":       goqu.COALESCE(goqu.V(nullable(update.Email)), goqu.C("email")),
		"profile_pic": goqu.COALESCE(goqu.V(nullable(update.ProfilePic)), goqu.C("profile_pic")),
	}

	query, args, err := a.db.Update("users").
		Set(record).
		Where(goqu.Ex{"id": id}).
		Returning(userColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user update query", err)
	}

	user := &entities.User{}
	err = scanUser(a.client.DB().QueryRowContext(ctx, query, args...), user)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("User not found.")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to update user", err)
	}

	return user, nil
}

// Delete removes a user and returns the deleted row.
func (a *UserAdapter) Delete(ctx context.Context, id string) (*entities.User, error) {
	query, args, err := a.db.Delete("users").
		Where(goqu.Ex{"id": id}).
		Returning(userColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user delete query", err)
	}

	user := &entities.User{}
	err = scanUser(a.client.DB().QueryRowContext(ctx, query, args...), user)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("User not found.")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to delete user", err)
	}

	return user, nil
}

func scanUser(row rowScanner, user *entities.User) error {
	var profilePic sql.NullString
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&profilePic,
		&user.FollowersCount,
		&user.FollowingCount,
		&user.CreatedAt,
	)
	if err != nil {
		return err
	}
	user.ProfilePic = profilePic.String
	return nil
}
