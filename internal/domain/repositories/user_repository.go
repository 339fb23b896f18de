package repositories

import (
	"context"

	"github.com/halaleats/backend/internal/domain/entities"
)

// UserUpdate carries a partial field set for a user update. Nil fields keep
// their stored value.
type UserUpdate struct {
	Username   *string
	Email      *string
	ProfilePic *string
}

// UserRepository defines the interface for user operations.
type UserRepository interface {
	List(ctx context.Context) ([]*entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	Create(ctx context.Context, user *entities.User) error
	Update(ctx context.Context, id string, update UserUpdate) (*entities.User, error)
	Delete(ctx context.Context, id string) (*entities.User, error)
}
