package repositories

import (
	"context"

	"github.com/halaleats/backend/internal/domain/entities"
)

// FriendRepository defines the interface for friend-link operations.
type FriendRepository interface {
	List(ctx context.Context) ([]*entities.Friend, error)
	GetByID(ctx context.Context, id string) (*entities.Friend, error)
	Create(ctx context.Context, friend *entities.Friend) error
	Delete(ctx context.Context, id string) (*entities.Friend, error)
}
