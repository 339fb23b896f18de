package repositories

import (
	"context"

	"github.com/halaleats/backend/internal/domain/entities"
)

// ReviewUpdate carries a partial field set for a review update. Nil fields
// keep their stored value.
type ReviewUpdate struct {
	Rating  *float64
	Comment *string
}

// ReviewRepository defines the interface for review operations.
//
// Update and Delete take the owner's id and fold it into the statement's
// filter, so a non-owner mutation is indistinguishable from a missing row.
type ReviewRepository interface {
	List(ctx context.Context) ([]*entities.ReviewWithAuthor, error)
	GetByID(ctx context.Context, id string) (*entities.Review, error)
	Create(ctx context.Context, review *entities.Review) error
	Update(ctx context.Context, id, ownerID string, update ReviewUpdate) (*entities.Review, error)
	Delete(ctx context.Context, id, ownerID string) (*entities.Review, error)
}
