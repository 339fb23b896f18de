package repositories

import (
	"context"

	"github.com/halaleats/backend/internal/domain/entities"
)

// RestaurantUpdate carries a partial field set for a restaurant update.
// Nil fields keep their stored value.
type RestaurantUpdate struct {
	Name     *string
	Location *string
	Cuisine  *string
	Rating   *float64
}

// RestaurantRepository defines the interface for restaurant operations.
type RestaurantRepository interface {
	List(ctx context.Context) ([]*entities.Restaurant, error)
	GetByID(ctx context.Context, id string) (*entities.Restaurant, error)
	Create(ctx context.Context, restaurant *entities.Restaurant) error
	Update(ctx context.Context, id string, update RestaurantUpdate) (*entities.Restaurant, error)
	Delete(ctx context.Context, id string) (*entities.Restaurant, error)
}
