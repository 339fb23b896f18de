package repositories

import (
	"context"

	"github.com/halaleats/backend/internal/domain/entities"
)

// ActivityRepository defines the interface for activity-log operations.
type ActivityRepository interface {
	List(ctx context.Context) ([]*entities.Activity, error)
	Create(ctx context.Context, activity *entities.Activity) error
}
