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

var restaurantColumns = []interface{}{"id", "name", "location", "cuisine", "rating", "created_at"}

// RestaurantAdapter implements restaurant persistence in Postgres.
type RestaurantAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewRestaurantAdapter creates a new restaurant adapter.
func NewRestaurantAdapter(client *postgres.Client) repositories.RestaurantRepository {
	return &RestaurantAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List returns all restaurants.
func (a *RestaurantAdapter) List(ctx context.Context) ([]*entities.Restaurant, error) {
	query, args, err := a.db.Select(restaurantColumns...).From("restaurants").ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build restaurant list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list restaurants", err)
	}
	defer rows.Close()

	restaurants := []*entities.Restaurant{}
	for rows.Next() {
		restaurant := &entities.Restaurant{}
		if err := scanRestaurant(rows, restaurant); err != nil {
			return nil, apperrors.NewInternalError("failed to scan restaurant row", err)
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to list restaurants", err)
	}

	return restaurants, nil
}

// GetByID retrieves a restaurant by ID.
func (a *RestaurantAdapter) GetByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	query, args, err := a.db.Select(restaurantColumns...).
		From("restaurants").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build restaurant query", err)
	}

	restaurant := &entities.Restaurant{}
	err = scanRestaurant(a.client.DB().QueryRowContext(ctx, query, args...), restaurant)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("Restaurant not found.")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get restaurant", err)
	}

	return restaurant, nil
}

// Create inserts a restaurant.
func (a *RestaurantAdapter) Create(ctx context.Context, restaurant *entities.Restaurant) error {
	record := goqu.Record{
		"id":         restaurant.ID,
		"name":       restaurant.Name,
		"location":   restaurant.Location,
		"cuisine":    restaurant.Cuisine,
		"rating":     restaurant.Rating,
		"created_at": restaurant.CreatedAt,
	}

	query, args, err := a.db.Insert("restaurants").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build restaurant insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create restaurant", err)
	}

	return nil
}

// Update applies a partial update in a single statement. Omitted fields fall
// back to the stored value via COALESCE.
func (a *RestaurantAdapter) Update(ctx context.Context, id string, update repositories.RestaurantUpdate) (*entities.Restaurant, error) {
	record := goqu.Record{
		"name":     goqu.COALESCE(goqu.V(nullable(update.Name)), goqu.C("name")),
		"location": goqu.COALESCE(goqu.V(nullable(update.Location)), goqu.C("location")),
		"cuisine":  goqu.COALESCE(goqu.V(nullable(update.Cuisine)), goqu.C("cuisine")),
		"rating":   goqu.COALESCE(goqu.V(nullableFloat(update.Rating)), goqu.C("rating")),
	}

	query, args, err := a.db.Update("restaurants").
		Set(record).
		Where(goqu.Ex{"id": id}).
		Returning(restaurantColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build restaurant update query", err)
	}

	restaurant := &entities.Restaurant{}
	err = scanRestaurant(a.client.DB().QueryRowContext(ctx, query, args...), restaurant)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("Restaurant not found.")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to update restaurant", err)
	}

	return restaurant, nil
}

// Delete removes a restaurant and returns the deleted row.
func (a *RestaurantAdapter) Delete(ctx context.Context, id string) (*entities.Restaurant, error) {
	query, args, err := a.db.Delete("restaurants").
		Where(goqu.Ex{"id": id}).
		Returning(restaurantColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build restaurant delete query", err)
	}

	restaurant := &entities.Restaurant{}
	err = scanRestaurant(a.client.DB().QueryRowContext(ctx, query, args...), restaurant)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("Restaurant not found.")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to delete restaurant", err)
	}

	return restaurant, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRestaurant(row rowScanner, restaurant *entities.Restaurant) error {
	return row.Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Location,
		&restaurant.Cuisine,
		&restaurant.Rating,
		&restaurant.CreatedAt,
	)
}

func nullable(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func nullableFloat(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}
