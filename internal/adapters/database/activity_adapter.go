package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/halaleats/backend/internal/domain/entities"
	"github.com/halaleats/backend/internal/domain/repositories"
	"github.com/halaleats/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/halaleats/backend/pkg/errors"
)

var activityColumns = []interface{}{"id", "user_id", "restaurant_id", "action", "created_at"}

// ActivityAdapter implements activity-log persistence in Postgres.
type ActivityAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewActivityAdapter creates a new activity adapter.
func NewActivityAdapter(client *postgres.Client) repositories.ActivityRepository {
	return &ActivityAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List returns all activity records, most recent first.
func (a *ActivityAdapter) List(ctx context.Context) ([]*entities.Activity, error) {
	query, args, err := a.db.Select(activityColumns...).
		From("activity").
		Order(goqu.C("created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build activity list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list activity logs", err)
	}
	defer rows.Close()

	logs := []*entities.Activity{}
	for rows.Next() {
		activity := &entities.Activity{}
		err := rows.Scan(
			&activity.ID,
			&activity.UserID,
			&activity.RestaurantID,
			&activity.Action,
			&activity.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan activity row", err)
		}
		logs = append(logs, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to list activity logs", err)
	}

	return logs, nil
}

// Create appends an activity record.
func (a *ActivityAdapter) Create(ctx context.Context, activity *entities.Activity) error {
	record := goqu.Record{
		"id":            activity.ID,
		"user_id":       activity.UserID,
		"restaurant_id": activity.RestaurantID,
		"action":        activity.Action,
		"created_at":    activity.CreatedAt,
	}

	query, args, err := a.db.Insert("activity").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build activity insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create activity log", err)
	}

	return nil
}
