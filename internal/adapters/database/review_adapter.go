package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"

	"github.com/halaleats/backend/internal/domain/entities"
	"github.com/halaleats/backend/internal/domain/repositories"
	"github.com/halaleats/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/halaleats/backend/pkg/errors"
)

var reviewColumns = []interface{}{"id", "user_id", "restaurant_id", "rating", "comment", "created_at"}

// listReviewsQuery joins each review with the author's display name for the
// list endpoint.
const listReviewsQuery = `
	SELECT r.id, r.user_id, r.restaurant_id, r.rating,
	       COALESCE(r.comment, '') AS comment, r.created_at, u.username
	FROM reviews r
	JOIN users u ON u.id = r.user_id
	ORDER BY r.created_at DESC`

// ReviewAdapter implements review persistence in Postgres.
type ReviewAdapter struct {
	client *postgres.Client
	db     *goqu.Database
	sqlxDB *sqlx.DB
}

// NewReviewAdapter creates a new review adapter.
func NewReviewAdapter(client *postgres.Client) repositories.ReviewRepository {
	return &ReviewAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
		sqlxDB: sqlx.NewDb(client.DB(), "postgres"),
	}
}

// List returns all reviews joined with the authoring user's username, most
// recent first.
func (a *ReviewAdapter) List(ctx context.Context) ([]*entities.ReviewWithAuthor, error) {
	reviews := []*entities.ReviewWithAuthor{}
	if err := a.sqlxDB.SelectContext(ctx, &reviews, listReviewsQuery); err != nil {
		return nil, apperrors.NewInternalError("failed to list reviews", err)
	}
	return reviews, nil
}

// GetByID retrieves a review by ID.
func (a *ReviewAdapter) GetByID(ctx context.Context, id string) (*entities.Review, error) {
	query, args, err := a.db.Select(reviewColumns...).
		From("reviews").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build review query", err)
	}

	review := &entities.Review{}
	err = scanReview(a.client.DB().QueryRowContext(ctx, query, args...), review)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("Review not found.")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get review", err)
	}

	return review, nil
}

// Create inserts a review.
func (a *ReviewAdapter) Create(ctx context.Context, review *entities.Review) error {
	record := goqu.Record{
		"id":            review.ID,
		"user_id":       review.UserID,
		"restaurant_id": review.RestaurantID,
		"rating":        review.Rating,
		"comment":       sql.NullString{String: review.Comment, Valid: review.Comment != ""},
		"created_at":    review.CreatedAt,
	}

	query, args, err := a.db.Insert("reviews").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build review insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create review", err)
	}

	return nil
}

// Update applies a partial update in a single statement. The owner predicate
// is folded into the filter, so there is no read-then-check window: a review
// owned by someone else behaves exactly like a missing row.
func (a *ReviewAdapter) Update(ctx context.Context, id, ownerID string, update repositories.ReviewUpdate) (*entities.Review, error) {
	record := goqu.Record{
		"rating":  goqu.COALESCE(goqu.V(nullableFloat(update.Rating)), goqu.C("rating")),
		"comment": goqu.COALESCE(goqu.V(nullable(update.Comment)), goqu.C("comment")),
	}

	query, args, err := a.db.Update("reviews").
		Set(record).
		Where(goqu.Ex{"id": id, "user_id": ownerID}).
		Returning(reviewColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build review update query", err)
	}

	review := &entities.Review{}
	err = scanReview(a.client.DB().QueryRowContext(ctx, query, args...), review)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("Review not found.")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to update review", err)
	}

	return review, nil
}

// Delete removes a review owned by ownerID and returns the deleted row.
func (a *ReviewAdapter) Delete(ctx context.Context, id, ownerID string) (*entities.Review, error) {
	query, args, err := a.db.Delete("reviews").
		Where(goqu.Ex{"id": id, "user_id": ownerID}).
		Returning(reviewColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build review delete query", err)
	}

	review := &entities.Review{}
	err = scanReview(a.client.DB().QueryRowContext(ctx, query, args...), review)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("Review not found.")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to delete review", err)
	}

	return review, nil
}

func scanReview(row rowScanner, review *entities.Review) error {
	var comment sql.NullString
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.RestaurantID,
		&review.Rating,
		&comment,
		&review.CreatedAt,
	)
	if err != nil {
		return err
	}
	review.Comment = comment.String
	return nil
}
