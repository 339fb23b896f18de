package entities

import "time"

// Review represents a user review of a restaurant. The user that created a
// review owns it; only the owner may update or delete it.
type Review struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"user_id" db:"user_id"`
	RestaurantID string    `json:"restaurant_id" db:"restaurant_id"`
	Rating       float64   `json:"rating" db:"rating"` // 0-5
	Comment      string    `json:"comment" db:"comment"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ReviewWithAuthor is a review joined with the author's display name,
// used by the list endpoint.
type ReviewWithAuthor struct {
	Review
	Username string `json:"username" db:"username"`
}
