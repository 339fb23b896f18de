package entities

import "time"

// Activity is an append-mostly audit record of a user action on a restaurant.
type Activity struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"user_id" db:"user_id"`
	RestaurantID string    `json:"restaurant_id" db:"restaurant_id"`
	Action       string    `json:"action" db:"action"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
