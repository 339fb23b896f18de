package entities

import "time"

// Restaurant represents a listed restaurant
type Restaurant struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	Cuisine   string    `json:"cuisine" db:"cuisine"`
	Rating    float64   `json:"rating" db:"rating"` // 0-5
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
