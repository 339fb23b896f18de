package entities

import "time"

// Friend represents a directed friend link between two users. Neither
// uniqueness nor reciprocity is enforced.
type Friend struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	FriendID  string    `json:"friend_id" db:"friend_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
