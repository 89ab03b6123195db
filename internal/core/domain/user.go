package domain

import "time"

// User represents a registered user of the application.
type User struct {
	UserID       string    `json:"userID"` // Primary key (UUID)
	Name         string    `json:"name"`
	Email        string    `json:"email"` // Unique login identifier
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
