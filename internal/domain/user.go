package domain

import "time"

// User is a salesperson account. PasswordHash is a bcrypt hash and is never
// serialized into API responses.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Region       *string   `json:"region,omitempty"`
	Area         *string   `json:"area,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
