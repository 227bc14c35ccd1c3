package domain

import (
	"time"

	"github.com/google/uuid"
)

// CollectionReport records money collected from a dealer against a filed
// daily visit report.
type CollectionReport struct {
	ID              uuid.UUID `json:"id"`
	DvrID           uuid.UUID `json:"dvrId"`
	CollectedAmount float64   `json:"collectedAmount"`
	CollectedOnDate string    `json:"collectedOnDate"` // YYYY-MM-DD
	DealerName      string    `json:"dealerName"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DDPReport is a dealer development process entry: a dated note tracking the
// progress of converting or growing a dealer, with the current obstacle if any.
type DDPReport struct {
	ID           uuid.UUID `json:"id"`
	UserID       int64     `json:"userId"`
	DealerID     uuid.UUID `json:"dealerId"`
	CreationDate string    `json:"creationDate"` // YYYY-MM-DD
	Obstacle     *string   `json:"obstacle"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
