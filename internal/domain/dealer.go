package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dealer is a dealer or sub-dealer record owned by the salesperson who
// onboarded it. Potential figures are in metric tonnes per month.
type Dealer struct {
	ID             uuid.UUID `json:"id"`
	UserID         int64     `json:"userId"`
	Type           string    `json:"type"` // "Dealer" or "Sub Dealer"
	Name           string    `json:"name"`
	Region         string    `json:"region"`
	Area           string    `json:"area"`
	Phone          string    `json:"phoneNo"`
	Address        string    `json:"address"`
	TotalPotential float64   `json:"totalPotential"`
	BestPotential  float64   `json:"bestPotential"`
	BrandSelling   []string  `json:"brandSelling"`
	Feedbacks      string    `json:"feedbacks"`
	Remarks        *string   `json:"remarks"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// DealerBrandMapping links a dealer to one brand it stocks, with the monthly
// capacity in metric tonnes.
type DealerBrandMapping struct {
	ID        uuid.UUID `json:"id"`
	DealerID  uuid.UUID `json:"dealerId"`
	BrandName string    `json:"brandName"`
	Capacity  float64   `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
