package domain

import (
	"time"

	"github.com/google/uuid"
)

// SalesOrder is an order booked by a salesperson for a dealer.
// Payment figures are denormalized on purpose: the mobile client computes
// pending = total - advance and the server stores what was submitted.
type SalesOrder struct {
	ID                uuid.UUID `json:"id"`
	SalesmanID        int64     `json:"salesmanId"`
	DealerID          uuid.UUID `json:"dealerId"`
	Quantity          float64   `json:"quantity"`
	Unit              string    `json:"unit"` // "MT" or "Bags"
	OrderTotal        float64   `json:"orderTotal"`
	AdvancePayment    float64   `json:"advancePayment"`
	PendingPayment    float64   `json:"pendingPayment"`
	EstimatedDelivery string    `json:"estimatedDelivery"` // YYYY-MM-DD
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// LeaveApplication is a salesperson's request for leave. Status starts as
// "Pending" (server-assigned) and is changed out-of-band by an approver.
type LeaveApplication struct {
	ID        uuid.UUID `json:"id"`
	UserID    int64     `json:"userId"`
	StartDate string    `json:"startDate"` // YYYY-MM-DD
	EndDate   string    `json:"endDate"`   // YYYY-MM-DD
	LeaveType string    `json:"leaveType"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PermanentJourneyPlan is a planned market visit for a future date.
// Status starts as "Pending" (server-assigned).
type PermanentJourneyPlan struct {
	ID               uuid.UUID `json:"id"`
	UserID           int64     `json:"userId"`
	PlanDate         string    `json:"planDate"` // YYYY-MM-DD
	AreaToBeVisited  string    `json:"areaToBeVisited"`
	Description      *string   `json:"description"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
