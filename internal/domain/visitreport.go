package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyVisitReport is the record a salesperson files after visiting a dealer
// or sub-dealer. Created once per visit; there is no update path.
//
// The ID is generated by the service rather than the database because the
// mobile client submits reports from flaky networks and needs the identifier
// echoed back in the creation response.
type DailyVisitReport struct {
	ID                    uuid.UUID  `json:"id"`
	ReportDate            time.Time  `json:"reportDate"`
	DealerType            string     `json:"dealerType"`
	DealerName            *string    `json:"dealerName"`
	SubDealerName         *string    `json:"subDealerName"`
	Location              string     `json:"location"`
	Latitude              float64    `json:"latitude"`
	Longitude             float64    `json:"longitude"`
	VisitType             string     `json:"visitType"`
	SalesBagsCement       int        `json:"salesBagsCement"`
	BrandSelling          []string   `json:"brandSelling"`
	ContactPerson         *string    `json:"contactPerson"`
	ContactNo             *string    `json:"contactNo"`
	Feedbacks             string     `json:"feedbacks"`
	SolutionBySalesperson *string    `json:"solutionBySalesperson"`
	AnyRemarks            *string    `json:"anyRemarks"`
	CheckInTime           time.Time  `json:"checkInTime"`
	CheckOutTime          *time.Time `json:"checkOutTime"`
	InTimeImageURL        *string    `json:"inTimeImageUrl"`
	OutTimeImageURL       *string    `json:"outTimeImageUrl"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}
