package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

// Request DTOs for the entities served by the generic pipeline. Each carries
// only client-owned fields; identifiers, timestamps, and statuses are
// computed server-side in the Build functions below.

type dealerRequest struct {
	UserID         int64     `json:"userId" validate:"required"`
	Type           string    `json:"type" validate:"required,oneof=Dealer 'Sub Dealer'"`
	Name           string    `json:"name" validate:"required"`
	Region         string    `json:"region" validate:"required"`
	Area           string    `json:"area" validate:"required"`
	Phone          string    `json:"phoneNo" validate:"required"`
	Address        string    `json:"address" validate:"required"`
	TotalPotential float64   `json:"totalPotential" validate:"min=0"`
	BestPotential  float64   `json:"bestPotential" validate:"min=0"`
	BrandSelling   brandList `json:"brandSelling" validate:"required,min=1"`
	Feedbacks      string    `json:"feedbacks" validate:"required"`
	Remarks        *string   `json:"remarks"`
}

type brandMappingRequest struct {
	DealerID  string  `json:"dealerId" validate:"required,uuid"`
	BrandName string  `json:"brandName" validate:"required"`
	Capacity  float64 `json:"capacity" validate:"min=0"`
}

type collectionReportRequest struct {
	DvrID           string  `json:"dvrId" validate:"required,uuid"`
	CollectedAmount float64 `json:"collectedAmount" validate:"required,min=0"`
	CollectedOnDate string  `json:"collectedOnDate" validate:"required,datetime=2006-01-02"`
	DealerName      string  `json:"dealerName" validate:"required"`
}

type ddpRequest struct {
	UserID       int64   `json:"userId" validate:"required"`
	DealerID     string  `json:"dealerId" validate:"required,uuid"`
	CreationDate string  `json:"creationDate" validate:"required,datetime=2006-01-02"`
	Obstacle     *string `json:"obstacle"`
}

type salesOrderRequest struct {
	SalesmanID        int64   `json:"salesmanId" validate:"required"`
	DealerID          string  `json:"dealerId" validate:"required,uuid"`
	Quantity          float64 `json:"quantity" validate:"required,min=0"`
	Unit              string  `json:"unit" validate:"required,oneof=MT Bags"`
	OrderTotal        float64 `json:"orderTotal" validate:"required,min=0"`
	AdvancePayment    float64 `json:"advancePayment" validate:"min=0"`
	PendingPayment    float64 `json:"pendingPayment" validate:"min=0"`
	EstimatedDelivery string  `json:"estimatedDelivery" validate:"required,datetime=2006-01-02"`
}

type leaveRequest struct {
	UserID    int64  `json:"userId" validate:"required"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	LeaveType string `json:"leaveType" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
}

type journeyPlanRequest struct {
	UserID          int64   `json:"userId" validate:"required"`
	PlanDate        string  `json:"planDate" validate:"required,datetime=2006-01-02"`
	AreaToBeVisited string  `json:"areaToBeVisited" validate:"required"`
	Description     *string `json:"description"`
}

// registerEntities wires one POST and one GET route per pipeline entity.
// The uuid.MustParse calls are safe: the `uuid` validate tag has already
// rejected anything unparseable by the time Build runs.
func (s *Server) registerEntities(r chi.Router) {
	CreateResource[dealerRequest, domain.Dealer]{
		Path:  "dealers",
		Label: "Dealer",
		Build: func(req dealerRequest) domain.Dealer {
			return domain.Dealer{
				UserID:         req.UserID,
				Type:           req.Type,
				Name:           req.Name,
				Region:         req.Region,
				Area:           req.Area,
				Phone:          req.Phone,
				Address:        req.Address,
				TotalPotential: req.TotalPotential,
				BestPotential:  req.BestPotential,
				BrandSelling:   req.BrandSelling,
				Feedbacks:      req.Feedbacks,
				Remarks:        req.Remarks,
			}
		},
		Insert: s.entities.Dealers.Create,
	}.Register(r, s.validate, s.log)
	ListResource[domain.Dealer]{Path: "dealers", Label: "Dealer", List: s.entities.Dealers.List}.Register(r, s.log)

	CreateResource[brandMappingRequest, domain.DealerBrandMapping]{
		Path:  "dealer-brand-mapping",
		Label: "Dealer Brand Mapping",
		Build: func(req brandMappingRequest) domain.DealerBrandMapping {
			return domain.DealerBrandMapping{
				DealerID:  uuid.MustParse(req.DealerID),
				BrandName: req.BrandName,
				Capacity:  req.Capacity,
			}
		},
		Insert: s.entities.BrandMappings.Create,
	}.Register(r, s.validate, s.log)
	ListResource[domain.DealerBrandMapping]{Path: "dealer-brand-mapping", Label: "Dealer Brand Mapping", List: s.entities.BrandMappings.List}.Register(r, s.log)

	CreateResource[collectionReportRequest, domain.CollectionReport]{
		Path:  "collection-reports",
		Label: "Collection Report",
		Build: func(req collectionReportRequest) domain.CollectionReport {
			return domain.CollectionReport{
				DvrID:           uuid.MustParse(req.DvrID),
				CollectedAmount: req.CollectedAmount,
				CollectedOnDate: req.CollectedOnDate,
				DealerName:      req.DealerName,
			}
		},
		Insert: s.entities.CollectionReports.Create,
	}.Register(r, s.validate, s.log)
	ListResource[domain.CollectionReport]{Path: "collection-reports", Label: "Collection Report", List: s.entities.CollectionReports.List}.Register(r, s.log)

	CreateResource[ddpRequest, domain.DDPReport]{
		Path:  "ddp",
		Label: "DDP Report",
		Build: func(req ddpRequest) domain.DDPReport {
			return domain.DDPReport{
				UserID:       req.UserID,
				DealerID:     uuid.MustParse(req.DealerID),
				CreationDate: req.CreationDate,
				Obstacle:     req.Obstacle,
			}
		},
		Insert: s.entities.DDP.Create,
	}.Register(r, s.validate, s.log)
	ListResource[domain.DDPReport]{Path: "ddp", Label: "DDP Report", List: s.entities.DDP.List}.Register(r, s.log)

	CreateResource[salesOrderRequest, domain.SalesOrder]{
		Path:  "sales-orders",
		Label: "Sales Order",
		Build: func(req salesOrderRequest) domain.SalesOrder {
			return domain.SalesOrder{
				SalesmanID:        req.SalesmanID,
				DealerID:          uuid.MustParse(req.DealerID),
				Quantity:          req.Quantity,
				Unit:              req.Unit,
				OrderTotal:        req.OrderTotal,
				AdvancePayment:    req.AdvancePayment,
				PendingPayment:    req.PendingPayment,
				EstimatedDelivery: req.EstimatedDelivery,
			}
		},
		Insert: s.entities.SalesOrders.Create,
	}.Register(r, s.validate, s.log)
	ListResource[domain.SalesOrder]{Path: "sales-orders", Label: "Sales Order", List: s.entities.SalesOrders.List}.Register(r, s.log)

	CreateResource[leaveRequest, domain.LeaveApplication]{
		Path:  "leave-applications",
		Label: "Leave Application",
		Build: func(req leaveRequest) domain.LeaveApplication {
			return domain.LeaveApplication{
				UserID:    req.UserID,
				StartDate: req.StartDate,
				EndDate:   req.EndDate,
				LeaveType: req.LeaveType,
				Reason:    req.Reason,
				Status:    "Pending", // server-assigned, never client input
			}
		},
		Insert: s.entities.Leaves.Create,
	}.Register(r, s.validate, s.log)
	ListResource[domain.LeaveApplication]{Path: "leave-applications", Label: "Leave Application", List: s.entities.Leaves.List}.Register(r, s.log)

	CreateResource[journeyPlanRequest, domain.PermanentJourneyPlan]{
		Path:  "permanent-journey-plans",
		Label: "Permanent Journey Plan",
		Build: func(req journeyPlanRequest) domain.PermanentJourneyPlan {
			return domain.PermanentJourneyPlan{
				UserID:          req.UserID,
				PlanDate:        req.PlanDate,
				AreaToBeVisited: req.AreaToBeVisited,
				Description:     req.Description,
				Status:          "Pending", // server-assigned, never client input
			}
		},
		Insert: s.entities.JourneyPlans.Create,
	}.Register(r, s.validate, s.log)
	ListResource[domain.PermanentJourneyPlan]{Path: "permanent-journey-plans", Label: "Permanent Journey Plan", List: s.entities.JourneyPlans.List}.Register(r, s.log)
}
