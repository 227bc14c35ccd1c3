// Package handler implements the HTTP layer of the FieldForce API.
// All handlers are methods on Server or registrations produced by the generic
// CreateResource/ListResource pipeline; every response uses the same envelope.
package handler

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

// AttendanceServicer defines the attendance operations the handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type AttendanceServicer interface {
	CheckIn(ctx context.Context, in domain.CheckIn) (domain.Attendance, error)
	CheckOut(ctx context.Context, in domain.CheckOut) (domain.Attendance, error)
	List(ctx context.Context, userID *int64, date *string, p domain.PaginationParams) ([]domain.Attendance, int64, error)
}

// VisitReportServicer defines the visit-report operations the handler depends on.
type VisitReportServicer interface {
	Create(ctx context.Context, v domain.DailyVisitReport) (domain.DailyVisitReport, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.DailyVisitReport, int64, error)
}

// AuthServicer defines the credential check the login handler depends on.
type AuthServicer interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
}

// ExportServicer defines the workbook assembly the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) (*excelize.File, error)
}

// DealerStore is the slice of the dealer repo the generic pipeline uses.
type DealerStore interface {
	Create(ctx context.Context, d domain.Dealer) (domain.Dealer, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Dealer, int64, error)
}

// BrandMappingStore is the slice of the brand-mapping repo the pipeline uses.
type BrandMappingStore interface {
	Create(ctx context.Context, m domain.DealerBrandMapping) (domain.DealerBrandMapping, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.DealerBrandMapping, int64, error)
}

// CollectionReportStore is the slice of the collection-report repo the pipeline uses.
type CollectionReportStore interface {
	Create(ctx context.Context, c domain.CollectionReport) (domain.CollectionReport, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.CollectionReport, int64, error)
}

// DDPStore is the slice of the DDP repo the pipeline uses.
type DDPStore interface {
	Create(ctx context.Context, d domain.DDPReport) (domain.DDPReport, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.DDPReport, int64, error)
}

// SalesOrderStore is the slice of the sales-order repo the pipeline uses.
type SalesOrderStore interface {
	Create(ctx context.Context, o domain.SalesOrder) (domain.SalesOrder, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.SalesOrder, int64, error)
}

// LeaveStore is the slice of the leave repo the pipeline uses.
type LeaveStore interface {
	Create(ctx context.Context, l domain.LeaveApplication) (domain.LeaveApplication, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.LeaveApplication, int64, error)
}

// JourneyPlanStore is the slice of the journey-plan repo the pipeline uses.
type JourneyPlanStore interface {
	Create(ctx context.Context, j domain.PermanentJourneyPlan) (domain.PermanentJourneyPlan, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.PermanentJourneyPlan, int64, error)
}

// Entities bundles the stores the generic pipeline registers routes for.
type Entities struct {
	Dealers           DealerStore
	BrandMappings     BrandMappingStore
	CollectionReports CollectionReportStore
	DDP               DDPStore
	SalesOrders       SalesOrderStore
	Leaves            LeaveStore
	JourneyPlans      JourneyPlanStore
}

// Server holds the dependencies of all API endpoints.
// Wire it in main.go via NewServer(...).Router().
type Server struct {
	attendance AttendanceServicer
	reports    VisitReportServicer
	auth       AuthServicer
	export     ExportServicer
	entities   Entities
	validate   *validator.Validate
	log        *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	attendance AttendanceServicer,
	reports VisitReportServicer,
	auth AuthServicer,
	export ExportServicer,
	entities Entities,
	log *slog.Logger,
) *Server {
	return &Server{
		attendance: attendance,
		reports:    reports,
		auth:       auth,
		export:     export,
		entities:   entities,
		validate:   NewValidator(),
		log:        log,
	}
}
