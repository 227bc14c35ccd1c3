package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/psharda/fieldforce/backend/internal/domain"
	"github.com/psharda/fieldforce/backend/internal/repo"
)

// VisitReportService implements creation and listing of daily visit reports.
// Creation normalizes the looser mobile payload into the canonical record:
// empty-string optionals become nil, the brand list is trimmed, and the
// identifier and timestamps are computed here regardless of client input.
type VisitReportService struct {
	reports repo.VisitReportRepo
}

// NewVisitReportService constructs a VisitReportService backed by the provided repo.
func NewVisitReportService(reports repo.VisitReportRepo) *VisitReportService {
	return &VisitReportService{reports: reports}
}

// Create normalizes and persists one visit report.
// The caller supplies the client fields; ID, CreatedAt, and UpdatedAt are
// always overwritten here so a fabricated value in the payload never survives.
// Returns domain.ErrValidation if the brand list is empty after trimming.
func (s *VisitReportService) Create(ctx context.Context, v domain.DailyVisitReport) (domain.DailyVisitReport, error) {
	v.BrandSelling = trimBrands(v.BrandSelling)
	if len(v.BrandSelling) == 0 {
		return domain.DailyVisitReport{}, fmt.Errorf("%w: brandSelling is required", domain.ErrValidation)
	}

	v.DealerName = nilIfBlank(v.DealerName)
	v.SubDealerName = nilIfBlank(v.SubDealerName)
	v.ContactPerson = nilIfBlank(v.ContactPerson)
	v.ContactNo = nilIfBlank(v.ContactNo)
	v.SolutionBySalesperson = nilIfBlank(v.SolutionBySalesperson)
	v.AnyRemarks = nilIfBlank(v.AnyRemarks)
	v.InTimeImageURL = nilIfBlank(v.InTimeImageURL)
	v.OutTimeImageURL = nilIfBlank(v.OutTimeImageURL)

	now := time.Now().UTC()
	v.ID = uuid.New()
	v.CreatedAt = now
	v.UpdatedAt = now

	created, err := s.reports.Create(ctx, v)
	if err != nil {
		return domain.DailyVisitReport{}, fmt.Errorf("service.VisitReportService.Create: %w", err)
	}
	return created, nil
}

// List returns visit reports newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *VisitReportService) List(ctx context.Context, p domain.PaginationParams) ([]domain.DailyVisitReport, int64, error) {
	reports, total, err := s.reports.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.VisitReportService.List: %w", err)
	}
	if reports == nil {
		reports = []domain.DailyVisitReport{}
	}
	return reports, total, nil
}

// trimBrands trims every brand name and drops entries that are empty after
// trimming. The handler already split a comma-separated submission into a
// list; this pass cleans both that shape and a client-sent array.
func trimBrands(brands []string) []string {
	out := make([]string, 0, len(brands))
	for _, b := range brands {
		if t := strings.TrimSpace(b); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// nilIfBlank normalizes an optional text field submitted as "" (or whitespace)
// to the absent marker, so empty strings are never persisted.
func nilIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	if strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
