package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/psharda/fieldforce/backend/internal/domain"
	"github.com/psharda/fieldforce/backend/internal/repo"
)

// ExportService assembles an XLSX workbook of all daily visit reports,
// one row per report, for back-office consumption.
type ExportService struct {
	reports repo.VisitReportRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(reports repo.VisitReportRepo) *ExportService {
	return &ExportService{reports: reports}
}

var exportHeader = []any{
	"Report Date", "Dealer Type", "Dealer Name", "Sub Dealer Name", "Location",
	"Visit Type", "Sales (Bags)", "Brands Selling", "Contact Person", "Contact No",
	"Feedbacks", "Solution", "Remarks", "Check-In", "Check-Out",
}

// Export builds the workbook. The caller owns the returned file and should
// close it after writing it out.
func (s *ExportService) Export(ctx context.Context) (*excelize.File, error) {
	reports, err := s.reports.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: header: %w", err)
	}

	for i, r := range reports {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{
			r.ReportDate.Format(domain.DateLayout),
			r.DealerType,
			derefOrEmpty(r.DealerName),
			derefOrEmpty(r.SubDealerName),
			r.Location,
			r.VisitType,
			r.SalesBagsCement,
			strings.Join(r.BrandSelling, ", "),
			derefOrEmpty(r.ContactPerson),
			derefOrEmpty(r.ContactNo),
			r.Feedbacks,
			derefOrEmpty(r.SolutionBySalesperson),
			derefOrEmpty(r.AnyRemarks),
			r.CheckInTime.Format(time.RFC3339),
			formatOptionalTime(r.CheckOutTime),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("service.ExportService.Export: row %d: %w", i+2, err)
		}
	}

	return f, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
