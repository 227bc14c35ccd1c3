package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

// VisitReportRepo defines the persistence operations for daily visit reports.
type VisitReportRepo interface {
	// Create inserts a new report (the service supplies the ID) and returns
	// the persisted record.
	Create(ctx context.Context, r domain.DailyVisitReport) (domain.DailyVisitReport, error)

	// List returns reports newest first with the total count for pagination.
	List(ctx context.Context, p domain.PaginationParams) ([]domain.DailyVisitReport, int64, error)

	// ListAll returns every report, oldest first. Used by the XLSX export.
	ListAll(ctx context.Context) ([]domain.DailyVisitReport, error)
}

type pgVisitReportRepo struct {
	db db
}

// NewVisitReportRepo constructs a VisitReportRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewVisitReportRepo(db db) VisitReportRepo {
	return &pgVisitReportRepo{db: db}
}

const visitReportColumns = `
	id, report_date, dealer_type, dealer_name, sub_dealer_name, location,
	latitude, longitude, visit_type, sales_bags_cement, brand_selling,
	contact_person, contact_no, feedbacks, solution_by_salesperson, any_remarks,
	check_in_time, check_out_time, in_time_image_url, out_time_image_url,
	created_at, updated_at`

func (r *pgVisitReportRepo) Create(ctx context.Context, v domain.DailyVisitReport) (domain.DailyVisitReport, error) {
	const q = `
		INSERT INTO daily_visit_reports (
			id, report_date, dealer_type, dealer_name, sub_dealer_name, location,
			latitude, longitude, visit_type, sales_bags_cement, brand_selling,
			contact_person, contact_no, feedbacks, solution_by_salesperson, any_remarks,
			check_in_time, check_out_time, in_time_image_url, out_time_image_url,
			created_at, updated_at
		)
		VALUES (
			@id, @report_date, @dealer_type, @dealer_name, @sub_dealer_name, @location,
			@latitude, @longitude, @visit_type, @sales_bags_cement, @brand_selling,
			@contact_person, @contact_no, @feedbacks, @solution_by_salesperson, @any_remarks,
			@check_in_time, @check_out_time, @in_time_image_url, @out_time_image_url,
			@created_at, @updated_at
		)
		RETURNING` + visitReportColumns

	args := pgx.NamedArgs{
		"id":                      v.ID,
		"report_date":             v.ReportDate,
		"dealer_type":             v.DealerType,
		"dealer_name":             v.DealerName,
		"sub_dealer_name":         v.SubDealerName,
		"location":                v.Location,
		"latitude":                v.Latitude,
		"longitude":               v.Longitude,
		"visit_type":              v.VisitType,
		"sales_bags_cement":       v.SalesBagsCement,
		"brand_selling":           v.BrandSelling,
		"contact_person":          v.ContactPerson,
		"contact_no":              v.ContactNo,
		"feedbacks":               v.Feedbacks,
		"solution_by_salesperson": v.SolutionBySalesperson,
		"any_remarks":             v.AnyRemarks,
		"check_in_time":           v.CheckInTime,
		"check_out_time":          v.CheckOutTime,
		"in_time_image_url":       v.InTimeImageURL,
		"out_time_image_url":      v.OutTimeImageURL,
		"created_at":              v.CreatedAt,
		"updated_at":              v.UpdatedAt,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVisitReport(row)
	if err != nil {
		return domain.DailyVisitReport{}, fmt.Errorf("repo.VisitReportRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgVisitReportRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.DailyVisitReport, int64, error) {
	q := `SELECT` + visitReportColumns + `
		FROM daily_visit_reports
		ORDER BY report_date DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.VisitReportRepo.List: %w", err)
	}
	defer rows.Close()

	out, err := collectVisitReports(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.VisitReportRepo.List: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM daily_visit_reports`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.VisitReportRepo.List: count: %w", err)
	}
	return out, total, nil
}

func (r *pgVisitReportRepo) ListAll(ctx context.Context) ([]domain.DailyVisitReport, error) {
	q := `SELECT` + visitReportColumns + `
		FROM daily_visit_reports
		ORDER BY report_date ASC, created_at ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VisitReportRepo.ListAll: %w", err)
	}
	defer rows.Close()

	out, err := collectVisitReports(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.VisitReportRepo.ListAll: %w", err)
	}
	return out, nil
}

func collectVisitReports(rows pgx.Rows) ([]domain.DailyVisitReport, error) {
	var out []domain.DailyVisitReport
	for rows.Next() {
		v, err := scanVisitReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

// scanVisitReport maps a single database row into a domain.DailyVisitReport.
func scanVisitReport(s scanner) (domain.DailyVisitReport, error) {
	var (
		v        domain.DailyVisitReport
		id       pgtype.UUID
		checkOut pgtype.Timestamptz
	)

	err := s.Scan(
		&id, &v.ReportDate, &v.DealerType, &v.DealerName, &v.SubDealerName, &v.Location,
		&v.Latitude, &v.Longitude, &v.VisitType, &v.SalesBagsCement, &v.BrandSelling,
		&v.ContactPerson, &v.ContactNo, &v.Feedbacks, &v.SolutionBySalesperson, &v.AnyRemarks,
		&v.CheckInTime, &checkOut, &v.InTimeImageURL, &v.OutTimeImageURL,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return domain.DailyVisitReport{}, err
	}

	v.ID = uuid.UUID(id.Bytes)
	if checkOut.Valid {
		t := checkOut.Time
		v.CheckOutTime = &t
	}
	return v, nil
}
