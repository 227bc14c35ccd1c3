package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

// CollectionReportRepo defines the persistence operations for collection reports.
type CollectionReportRepo interface {
	Create(ctx context.Context, c domain.CollectionReport) (domain.CollectionReport, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.CollectionReport, int64, error)
}

type pgCollectionReportRepo struct {
	db db
}

// NewCollectionReportRepo constructs a CollectionReportRepo backed by the provided db connection.
func NewCollectionReportRepo(db db) CollectionReportRepo {
	return &pgCollectionReportRepo{db: db}
}

const collectionColumns = `
	id, dvr_id, collected_amount, to_char(collected_on_date, 'YYYY-MM-DD'),
	dealer_name, created_at, updated_at`

func (r *pgCollectionReportRepo) Create(ctx context.Context, c domain.CollectionReport) (domain.CollectionReport, error) {
	const q = `
		INSERT INTO collection_reports (dvr_id, collected_amount, collected_on_date, dealer_name)
		VALUES (@dvr_id, @collected_amount, @collected_on_date, @dealer_name)
		RETURNING` + collectionColumns

	args := pgx.NamedArgs{
		"dvr_id":            c.DvrID,
		"collected_amount":  c.CollectedAmount,
		"collected_on_date": c.CollectedOnDate,
		"dealer_name":       c.DealerName,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanCollectionReport(row)
	if err != nil {
		return domain.CollectionReport{}, fmt.Errorf("repo.CollectionReportRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgCollectionReportRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.CollectionReport, int64, error) {
	q := `SELECT` + collectionColumns + `
		FROM collection_reports
		ORDER BY collected_on_date DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.CollectionReportRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.CollectionReport
	for rows.Next() {
		c, err := scanCollectionReport(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.CollectionReportRepo.List: scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.CollectionReportRepo.List: rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM collection_reports`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.CollectionReportRepo.List: count: %w", err)
	}
	return out, total, nil
}

func scanCollectionReport(s scanner) (domain.CollectionReport, error) {
	var (
		c     domain.CollectionReport
		id    pgtype.UUID
		dvrID pgtype.UUID
	)

	err := s.Scan(&id, &dvrID, &c.CollectedAmount, &c.CollectedOnDate, &c.DealerName, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.CollectionReport{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.DvrID = uuid.UUID(dvrID.Bytes)
	return c, nil
}
