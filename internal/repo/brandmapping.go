package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

// BrandMappingRepo defines the persistence operations for dealer-brand mappings.
type BrandMappingRepo interface {
	Create(ctx context.Context, m domain.DealerBrandMapping) (domain.DealerBrandMapping, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.DealerBrandMapping, int64, error)
}

type pgBrandMappingRepo struct {
	db db
}

// NewBrandMappingRepo constructs a BrandMappingRepo backed by the provided db connection.
func NewBrandMappingRepo(db db) BrandMappingRepo {
	return &pgBrandMappingRepo{db: db}
}

const brandMappingColumns = `id, dealer_id, brand_name, capacity, created_at, updated_at`

func (r *pgBrandMappingRepo) Create(ctx context.Context, m domain.DealerBrandMapping) (domain.DealerBrandMapping, error) {
	const q = `
		INSERT INTO dealer_brand_mapping (dealer_id, brand_name, capacity)
		VALUES (@dealer_id, @brand_name, @capacity)
		RETURNING ` + brandMappingColumns

	args := pgx.NamedArgs{
		"dealer_id":  m.DealerID,
		"brand_name": m.BrandName,
		"capacity":   m.Capacity,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanBrandMapping(row)
	if err != nil {
		return domain.DealerBrandMapping{}, fmt.Errorf("repo.BrandMappingRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgBrandMappingRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.DealerBrandMapping, int64, error) {
	q := `SELECT ` + brandMappingColumns + `
		FROM dealer_brand_mapping
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.BrandMappingRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.DealerBrandMapping
	for rows.Next() {
		m, err := scanBrandMapping(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.BrandMappingRepo.List: scan: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.BrandMappingRepo.List: rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM dealer_brand_mapping`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.BrandMappingRepo.List: count: %w", err)
	}
	return out, total, nil
}

func scanBrandMapping(s scanner) (domain.DealerBrandMapping, error) {
	var (
		m        domain.DealerBrandMapping
		id       pgtype.UUID
		dealerID pgtype.UUID
	)

	err := s.Scan(&id, &dealerID, &m.BrandName, &m.Capacity, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return domain.DealerBrandMapping{}, err
	}

	m.ID = uuid.UUID(id.Bytes)
	m.DealerID = uuid.UUID(dealerID.Bytes)
	return m, nil
}
