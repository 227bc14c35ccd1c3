package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

// DealerRepo defines the persistence operations for dealers.
type DealerRepo interface {
	// Create inserts a new dealer and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, d domain.Dealer) (domain.Dealer, error)

	// List returns dealers newest first with the total count for pagination.
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Dealer, int64, error)
}

type pgDealerRepo struct {
	db db
}

// NewDealerRepo constructs a DealerRepo backed by the provided db connection.
func NewDealerRepo(db db) DealerRepo {
	return &pgDealerRepo{db: db}
}

const dealerColumns = `
	id, user_id, type, name, region, area, phone_no, address,
	total_potential, best_potential, brand_selling, feedbacks, remarks,
	created_at, updated_at`

func (r *pgDealerRepo) Create(ctx context.Context, d domain.Dealer) (domain.Dealer, error) {
	const q = `
		INSERT INTO dealers (
			user_id, type, name, region, area, phone_no, address,
			total_potential, best_potential, brand_selling, feedbacks, remarks
		)
		VALUES (
			@user_id, @type, @name, @region, @area, @phone_no, @address,
			@total_potential, @best_potential, @brand_selling, @feedbacks, @remarks
		)
		RETURNING` + dealerColumns

	args := pgx.NamedArgs{
		"user_id":         d.UserID,
		"type":            d.Type,
		"name":            d.Name,
		"region":          d.Region,
		"area":            d.Area,
		"phone_no":        d.Phone,
		"address":         d.Address,
		"total_potential": d.TotalPotential,
		"best_potential":  d.BestPotential,
		"brand_selling":   d.BrandSelling,
		"feedbacks":       d.Feedbacks,
		"remarks":         d.Remarks,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDealer(row)
	if err != nil {
		return domain.Dealer{}, fmt.Errorf("repo.DealerRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgDealerRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.Dealer, int64, error) {
	q := `SELECT` + dealerColumns + `
		FROM dealers
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.DealerRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.Dealer
	for rows.Next() {
		d, err := scanDealer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.DealerRepo.List: scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.DealerRepo.List: rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM dealers`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.DealerRepo.List: count: %w", err)
	}
	return out, total, nil
}

// scanDealer maps a single database row into a domain.Dealer.
func scanDealer(s scanner) (domain.Dealer, error) {
	var (
		d  domain.Dealer
		id pgtype.UUID
	)

	err := s.Scan(
		&id, &d.UserID, &d.Type, &d.Name, &d.Region, &d.Area, &d.Phone, &d.Address,
		&d.TotalPotential, &d.BestPotential, &d.BrandSelling, &d.Feedbacks, &d.Remarks,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return domain.Dealer{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	return d, nil
}
