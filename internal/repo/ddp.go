package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

// DDPRepo defines the persistence operations for dealer development reports.
type DDPRepo interface {
	Create(ctx context.Context, d domain.DDPReport) (domain.DDPReport, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.DDPReport, int64, error)
}

type pgDDPRepo struct {
	db db
}

// NewDDPRepo constructs a DDPRepo backed by the provided db connection.
func NewDDPRepo(db db) DDPRepo {
	return &pgDDPRepo{db: db}
}

const ddpColumns = `
	id, user_id, dealer_id, to_char(creation_date, 'YYYY-MM-DD'), obstacle,
	created_at, updated_at`

func (r *pgDDPRepo) Create(ctx context.Context, d domain.DDPReport) (domain.DDPReport, error) {
	const q = `
		INSERT INTO ddp (user_id, dealer_id, creation_date, obstacle)
		VALUES (@user_id, @dealer_id, @creation_date, @obstacle)
		RETURNING` + ddpColumns

	args := pgx.NamedArgs{
		"user_id":       d.UserID,
		"dealer_id":     d.DealerID,
		"creation_date": d.CreationDate,
		"obstacle":      d.Obstacle,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDDP(row)
	if err != nil {
		return domain.DDPReport{}, fmt.Errorf("repo.DDPRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgDDPRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.DDPReport, int64, error) {
	q := `SELECT` + ddpColumns + `
		FROM ddp
		ORDER BY creation_date DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.DDPRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.DDPReport
	for rows.Next() {
		d, err := scanDDP(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.DDPRepo.List: scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.DDPRepo.List: rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ddp`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.DDPRepo.List: count: %w", err)
	}
	return out, total, nil
}

func scanDDP(s scanner) (domain.DDPReport, error) {
	var (
		d        domain.DDPReport
		id       pgtype.UUID
		dealerID pgtype.UUID
	)

	err := s.Scan(&id, &d.UserID, &dealerID, &d.CreationDate, &d.Obstacle, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return domain.DDPReport{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.DealerID = uuid.UUID(dealerID.Bytes)
	return d, nil
}
