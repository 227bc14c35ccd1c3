package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

// LeaveRepo defines the persistence operations for leave applications.
type LeaveRepo interface {
	Create(ctx context.Context, l domain.LeaveApplication) (domain.LeaveApplication, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.LeaveApplication, int64, error)
}

type pgLeaveRepo struct {
	db db
}

// NewLeaveRepo constructs a LeaveRepo backed by the provided db connection.
func NewLeaveRepo(db db) LeaveRepo {
	return &pgLeaveRepo{db: db}
}

const leaveColumns = `
	id, user_id, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
	leave_type, reason, status, created_at, updated_at`

func (r *pgLeaveRepo) Create(ctx context.Context, l domain.LeaveApplication) (domain.LeaveApplication, error) {
	const q = `
		INSERT INTO leave_applications (user_id, start_date, end_date, leave_type, reason, status)
		VALUES (@user_id, @start_date, @end_date, @leave_type, @reason, @status)
		RETURNING` + leaveColumns

	args := pgx.NamedArgs{
		"user_id":    l.UserID,
		"start_date": l.StartDate,
		"end_date":   l.EndDate,
		"leave_type": l.LeaveType,
		"reason":     l.Reason,
		"status":     l.Status,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanLeave(row)
	if err != nil {
		return domain.LeaveApplication{}, fmt.Errorf("repo.LeaveRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgLeaveRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.LeaveApplication, int64, error) {
	q := `SELECT` + leaveColumns + `
		FROM leave_applications
		ORDER BY start_date DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.LeaveRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.LeaveApplication
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.LeaveRepo.List: scan: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.LeaveRepo.List: rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM leave_applications`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.LeaveRepo.List: count: %w", err)
	}
	return out, total, nil
}

func scanLeave(s scanner) (domain.LeaveApplication, error) {
	var (
		l  domain.LeaveApplication
		id pgtype.UUID
	)

	err := s.Scan(&id, &l.UserID, &l.StartDate, &l.EndDate, &l.LeaveType, &l.Reason, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return domain.LeaveApplication{}, err
	}

	l.ID = uuid.UUID(id.Bytes)
	return l, nil
}
