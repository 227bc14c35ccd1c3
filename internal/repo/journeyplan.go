package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

// JourneyPlanRepo defines the persistence operations for permanent journey plans.
type JourneyPlanRepo interface {
	Create(ctx context.Context, j domain.PermanentJourneyPlan) (domain.PermanentJourneyPlan, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.PermanentJourneyPlan, int64, error)
}

type pgJourneyPlanRepo struct {
	db db
}

// NewJourneyPlanRepo constructs a JourneyPlanRepo backed by the provided db connection.
func NewJourneyPlanRepo(db db) JourneyPlanRepo {
	return &pgJourneyPlanRepo{db: db}
}

const journeyPlanColumns = `
	id, user_id, to_char(plan_date, 'YYYY-MM-DD'), area_to_be_visited,
	description, status, created_at, updated_at`

func (r *pgJourneyPlanRepo) Create(ctx context.Context, j domain.PermanentJourneyPlan) (domain.PermanentJourneyPlan, error) {
	const q = `
		INSERT INTO permanent_journey_plans (user_id, plan_date, area_to_be_visited, description, status)
		VALUES (@user_id, @plan_date, @area_to_be_visited, @description, @status)
		RETURNING` + journeyPlanColumns

	args := pgx.NamedArgs{
		"user_id":            j.UserID,
		"plan_date":          j.PlanDate,
		"area_to_be_visited": j.AreaToBeVisited,
		"description":        j.Description,
		"status":             j.Status,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanJourneyPlan(row)
	if err != nil {
		return domain.PermanentJourneyPlan{}, fmt.Errorf("repo.JourneyPlanRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgJourneyPlanRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.PermanentJourneyPlan, int64, error) {
	q := `SELECT` + journeyPlanColumns + `
		FROM permanent_journey_plans
		ORDER BY plan_date DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.JourneyPlanRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.PermanentJourneyPlan
	for rows.Next() {
		j, err := scanJourneyPlan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.JourneyPlanRepo.List: scan: %w", err)
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.JourneyPlanRepo.List: rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM permanent_journey_plans`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.JourneyPlanRepo.List: count: %w", err)
	}
	return out, total, nil
}

func scanJourneyPlan(s scanner) (domain.PermanentJourneyPlan, error) {
	var (
		j  domain.PermanentJourneyPlan
		id pgtype.UUID
	)

	err := s.Scan(&id, &j.UserID, &j.PlanDate, &j.AreaToBeVisited, &j.Description, &j.Status, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return domain.PermanentJourneyPlan{}, err
	}

	j.ID = uuid.UUID(id.Bytes)
	return j, nil
}
