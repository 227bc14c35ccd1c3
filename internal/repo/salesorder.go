package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

// SalesOrderRepo defines the persistence operations for sales orders.
type SalesOrderRepo interface {
	Create(ctx context.Context, o domain.SalesOrder) (domain.SalesOrder, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.SalesOrder, int64, error)
}

type pgSalesOrderRepo struct {
	db db
}

// NewSalesOrderRepo constructs a SalesOrderRepo backed by the provided db connection.
func NewSalesOrderRepo(db db) SalesOrderRepo {
	return &pgSalesOrderRepo{db: db}
}

const salesOrderColumns = `
	id, salesman_id, dealer_id, quantity, unit, order_total, advance_payment,
	pending_payment, to_char(estimated_delivery, 'YYYY-MM-DD'), created_at, updated_at`

func (r *pgSalesOrderRepo) Create(ctx context.Context, o domain.SalesOrder) (domain.SalesOrder, error) {
	const q = `
		INSERT INTO sales_orders (
			salesman_id, dealer_id, quantity, unit, order_total,
			advance_payment, pending_payment, estimated_delivery
		)
		VALUES (
			@salesman_id, @dealer_id, @quantity, @unit, @order_total,
			@advance_payment, @pending_payment, @estimated_delivery
		)
		RETURNING` + salesOrderColumns

	args := pgx.NamedArgs{
		"salesman_id":        o.SalesmanID,
		"dealer_id":          o.DealerID,
		"quantity":           o.Quantity,
		"unit":               o.Unit,
		"order_total":        o.OrderTotal,
		"advance_payment":    o.AdvancePayment,
		"pending_payment":    o.PendingPayment,
		"estimated_delivery": o.EstimatedDelivery,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanSalesOrder(row)
	if err != nil {
		return domain.SalesOrder{}, fmt.Errorf("repo.SalesOrderRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgSalesOrderRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.SalesOrder, int64, error) {
	q := `SELECT` + salesOrderColumns + `
		FROM sales_orders
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.SalesOrderRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.SalesOrder
	for rows.Next() {
		o, err := scanSalesOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.SalesOrderRepo.List: scan: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.SalesOrderRepo.List: rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sales_orders`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.SalesOrderRepo.List: count: %w", err)
	}
	return out, total, nil
}

func scanSalesOrder(s scanner) (domain.SalesOrder, error) {
	var (
		o        domain.SalesOrder
		id       pgtype.UUID
		dealerID pgtype.UUID
	)

	err := s.Scan(
		&id, &o.SalesmanID, &dealerID, &o.Quantity, &o.Unit, &o.OrderTotal,
		&o.AdvancePayment, &o.PendingPayment, &o.EstimatedDelivery, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return domain.SalesOrder{}, err
	}

	o.ID = uuid.UUID(id.Bytes)
	o.DealerID = uuid.UUID(dealerID.Bytes)
	return o, nil
}
