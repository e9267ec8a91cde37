package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"colibri/internal/core/apperror"
	"colibri/internal/domain/orders"
)

const orderTable = "orders"

var orderColumns = []string{
	"id", "number", "client_name", "phone", "delivery_date",
	"description", "deposit", "status", "created_by", "created_at",
}

// OrderRepository is the PostgreSQL orders.Repository.
type OrderRepository struct {
	txManager *TxManager
}

// NewOrderRepository creates a PostgreSQL-backed order repository.
func NewOrderRepository(txManager *TxManager) *OrderRepository {
	return &OrderRepository{txManager: txManager}
}

var _ orders.Repository = (*OrderRepository)(nil)

// Insert implements orders.Repository.
func (r *OrderRepository) Insert(ctx context.Context, order *orders.Order) error {
	sql, args, err := builder().
		Insert(orderTable).
		Columns(orderColumns...).
		Values(order.ID, order.Number, order.ClientName, order.Phone,
			order.DeliveryDate, order.Description, order.Deposit,
			order.Status, order.CreatedBy, order.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return apperror.NewDuplicate("order", "number", order.Number)
		}
		return apperror.NewDatabase(err)
	}
	return nil
}

// GetByNumber implements orders.Repository.
func (r *OrderRepository) GetByNumber(ctx context.Context, number string) (*orders.Order, error) {
	sql, args, err := builder().
		Select(orderColumns...).
		From(orderTable).
		Where(squirrel.Eq{"number": number}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var order orders.Order
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &order, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("order", number)
		}
		return nil, apperror.NewDatabase(err)
	}
	return &order, nil
}

// UpdateStatus implements orders.Repository.
func (r *OrderRepository) UpdateStatus(ctx context.Context, number string, status orders.Status) error {
	sql, args, err := builder().
		Update(orderTable).
		Set("status", status).
		Where(squirrel.Eq{"number": number}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewDatabase(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("order", number)
	}
	return nil
}

// List implements orders.Repository.
func (r *OrderRepository) List(ctx context.Context, filter orders.ListFilter) ([]*orders.Order, error) {
	q := builder().
		Select(orderColumns...).
		From(orderTable).
		OrderBy("delivery_date DESC", "number")

	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.DeliveryDay != "" {
		q = q.Where(squirrel.Expr("delivery_date::date = ?::date", filter.DeliveryDay))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"client_name": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var out []*orders.Order
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &out, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return out, nil
}
