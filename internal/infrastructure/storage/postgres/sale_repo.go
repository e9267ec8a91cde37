package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"colibri/internal/core/apperror"
	"colibri/internal/core/id"
	"colibri/internal/core/types"
	"colibri/internal/domain/sales"
)

const (
	saleTable     = "sales"
	saleItemTable = "sale_items"
)

var saleColumns = []string{
	"id", "number", "receipt_number", "payment_method",
	"total", "date", "created_by",
}

// SaleRepository is the PostgreSQL sales.Repository.
type SaleRepository struct {
	txManager *TxManager
}

// NewSaleRepository creates a PostgreSQL-backed sale repository.
func NewSaleRepository(txManager *TxManager) *SaleRepository {
	return &SaleRepository{txManager: txManager}
}

var _ sales.Repository = (*SaleRepository)(nil)

// Append implements sales.Repository. The sale row and its items are written
// in one transaction so the ledger never holds a sale without its lines.
func (r *SaleRepository) Append(ctx context.Context, sale *sales.Sale) error {
	return r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		querier := r.txManager.GetQuerier(ctx)

		sql, args, err := builder().
			Insert(saleTable).
			Columns(saleColumns...).
			Values(sale.ID, sale.Number, sale.ReceiptNumber, sale.PaymentMethod,
				sale.Total, sale.Date, sale.CreatedBy).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}

		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			if isUniqueViolation(err) {
				return apperror.NewDuplicate("sale", "receipt number", sale.ReceiptNumber)
			}
			return apperror.NewDatabase(err)
		}

		if len(sale.Items) == 0 {
			return nil
		}

		itemQ := builder().
			Insert(saleItemTable).
			Columns("sale_id", "sku", "name", "unit_price", "quantity")
		for _, item := range sale.Items {
			itemQ = itemQ.Values(sale.ID, item.SKU, item.Name, item.UnitPrice, item.Quantity)
		}

		sql, args, err = itemQ.ToSql()
		if err != nil {
			return fmt.Errorf("build item insert: %w", err)
		}
		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return apperror.NewDatabase(err)
		}
		return nil
	})
}

// List implements sales.Repository.
func (r *SaleRepository) List(ctx context.Context) ([]*sales.Sale, error) {
	return r.list(ctx, builder().
		Select(saleColumns...).
		From(saleTable).
		OrderBy("date"))
}

// ListBetween implements sales.Repository.
func (r *SaleRepository) ListBetween(ctx context.Context, rng sales.DateRange) ([]*sales.Sale, error) {
	return r.list(ctx, builder().
		Select(saleColumns...).
		From(saleTable).
		Where(squirrel.GtOrEq{"date": rng.From}).
		Where(squirrel.Lt{"date": rng.To}).
		OrderBy("date"))
}

// ExistsReceipt implements sales.Repository.
func (r *SaleRepository) ExistsReceipt(ctx context.Context, receiptNumber string) (bool, error) {
	var exists bool
	err := r.txManager.GetQuerier(ctx).QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM sales WHERE receipt_number = $1)", receiptNumber,
	).Scan(&exists)
	if err != nil {
		return false, apperror.NewDatabase(err)
	}
	return exists, nil
}

func (r *SaleRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*sales.Sale, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)

	var out []*sales.Sale
	if err := pgxscan.Select(ctx, querier, &out, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}
	if len(out) == 0 {
		return out, nil
	}

	if err := r.attachItems(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// itemRow carries a sale item together with its parent sale id.
type itemRow struct {
	SaleID    id.ID       `db:"sale_id"`
	SKU       string      `db:"sku"`
	Name      string      `db:"name"`
	UnitPrice types.Money `db:"unit_price"`
	Quantity  int         `db:"quantity"`
}

func (r *SaleRepository) attachItems(ctx context.Context, list []*sales.Sale) error {
	ids := make([]id.ID, len(list))
	index := make(map[id.ID]*sales.Sale, len(list))
	for i, s := range list {
		ids[i] = s.ID
		index[s.ID] = s
	}

	sql, args, err := builder().
		Select("sale_id", "sku", "name", "unit_price", "quantity").
		From(saleItemTable).
		Where(squirrel.Eq{"sale_id": ids}).
		OrderBy("sale_id", "sku").
		ToSql()
	if err != nil {
		return fmt.Errorf("build item select: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &rows, sql, args...); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return apperror.NewDatabase(err)
	}

	for _, row := range rows {
		sale := index[row.SaleID]
		if sale == nil {
			continue
		}
		sale.Items = append(sale.Items, sales.SaleItem{
			SKU:       row.SKU,
			Name:      row.Name,
			UnitPrice: row.UnitPrice,
			Quantity:  row.Quantity,
		})
	}
	return nil
}
