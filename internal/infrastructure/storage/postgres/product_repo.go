package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"colibri/internal/core/apperror"
	"colibri/internal/core/types"
	"colibri/internal/domain/catalog"
)

const productTable = "products"

var productColumns = []string{"id", "sku", "name", "category", "price", "stock", "sold"}

// uniqueViolation is the PostgreSQL error code for unique constraint breaks.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// builder returns a squirrel builder with PostgreSQL placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// ProductRepository is the PostgreSQL catalog.Repository.
type ProductRepository struct {
	txManager *TxManager
}

// NewProductRepository creates a PostgreSQL-backed product repository.
func NewProductRepository(txManager *TxManager) *ProductRepository {
	return &ProductRepository{txManager: txManager}
}

var _ catalog.Repository = (*ProductRepository)(nil)

// List implements catalog.Repository.
func (r *ProductRepository) List(ctx context.Context) ([]*catalog.Product, error) {
	sql, args, err := builder().
		Select(productColumns...).
		From(productTable).
		OrderBy("sku").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var products []*catalog.Product
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &products, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return products, nil
}

// GetBySKU implements catalog.Repository.
func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	sql, args, err := builder().
		Select(productColumns...).
		From(productTable).
		Where(squirrel.Eq{"sku": sku}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var product catalog.Product
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &product, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("product", sku)
		}
		return nil, apperror.NewDatabase(err)
	}
	return &product, nil
}

// Insert implements catalog.Repository.
func (r *ProductRepository) Insert(ctx context.Context, product *catalog.Product) error {
	sql, args, err := builder().
		Insert(productTable).
		Columns(productColumns...).
		Values(product.ID, product.SKU, product.Name, product.Category,
			product.Price, product.Stock, product.Sold).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return apperror.NewDuplicate("product", "sku", product.SKU)
		}
		return apperror.NewDatabase(err)
	}
	return nil
}

// UpdatePrice implements catalog.Repository.
func (r *ProductRepository) UpdatePrice(ctx context.Context, sku string, price types.Money) error {
	sql, args, err := builder().
		Update(productTable).
		Set("price", price).
		Where(squirrel.Eq{"sku": sku}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewDatabase(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("product", sku)
	}
	return nil
}

// ApplyDeltas implements catalog.Repository. Each delta is its own UPDATE;
// there is no wrapping transaction, so surviving deltas stay applied when
// one SKU is missing.
func (r *ProductRepository) ApplyDeltas(ctx context.Context, deltas []catalog.SaleDelta) error {
	querier := r.txManager.GetQuerier(ctx)

	var missing error
	for _, d := range deltas {
		tag, err := querier.Exec(ctx, `
            UPDATE products
            SET stock = GREATEST(stock - $2, 0),
                sold  = sold + $2
            WHERE sku = $1
		`, d.SKU, d.Quantity)
		if err != nil {
			return apperror.NewDatabase(err)
		}
		if tag.RowsAffected() == 0 {
			missing = apperror.NewNotFound("product", d.SKU)
		}
	}
	return missing
}
