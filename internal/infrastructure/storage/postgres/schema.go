package postgres

import (
	"context"
	"fmt"
)

// schemaStatements create the tables the register needs. All statements are
// idempotent so the seeder can run against an existing database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id          UUID PRIMARY KEY,
		sku         TEXT NOT NULL UNIQUE,
		name        TEXT NOT NULL,
		category    TEXT NOT NULL DEFAULT '',
		price       NUMERIC(12,2) NOT NULL DEFAULT 0,
		stock       INT NOT NULL DEFAULT 0,
		sold        INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id            UUID PRIMARY KEY,
		number        TEXT NOT NULL UNIQUE,
		client_name   TEXT NOT NULL,
		phone         TEXT NOT NULL DEFAULT '',
		delivery_date TIMESTAMPTZ NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		deposit       NUMERIC(12,2) NOT NULL DEFAULT 0,
		status        TEXT NOT NULL,
		created_by    TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id             UUID PRIMARY KEY,
		number         TEXT NOT NULL UNIQUE,
		receipt_number TEXT NOT NULL UNIQUE,
		payment_method TEXT NOT NULL,
		total          NUMERIC(12,2) NOT NULL,
		date           TIMESTAMPTZ NOT NULL,
		created_by     TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS sale_items (
		sale_id    UUID NOT NULL REFERENCES sales(id),
		sku        TEXT NOT NULL,
		name       TEXT NOT NULL,
		unit_price NUMERIC(12,2) NOT NULL,
		quantity   INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		name          TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sys_sequences (
		key         TEXT PRIMARY KEY,
		current_val BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS sys_audit (
		id                 UUID PRIMARY KEY,
		entity_type        TEXT NOT NULL,
		entity_key         TEXT NOT NULL,
		action             TEXT NOT NULL,
		user_id            TEXT NOT NULL DEFAULT '',
		changes            JSONB,
		changes_compressed BYTEA,
		compression_algo   TEXT NOT NULL DEFAULT 'none',
		created_at         TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_items_sale ON sale_items (sale_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_delivery ON orders (delivery_date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_entity ON sys_audit (entity_type, entity_key, created_at DESC)`,
}

// EnsureSchema creates all tables and indexes if they are missing.
func EnsureSchema(ctx context.Context, pool *Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
