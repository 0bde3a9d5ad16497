package storage

import "database/sql"

// schema holds the DDL for all tables owned by the service.
//
// stock_data rows are a composition under their company: the foreign key
// cascades deletes so removing a company removes its whole history. The
// (company_key, date) uniqueness makes the "latest per company" query
// deterministic.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS company (
		company_key TEXT PRIMARY KEY,
		name        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stock_data (
		id             BIGSERIAL PRIMARY KEY,
		company_key    TEXT NOT NULL REFERENCES company(company_key) ON DELETE CASCADE,
		date           DATE NOT NULL,
		price          DOUBLE PRECISION,
		max            DOUBLE PRECISION,
		min            DOUBLE PRECISION,
		average_price  DOUBLE PRECISION,
		price_change   DOUBLE PRECISION,
		volume         DOUBLE PRECISION,
		best_turnover  DOUBLE PRECISION,
		total_turnover DOUBLE PRECISION,
		UNIQUE (company_key, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_data_company_date ON stock_data (company_key, date DESC)`,
	`CREATE TABLE IF NOT EXISTS ingestion_log (
		company_key TEXT PRIMARY KEY,
		filename    TEXT NOT NULL,
		row_count   INT NOT NULL,
		ingested_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates all tables and indexes if they do not exist yet.
// Run before ingestion; the API modes assume the schema is in place.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
