package storage

import (
	"database/sql"
	"time"

	"github.com/traderflow/mse-api/internal/domain/models"

	pq "github.com/lib/pq"
)

// CompanyRepository defines the contract for DB operations.
//
// Point lookups return (nil, nil) when no row matches; callers decide whether
// that is a not-found condition or a default-to-zero condition.
type CompanyRepository interface {
	ListCompanies() ([]models.Company, error)
	FindCompany(key string) (*models.Company, error)
	LatestPrices() (map[string]models.LatestPrice, error)
	LatestPriceFor(key string) (*models.LatestPrice, error)
	PriceHistory(key string, start, end time.Time, page, size int) ([]models.PricePoint, int64, error)

	UpsertCompany(key, name string) error
	InsertPricePointsBatch(key string, points []models.PricePoint) error
	DeleteCompany(key string) error
	DeletePricePoints(key string) error

	HasIngestionFor(key string) (bool, error)
	UpsertIngestionLog(key, filename string, rowCount int) error
}

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// ListCompanies returns all company rows in store order (no sorting is applied).
func (r *companyRepository) ListCompanies() ([]models.Company, error) {
	rows, err := r.db.Query(`SELECT company_key, name FROM company`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var companies []models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.Key, &c.Name); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// FindCompany returns the company with the given key, or (nil, nil) if absent.
func (r *companyRepository) FindCompany(key string) (*models.Company, error) {
	var c models.Company
	err := r.db.QueryRow(`SELECT company_key, name FROM company WHERE company_key = $1`, key).
		Scan(&c.Key, &c.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// LatestPrices returns, for every company with at least one price point, the
// price and percent change of its most recent point. Companies with no history
// are absent from the map.
func (r *companyRepository) LatestPrices() (map[string]models.LatestPrice, error) {
	rows, err := r.db.Query(`
		SELECT s.company_key, s.price, s.price_change
		FROM stock_data s
		INNER JOIN (
			SELECT company_key, MAX(date) AS latest_date
			FROM stock_data
			GROUP BY company_key
		) latest
		ON s.company_key = latest.company_key AND s.date = latest.latest_date
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]models.LatestPrice)
	for rows.Next() {
		var key string
		var price, change sql.NullFloat64
		if err := rows.Scan(&key, &price, &change); err != nil {
			return nil, err
		}
		out[key] = models.LatestPrice{Price: price.Float64, PriceChange: change.Float64}
	}
	return out, rows.Err()
}

// LatestPriceFor applies the same latest-date logic scoped to one company.
// Returns (nil, nil) when the company has no price points.
func (r *companyRepository) LatestPriceFor(key string) (*models.LatestPrice, error) {
	var price, change sql.NullFloat64
	err := r.db.QueryRow(`
		SELECT COALESCE(s.price, 0.0), COALESCE(s.price_change, 0.0)
		FROM stock_data s
		INNER JOIN (
			SELECT company_key, MAX(date) AS latest_date
			FROM stock_data
			WHERE company_key = $1
			GROUP BY company_key
		) latest
		ON s.company_key = latest.company_key AND s.date = latest.latest_date
	`, key).Scan(&price, &change)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &models.LatestPrice{Price: price.Float64, PriceChange: change.Float64}, nil
}

// PriceHistory returns one zero-based page of a company's price points within
// [start, end] inclusive, ordered by date descending, plus the total number of
// matching rows for pagination metadata.
func (r *companyRepository) PriceHistory(key string, start, end time.Time, page, size int) ([]models.PricePoint, int64, error) {
	var total int64
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM stock_data
		WHERE company_key = $1 AND date >= $2 AND date <= $3
	`, key, start, end).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(`
		SELECT date, price, max, min, average_price, price_change, volume, best_turnover, total_turnover
		FROM stock_data
		WHERE company_key = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC
		LIMIT $4 OFFSET $5
	`, key, start, end, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	var points []models.PricePoint
	for rows.Next() {
		var p models.PricePoint
		var price, max, min, avg, change, volume, best, totalT sql.NullFloat64
		if err := rows.Scan(&p.Date, &price, &max, &min, &avg, &change, &volume, &best, &totalT); err != nil {
			return nil, 0, err
		}
		p.Price = price.Float64
		p.Max = max.Float64
		p.Min = min.Float64
		p.AveragePrice = avg.Float64
		p.PriceChange = change.Float64
		p.Volume = volume.Float64
		p.BestTurnover = best.Float64
		p.TotalTurnover = totalT.Float64
		points = append(points, p)
	}
	return points, total, rows.Err()
}

// UpsertCompany inserts a company row or updates its display name.
func (r *companyRepository) UpsertCompany(key, name string) error {
	_, err := r.db.Exec(`
		INSERT INTO company (company_key, name)
		VALUES ($1, $2)
		ON CONFLICT (company_key)
		DO UPDATE SET name = EXCLUDED.name
	`, key, name)
	return err
}

// InsertPricePointsBatch inserts price points for one company in a single
// transaction using COPY.
func (r *companyRepository) InsertPricePointsBatch(key string, points []models.PricePoint) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"stock_data",
		"company_key",
		"date",
		"price",
		"max",
		"min",
		"average_price",
		"price_change",
		"volume",
		"best_turnover",
		"total_turnover",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, p := range points {
		if _, err := stmt.Exec(
			key,
			p.Date,
			p.Price,
			p.Max,
			p.Min,
			p.AveragePrice,
			p.PriceChange,
			p.Volume,
			p.BestTurnover,
			p.TotalTurnover,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// DeleteCompany removes a company row; the schema cascades the delete to all
// of its stock_data rows.
func (r *companyRepository) DeleteCompany(key string) error {
	_, err := r.db.Exec(`DELETE FROM company WHERE company_key = $1`, key)
	return err
}

// DeletePricePoints removes all price history for a company, keeping the
// company row itself.
func (r *companyRepository) DeletePricePoints(key string) error {
	_, err := r.db.Exec(`DELETE FROM stock_data WHERE company_key = $1`, key)
	return err
}

// HasIngestionFor checks if an ingestion was already recorded for a company key.
func (r *companyRepository) HasIngestionFor(key string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM ingestion_log WHERE company_key = $1)`, key).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertIngestionLog records (or updates) an ingestion entry for a company key.
func (r *companyRepository) UpsertIngestionLog(key, filename string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO ingestion_log (company_key, filename, row_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (company_key)
		DO UPDATE SET filename = EXCLUDED.filename,
					  row_count = EXCLUDED.row_count,
					  ingested_at = NOW()
	`, key, filename, rowCount)
	return err
}
