package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/traderflow/mse-api/internal/domain/models"
	"github.com/traderflow/mse-api/internal/storage"
)

// expectedHeaders enforces strict column ordering for MSE symbol-history
// exports. If the header doesn't match EXACTLY (order + count), ingestion
// must fail.
var expectedHeaders = []string{
	"Date",
	"Last trade price",
	"Max",
	"Min",
	"Avg.",
	"Price %chg.",
	"Volume",
	"Turnover in BEST in denars",
	"Total turnover in denars",
}

// rowDateLayout matches the exchange's M/D/YYYY export format.
const rowDateLayout = "1/2/2006"

// parseAndPersistFile opens, validates, parses, and persists one issuer's
// history file in batches.
//
// It fails on a header not matching the expected order/length and on
// unrecoverable I/O errors; it tolerates empty cells (zero values) and the
// exchange's comma thousands separators.
func parseAndPersistFile(ctx context.Context, path, key string, repo storage.CompanyRepository, batch int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // allow variable but we'll check explicitly

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return 0, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeaders[i] {
			return 0, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	buf := make([]models.PricePoint, 0, batch)
	lineNumber := 1 // header already read
	total := 0

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertPricePointsBatch(key, buf); err != nil {
			return fmt.Errorf("insert batch ending at line %d: %w", lineNumber, err)
		}
		total += len(buf)
		buf = buf[:0]
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		default:
		}

		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("read line %d: %w", lineNumber+1, err)
		}
		lineNumber++

		if len(record) != len(expectedHeaders) {
			return total, fmt.Errorf("line %d: expected %d columns, got %d", lineNumber, len(expectedHeaders), len(record))
		}

		point, err := parseRow(record)
		if err != nil {
			return total, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		buf = append(buf, point)
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}

	if err := flush(); err != nil {
		return total, err
	}
	return total, nil
}

func parseRow(record []string) (models.PricePoint, error) {
	var p models.PricePoint

	date, err := time.Parse(rowDateLayout, strings.TrimSpace(record[0]))
	if err != nil {
		return p, fmt.Errorf("parse date %q: %w", record[0], err)
	}
	p.Date = date

	fields := []*float64{
		&p.Price, &p.Max, &p.Min, &p.AveragePrice,
		&p.PriceChange, &p.Volume, &p.BestTurnover, &p.TotalTurnover,
	}
	for i, dst := range fields {
		v, err := parseNumber(record[i+1])
		if err != nil {
			return p, fmt.Errorf("parse %q (col %d): %w", record[i+1], i+2, err)
		}
		*dst = v
	}
	return p, nil
}

// parseNumber converts one numeric cell, stripping the exchange's comma
// thousands separators. Empty cells become 0.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseCompaniesFile reads a "Key,Name" seed file mapping company keys to
// display names.
func parseCompaniesFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != 2 || strings.TrimSpace(header[0]) != "Key" || strings.TrimSpace(header[1]) != "Name" {
		return nil, fmt.Errorf("invalid companies header: expected Key,Name")
	}

	names := make(map[string]string)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		key := strings.ToUpper(strings.TrimSpace(record[0]))
		if key == "" {
			continue
		}
		names[key] = strings.TrimSpace(record[1])
	}
	return names, nil
}
