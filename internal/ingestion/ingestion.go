// Package ingestion loads MSE symbol-history CSV exports into Postgres.
//
// A directory holds one CSV per issuer, named <KEY>.csv, plus an optional
// companies.csv (Key,Name) seeding display names. Files are processed
// concurrently with batched COPY inserts, and an ingestion log makes reruns
// idempotent unless forced.
package ingestion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/traderflow/mse-api/internal/logger"
	"github.com/traderflow/mse-api/internal/storage"
)

const (
	companiesFile    = "companies.csv"
	defaultBatchSize = 5000
	maxParallelFiles = 8
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.CompanyRepository {
	return storage.NewCompanyRepository(db)
}

// ProcessDirectory ingests every issuer CSV in dir.
//
// Behavior:
//   - companies.csv (if present) is applied first, upserting company names.
//   - Every other *.csv is one issuer's full history; the company key is the
//     uppercased file basename. Unknown companies are created with name = key.
//   - Already-ingested keys are skipped unless force is set; force deletes the
//     issuer's existing rows first.
//   - Files are processed concurrently (bounded by parallel, clamped to
//     1..maxParallelFiles, default min(maxParallelFiles, NumCPU)).
//
// Returns the first error encountered (siblings are cancelled).
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, parallel int, force bool) error {
	repo := repoCtor(db)

	entries, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}

	var files []string
	for _, f := range entries {
		if filepath.Base(f) == companiesFile {
			continue
		}
		files = append(files, f)
	}
	sort.Strings(files)

	if len(files) == 0 {
		return fmt.Errorf("no issuer files found in %s", dir)
	}

	// Seed company names before touching history so the FK is satisfied.
	// The seed file is optional, but a malformed one is an error, not a skip.
	seedPath := filepath.Join(dir, companiesFile)
	names, err := parseCompaniesFile(seedPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.L().Debug().Str("path", seedPath).Msg("no company seed file")
	case err != nil:
		return fmt.Errorf("parse %s: %w", companiesFile, err)
	default:
		for key, name := range names {
			if err := repo.UpsertCompany(key, name); err != nil {
				return fmt.Errorf("seed company %s: %w", key, err)
			}
		}
		logger.L().Info().Int("companies", len(names)).Msg("company names seeded")
	}

	maxParallel := maxParallelFiles
	if parallel > 0 {
		if parallel > maxParallelFiles {
			parallel = maxParallelFiles
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("files", len(files)).Int("max_parallel", maxParallel).Str("dir", dir).Msg("ingestion start")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, file := range files {
		idx := i
		f := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			base := filepath.Base(f)
			key := strings.ToUpper(strings.TrimSuffix(base, filepath.Ext(base)))

			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("key", key).Msg("file start")

			exists, err := repo.HasIngestionFor(key)
			if err != nil {
				return fmt.Errorf("file %s: check ingestion log: %w", f, err)
			}
			if exists && !force {
				logger.L().Info().Str("key", key).Bool("skipped", true).Msg("already ingested")
				return nil
			}
			if exists && force {
				if err := repo.DeletePricePoints(key); err != nil {
					return fmt.Errorf("file %s: delete existing: %w", f, err)
				}
			}

			// Companies not present in the seed file still need a master row.
			company, err := repo.FindCompany(key)
			if err != nil {
				return fmt.Errorf("file %s: lookup company: %w", f, err)
			}
			if company == nil {
				if err := repo.UpsertCompany(key, key); err != nil {
					return fmt.Errorf("file %s: create company: %w", f, err)
				}
			}

			total, err := parseAndPersistFile(gctx, f, key, repo, defaultBatchSize)
			if err != nil {
				logger.L().Error().Str("key", key).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}
			if err := repo.UpsertIngestionLog(key, base, total); err != nil {
				return fmt.Errorf("file %s: upsert ingestion log: %w", f, err)
			}

			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("key", key).
				Int("rows", total).Dur("elapsed", time.Since(start)).Bool("force", force).Msg("file done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.L().Info().Int("files", len(files)).Msg("ingestion finished")
	return nil
}
