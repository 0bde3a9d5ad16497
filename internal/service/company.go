package service

import (
	"context"

	"github.com/traderflow/mse-api/internal/domain/apperr"
	"github.com/traderflow/mse-api/internal/domain/dto"
	"github.com/traderflow/mse-api/internal/storage"
)

// CompanyService composes company master data with latest-price lookups.
// Keys are expected pre-normalized (uppercased) by the HTTP layer.
type CompanyService interface {
	ListCompanies(ctx context.Context) ([]dto.CompanySummary, error)
	GetCompany(ctx context.Context, key string) (*dto.CompanySummary, error)
}

type companyService struct {
	repo storage.CompanyRepository
}

func NewCompanyService(repo storage.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

// ListCompanies fetches all companies and the all-companies latest-price map
// in one pass each, then left-joins them in memory. Companies without price
// history get 0.0 defaults. Order is whatever the store returns.
func (s *companyService) ListCompanies(ctx context.Context) ([]dto.CompanySummary, error) {
	companies, err := s.repo.ListCompanies()
	if err != nil {
		return nil, apperr.Store(err, "failed to list companies")
	}

	latest, err := s.repo.LatestPrices()
	if err != nil {
		return nil, apperr.Store(err, "failed to fetch latest prices")
	}

	summaries := make([]dto.CompanySummary, 0, len(companies))
	for _, c := range companies {
		lp := latest[c.Key] // zero value when absent
		summaries = append(summaries, dto.CompanySummary{
			Name:        c.Name,
			Key:         c.Key,
			Price:       lp.Price,
			PriceChange: lp.PriceChange,
		})
	}
	return summaries, nil
}

// GetCompany returns one company's summary, failing with NotFound when the
// key has no matching row. A company without price history is not an error;
// both price fields default to 0.0.
func (s *companyService) GetCompany(ctx context.Context, key string) (*dto.CompanySummary, error) {
	company, err := s.repo.FindCompany(key)
	if err != nil {
		return nil, apperr.Store(err, "failed to fetch company %s", key)
	}
	if company == nil {
		return nil, apperr.NotFound("company %s not found", key)
	}

	lp, err := s.repo.LatestPriceFor(key)
	if err != nil {
		return nil, apperr.Store(err, "failed to fetch latest price for %s", key)
	}

	summary := &dto.CompanySummary{Name: company.Name, Key: company.Key}
	if lp != nil {
		summary.Price = lp.Price
		summary.PriceChange = lp.PriceChange
	}
	return summary, nil
}
