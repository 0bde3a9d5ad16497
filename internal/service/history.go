package service

import (
	"context"
	"time"

	"github.com/traderflow/mse-api/internal/domain/apperr"
	"github.com/traderflow/mse-api/internal/domain/dto"
	"github.com/traderflow/mse-api/internal/domain/models"
	"github.com/traderflow/mse-api/internal/storage"
)

// Sentinel bounds used when the caller omits startDate/endDate.
var (
	minHistoryDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxHistoryDate = time.Date(2100, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// HistoryService serves paginated, date-bounded price history.
type HistoryService interface {
	GetHistory(ctx context.Context, key string, start, end *time.Time, page, size int) (*dto.PriceHistoryResponse, error)
}

type historyService struct {
	repo storage.CompanyRepository
}

func NewHistoryService(repo storage.CompanyRepository) HistoryService {
	return &historyService{repo: repo}
}

// GetHistory returns one zero-based page of a company's price history,
// date-descending, bounded to [start, end] inclusive.
//
// Omitted dates default to 1900-01-01 / 2100-12-31. A start after end yields
// an empty page, not an error. LatestPrice is the first (most recent) point's
// price within the returned page, 0.0 when the page is empty.
func (s *historyService) GetHistory(ctx context.Context, key string, start, end *time.Time, page, size int) (*dto.PriceHistoryResponse, error) {
	company, err := s.repo.FindCompany(key)
	if err != nil {
		return nil, apperr.Store(err, "failed to fetch company %s", key)
	}
	if company == nil {
		return nil, apperr.NotFound("company %s not found", key)
	}

	from := minHistoryDate
	if start != nil {
		from = *start
	}
	to := maxHistoryDate
	if end != nil {
		to = *end
	}

	points, total, err := s.repo.PriceHistory(key, from, to, page, size)
	if err != nil {
		return nil, apperr.Store(err, "failed to fetch price history for %s", key)
	}

	resp := &dto.PriceHistoryResponse{
		Key:           company.Key,
		Name:          company.Name,
		PricePoints:   points,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages(total, size),
	}
	if len(points) > 0 {
		resp.LatestPrice = points[0].Price
	}
	if resp.PricePoints == nil {
		// empty page marshals as [] rather than null
		resp.PricePoints = []models.PricePoint{}
	}
	return resp, nil
}

func totalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
