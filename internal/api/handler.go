package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/traderflow/mse-api/internal/domain/apperr"
	"github.com/traderflow/mse-api/internal/domain/dto"
	"github.com/traderflow/mse-api/internal/middleware"
	"github.com/traderflow/mse-api/internal/service"
)

const (
	defaultPage = 0
	defaultSize = 10
	maxPageSize = 1000
	dateLayout  = "2006-01-02"
)

// Predictor fetches the predicted next-day price for a company key.
type Predictor interface {
	Predict(ctx context.Context, key string) (dto.Prediction, error)
}

// IndicatorFetcher fetches technical-indicator readings for a (key, indicator) pair.
type IndicatorFetcher interface {
	GetIndicators(ctx context.Context, key, indicator string) ([]dto.IndicatorReading, error)
}

// SentimentFetcher fetches aggregated news sentiment for a company key.
type SentimentFetcher interface {
	Sentiment(ctx context.Context, key string) (dto.NewsSentiment, error)
}

// Handler provides HTTP handlers for the company endpoints.
//
// Responsibilities:
//   - Normalize the path-supplied company key (trim + uppercase)
//   - Validate query parameters
//   - Delegate to exactly one service or upstream client per route
//   - Translate typed errors into status codes and dto.ErrorResponse bodies
type Handler struct {
	companies service.CompanyService
	history   service.HistoryService
	predictor Predictor
	indicator IndicatorFetcher
	sentiment SentimentFetcher
}

func NewHandler(
	companies service.CompanyService,
	history service.HistoryService,
	predictor Predictor,
	indicator IndicatorFetcher,
	sentiment SentimentFetcher,
) *Handler {
	return &Handler{
		companies: companies,
		history:   history,
		predictor: predictor,
		indicator: indicator,
		sentiment: sentiment,
	}
}

// companyKey returns the path-supplied key normalized for case-insensitive lookup.
func companyKey(c *gin.Context) string {
	return strings.ToUpper(strings.TrimSpace(c.Param("key")))
}

// respondError maps a typed error to its status code and structured body.
func respondError(c *gin.Context, err error) {
	var e *apperr.Error
	if errors.As(err, &e) {
		c.JSON(middleware.StatusForError(err), dto.NewErrorResponse(e.Message, e.Err))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal error", err))
}

// ListCompanies godoc
// @Summary      List companies
// @Description  Returns every company with its latest price and price change
// @Tags         companies
// @Produce      json
// @Success      200  {array}   dto.CompanySummary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /companies [get]
func (h *Handler) ListCompanies(c *gin.Context) {
	summaries, err := h.companies.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetCompany godoc
// @Summary      Get one company
// @Description  Returns a company's master data with its latest price
// @Tags         companies
// @Produce      json
// @Param        key  path      string  true  "Company key"  example(ALK)
// @Success      200  {object}  dto.CompanySummary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /companies/{key} [get]
func (h *Handler) GetCompany(c *gin.Context) {
	summary, err := h.companies.GetCompany(c.Request.Context(), companyKey(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetPriceHistory godoc
// @Summary      Get price history
// @Description  Returns one date-descending page of a company's price history
// @Tags         companies
// @Produce      json
// @Param        key        path      string  true   "Company key"  example(ALK)
// @Param        page       query     int     false  "Zero-based page number (default 0)"
// @Param        size       query     int     false  "Page size (default 10, max 1000)"
// @Param        startDate  query     string  false  "Inclusive lower bound, YYYY-MM-DD"
// @Param        endDate    query     string  false  "Inclusive upper bound, YYYY-MM-DD"
// @Success      200  {object}  dto.PriceHistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /companies/{key}/price-history [get]
func (h *Handler) GetPriceHistory(c *gin.Context) {
	page, size, err := parsePagination(c)
	if err != nil {
		respondError(c, err)
		return
	}

	start, err := parseDate(c, "startDate")
	if err != nil {
		respondError(c, err)
		return
	}
	end, err := parseDate(c, "endDate")
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.history.GetHistory(c.Request.Context(), companyKey(c), start, end, page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Predict godoc
// @Summary      Predict next-day price
// @Description  Proxies the prediction upstream for a company key
// @Tags         companies
// @Produce      json
// @Param        key  path      string  true  "Company key"  example(ALK)
// @Success      200  {object}  dto.Prediction
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /companies/{key}/predict [get]
func (h *Handler) Predict(c *gin.Context) {
	prediction, err := h.predictor.Predict(c.Request.Context(), companyKey(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prediction)
}

// GetIndicators godoc
// @Summary      Get technical indicators
// @Description  Proxies the indicators upstream for a (key, indicator) pair
// @Tags         companies
// @Produce      json
// @Param        key        path      string  true  "Company key"     example(ALK)
// @Param        indicator  path      string  true  "Indicator name"  example(RSI)
// @Success      200  {array}   dto.IndicatorReading
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /companies/{key}/indicators/{indicator} [get]
func (h *Handler) GetIndicators(c *gin.Context) {
	indicator := strings.TrimSpace(c.Param("indicator"))
	if indicator == "" {
		respondError(c, apperr.Validation("indicator is required"))
		return
	}

	readings, err := h.indicator.GetIndicators(c.Request.Context(), companyKey(c), indicator)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, readings)
}

// GetNewsSentiment godoc
// @Summary      Get news sentiment
// @Description  Proxies the news-sentiment upstream for a company key
// @Tags         companies
// @Produce      json
// @Param        key  path      string  true  "Company key"  example(ALK)
// @Success      200  {object}  dto.NewsSentiment
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /companies/{key}/news/sentiment [get]
func (h *Handler) GetNewsSentiment(c *gin.Context) {
	sentiment, err := h.sentiment.Sentiment(c.Request.Context(), companyKey(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sentiment)
}

func parsePagination(c *gin.Context) (page, size int, err error) {
	page = defaultPage
	if s := c.Query("page"); s != "" {
		page, err = strconv.Atoi(s)
		if err != nil || page < 0 {
			return 0, 0, apperr.Validation("page must be a non-negative integer")
		}
	}

	size = defaultSize
	if s := c.Query("size"); s != "" {
		size, err = strconv.Atoi(s)
		if err != nil || size < 1 || size > maxPageSize {
			return 0, 0, apperr.Validation("size must be between 1 and %d", maxPageSize)
		}
	}
	return page, size, nil
}

func parseDate(c *gin.Context, name string) (*time.Time, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, apperr.Validation("invalid %s format, expected YYYY-MM-DD", name)
	}
	return &parsed, nil
}
