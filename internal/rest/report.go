package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"myRecoMarket/domain"
	"myRecoMarket/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type RFMService interface {
	GetCustomerSegments(ctx context.Context) ([]domain.RFMRecord, error)
	GetSegmentSummary(ctx context.Context) ([]domain.SegmentSummary, error)
}

type BasketService interface {
	GetTopRules(ctx context.Context, query domain.RuleQuery) ([]domain.AssociationRule, error)
}

type EDAService interface {
	GetOverview(ctx context.Context, n int) (domain.EDAOverview, error)
}

type ReportHandler struct {
	rfmService    RFMService
	basketService BasketService
	edaService    EDAService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewReportHandler(rfmService RFMService, basketService BasketService, edaService EDAService, timeout time.Duration) *ReportHandler {
	return &ReportHandler{
		rfmService:    rfmService,
		basketService: basketService,
		edaService:    edaService,
		validator:     validator.New(),
		timeout:       timeout,
	}
}

type RulesQuery struct {
	N             int     `query:"n" validate:"gte=0"`
	MinConfidence float64 `query:"min_confidence" validate:"gte=0,lte=1"`
	MinLift       float64 `query:"min_lift" validate:"gte=0"`
}

type EDAQuery struct {
	N int `query:"n" validate:"gte=0"`
}

// GET /api/v1/reports/rfm
func (h *ReportHandler) GetCustomerSegments(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	records, err := h.rfmService.GetCustomerSegments(ctx)
	if err != nil {
		return h.segmentationError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "successfully segment customers",
		"customers": records,
	})
}

// GET /api/v1/reports/rfm/segments
func (h *ReportHandler) GetSegmentSummary(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	summary, err := h.rfmService.GetSegmentSummary(ctx)
	if err != nil {
		return h.segmentationError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully summarize segments",
		"segments": summary,
	})
}

func (h *ReportHandler) segmentationError(c echo.Context, err error) error {
	var binErr *domain.BinningError
	if errors.As(err, &binErr) {
		return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
	}

	logger.Error("Failed to segment customers", err)
	return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
}

// GET /api/v1/reports/rules?n=10&min_confidence=0.2&min_lift=1
func (h *ReportHandler) GetTopRules(c echo.Context) error {
	var q RulesQuery
	if err := c.Bind(&q); err != nil {
		logger.Error("Failed to bind rules query", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid query parameters"})
	}

	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rules, err := h.basketService.GetTopRules(ctx, domain.RuleQuery{
		N:             q.N,
		MinConfidence: q.MinConfidence,
		MinLift:       q.MinLift,
	})
	if err != nil {
		logger.Error("Failed to rank rules", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get top rules",
		"rules":   rules,
	})
}

// GET /api/v1/reports/eda?n=10
func (h *ReportHandler) GetEDAOverview(c echo.Context) error {
	var q EDAQuery
	if err := c.Bind(&q); err != nil {
		logger.Error("Failed to bind eda query", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid query parameters"})
	}

	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	overview, err := h.edaService.GetOverview(ctx, q.N)
	if err != nil {
		logger.Error("Failed to build eda overview", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get eda overview",
		"overview": overview,
	})
}
