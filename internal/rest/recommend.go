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

const defaultTopK = 5

type RecommendService interface {
	Recommend(ctx context.Context, userID string, topK int) ([]domain.Recommendation, error)
}

type RecommendHandler struct {
	recommendService RecommendService
	validator        *validator.Validate
	timeout          time.Duration
}

func NewRecommendHandler(recommendService RecommendService, timeout time.Duration) *RecommendHandler {
	return &RecommendHandler{
		recommendService: recommendService,
		validator:        validator.New(),
		timeout:          timeout,
	}
}

type RecommendRequest struct {
	UserID string `json:"user_id" validate:"required"`
	TopK   *int   `json:"top_k" validate:"omitempty,min=1"`
}

type RecommendResponse struct {
	UserID              string                  `json:"user_id"`
	TopK                int                     `json:"top_k"`
	RecommendedProducts []domain.Recommendation `json:"recommended_products"`
}

// POST /api/v1/recommend
func (h *RecommendHandler) Recommend(c echo.Context) error {
	var req RecommendRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid request body"})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate recommend request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	topK := defaultTopK
	if req.TopK != nil {
		topK = *req.TopK
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.recommendService.Recommend(ctx, req.UserID, topK)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidTopK):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to recommend products", "user_id", req.UserID, err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, RecommendResponse{
		UserID:              req.UserID,
		TopK:                topK,
		RecommendedProducts: recs,
	})
}
