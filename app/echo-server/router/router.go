package router

import (
	"myRecoMarket/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	api.POST("/recommend", handler.Recommend)
}

func SetupReportRoutes(api *echo.Group, handler *rest.ReportHandler) {
	reports := api.Group("/reports")

	reports.GET("/rfm", handler.GetCustomerSegments)
	reports.GET("/rfm/segments", handler.GetSegmentSummary)
	reports.GET("/rules", handler.GetTopRules)
	reports.GET("/eda", handler.GetEDAOverview)
}

func SetupHealthRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/healthz", handler.Health)
}
