package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myRecoMarket/app/echo-server/metrics"
	"myRecoMarket/app/echo-server/router"
	"myRecoMarket/business/basket"
	"myRecoMarket/business/eda"
	"myRecoMarket/business/recommend"
	"myRecoMarket/business/rfm"
	"myRecoMarket/internal/bootstrap"
	"myRecoMarket/internal/middleware"
	"myRecoMarket/internal/repository/artifact"
	"myRecoMarket/internal/repository/csvfile"
	psqlRepo "myRecoMarket/internal/repository/postgres"
	"myRecoMarket/internal/rest"
	"myRecoMarket/pkg/config"
	"myRecoMarket/pkg/database"
	"myRecoMarket/pkg/logger"
	serviceMetrics "myRecoMarket/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version, "data_source", cfg.Data.Source)

	metrics.Init()
	serviceMetrics.Init()

	// Init repo
	sources := bootstrap.Sources{
		Scores: artifact.NewScoreRepository(cfg.Data.ScoresPath),
		Rules:  csvfile.NewRuleRepository(cfg.Data.RulesPath),
	}

	if cfg.Data.CitiesPath != "" {
		sources.Cities = csvfile.NewCityRepository(cfg.Data.CitiesPath)
	}

	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		logger.Info("Database connected successfully")
		sources.Transactions = psqlRepo.NewTransactionRepository(db)
		// transactions stay in memory, the pool is released once the load is over
		sources.Close = func() error {
			return database.ClosePostgres(db)
		}
	default:
		sources.Transactions = csvfile.NewTransactionRepository(cfg.Data.TransactionsPath)
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), time.Minute)
	dataset, err := bootstrap.Load(loadCtx, sources)
	cancelLoad()
	if err != nil {
		logger.Fatal("Failed to load dataset", "error", err)
	}

	// Init service
	recommendService := recommend.NewRecommendService(dataset.Scores, dataset.Catalog)
	rfmService := rfm.NewRFMService(dataset.Transactions)
	basketService := basket.NewBasketService(dataset.Rules)
	edaService := eda.NewEDAService(dataset.Transactions, dataset.Cities)

	// Init handler
	recommendHandler := rest.NewRecommendHandler(recommendService, cfg.Server.RequestTimeout)
	reportHandler := rest.NewReportHandler(rfmService, basketService, edaService, cfg.Server.RequestTimeout)
	healthHandler := rest.NewHealthHandler(cfg.App.Version)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	router.SetupHealthRoutes(e, healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	router.SetupRecommendRoutes(api, recommendHandler)
	router.SetupReportRoutes(api, reportHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
