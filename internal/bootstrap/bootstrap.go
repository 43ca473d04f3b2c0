package bootstrap

import (
	"context"
	"fmt"

	"myRecoMarket/domain"
	"myRecoMarket/pkg/logger"
	"myRecoMarket/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

type ScoreLoader interface {
	Load(ctx context.Context) (*domain.ScoreMatrix, error)
}

type TransactionFinder interface {
	FindAll(ctx context.Context) ([]domain.Transaction, error)
}

type RuleFinder interface {
	FindAll(ctx context.Context) ([]domain.AssociationRule, error)
}

type CityFinder interface {
	FindAll(ctx context.Context) ([]domain.CityRecord, error)
}

// Dataset is everything the services read. It is built once and never
// mutated afterwards, so it can be shared across request goroutines.
type Dataset struct {
	Scores       *domain.ScoreMatrix
	Catalog      domain.ProductCatalog
	Transactions []domain.Transaction
	Rules        []domain.AssociationRule
	Cities       []domain.CityRecord
}

type Sources struct {
	Scores       ScoreLoader
	Transactions TransactionFinder
	Rules        RuleFinder
	// Cities is optional.
	Cities CityFinder
	// Close releases whatever backs the sources (a database pool). It runs
	// once loading is over, whether it succeeded or not.
	Close func() error
}

// Load reads the sources concurrently and fails on the first error.
func Load(ctx context.Context, src Sources) (*Dataset, error) {
	if src.Close != nil {
		defer func() {
			if err := src.Close(); err != nil {
				logger.Error("Failed to release dataset sources", err)
			}
		}()
	}

	var ds Dataset

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		scores, err := src.Scores.Load(gctx)
		if err != nil {
			return fmt.Errorf("failed to load scores: %w", err)
		}
		ds.Scores = scores
		return nil
	})

	g.Go(func() error {
		transactions, err := src.Transactions.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		ds.Transactions = transactions
		return nil
	})

	g.Go(func() error {
		rules, err := src.Rules.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load rules: %w", err)
		}
		ds.Rules = rules
		return nil
	})

	if src.Cities != nil {
		g.Go(func() error {
			cities, err := src.Cities.FindAll(gctx)
			if err != nil {
				return fmt.Errorf("failed to load cities: %w", err)
			}
			ds.Cities = cities
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds.Catalog = domain.NewProductCatalog(ds.Transactions)

	metrics.DatasetSize.WithLabelValues("users").Set(float64(ds.Scores.NumUsers()))
	metrics.DatasetSize.WithLabelValues("products").Set(float64(len(ds.Catalog)))
	metrics.DatasetSize.WithLabelValues("transactions").Set(float64(len(ds.Transactions)))
	metrics.DatasetSize.WithLabelValues("rules").Set(float64(len(ds.Rules)))
	metrics.DatasetSize.WithLabelValues("cities").Set(float64(len(ds.Cities)))

	logger.Info("Dataset loaded",
		"users", ds.Scores.NumUsers(),
		"scored_products", ds.Scores.NumProducts(),
		"catalog_products", len(ds.Catalog),
		"transactions", len(ds.Transactions),
		"rules", len(ds.Rules),
		"cities", len(ds.Cities),
	)

	return &ds, nil
}
