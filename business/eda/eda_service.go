package eda

import (
	"context"
	"fmt"
	"sort"
	"time"

	"myRecoMarket/domain"
	"myRecoMarket/pkg/logger"
)

const DefaultTopCategories = 10

type edaService struct {
	transactions []domain.Transaction
	cities       []domain.CityRecord
}

// NewEDAService reports over the transaction log and the optional city
// table; cities may be nil.
func NewEDAService(transactions []domain.Transaction, cities []domain.CityRecord) *edaService {
	return &edaService{
		transactions: transactions,
		cities:       cities,
	}
}

func (s *edaService) GetOverview(ctx context.Context, n int) (domain.EDAOverview, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when building eda overview")
		return domain.EDAOverview{}, fmt.Errorf("context error: %w", err)
	}

	return Overview(s.transactions, s.cities, n), nil
}

func Overview(transactions []domain.Transaction, cities []domain.CityRecord, n int) domain.EDAOverview {
	if n <= 0 {
		n = DefaultTopCategories
	}

	return domain.EDAOverview{
		TopCategoriesByCount:   TopCategoriesByCount(transactions, n),
		TopCategoriesByUnits:   TopCategoriesByUnits(transactions, n),
		TopCategoriesByAvgSale: TopCategoriesByAvgSale(transactions, n),
		TopCitiesByCount:       TopCitiesByCount(cities, n),
		MonthlySales:           MonthlySalesTotals(transactions),
	}
}

// TopCategoriesByCount counts transactions per category.
func TopCategoriesByCount(transactions []domain.Transaction, n int) []domain.CategoryStat {
	counts := make(map[string]float64)
	for _, t := range transactions {
		counts[t.Category]++
	}
	return topN(counts, n)
}

// TopCategoriesByUnits sums units sold per category.
func TopCategoriesByUnits(transactions []domain.Transaction, n int) []domain.CategoryStat {
	units := make(map[string]float64)
	for _, t := range transactions {
		units[t.Category] += t.Units
	}
	return topN(units, n)
}

// TopCategoriesByAvgSale averages the gross sale amount per transaction in each category.
func TopCategoriesByAvgSale(transactions []domain.Transaction, n int) []domain.CategoryStat {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, t := range transactions {
		sums[t.Category] += t.GrossSaleAmount
		counts[t.Category]++
	}

	avg := make(map[string]float64, len(sums))
	for c, sum := range sums {
		avg[c] = sum / float64(counts[c])
	}
	return topN(avg, n)
}

// TopCitiesByCount counts rows of the city table per city. Rows without a
// city are ignored.
func TopCitiesByCount(cities []domain.CityRecord, n int) []domain.CategoryStat {
	counts := make(map[string]float64)
	for _, c := range cities {
		if c.City == "" {
			continue
		}
		counts[c.City]++
	}
	return topN(counts, n)
}

// MonthlySalesTotals sums gross sales per calendar month, oldest month first.
// Every month between the first and the last sale is present, with a zero
// total when nothing was sold.
func MonthlySalesTotals(transactions []domain.Transaction) []domain.MonthlySales {
	totals := make(map[string]float64)
	var first, last time.Time
	for _, t := range transactions {
		if t.Date.IsZero() {
			continue
		}
		month := time.Date(t.Date.Year(), t.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		if first.IsZero() || month.Before(first) {
			first = month
		}
		if month.After(last) {
			last = month
		}
		totals[month.Format("2006-01")] += t.GrossSaleAmount
	}

	out := []domain.MonthlySales{}
	if first.IsZero() {
		return out
	}
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		key := m.Format("2006-01")
		out = append(out, domain.MonthlySales{Month: key, Total: totals[key]})
	}
	return out
}

func topN(values map[string]float64, n int) []domain.CategoryStat {
	stats := make([]domain.CategoryStat, 0, len(values))
	for c, v := range values {
		stats = append(stats, domain.CategoryStat{Category: c, Value: v})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Value != stats[j].Value {
			return stats[i].Value > stats[j].Value
		}
		return stats[i].Category < stats[j].Category
	})

	if n > 0 && n < len(stats) {
		stats = stats[:n]
	}
	return stats
}
