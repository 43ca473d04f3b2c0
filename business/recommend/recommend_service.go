package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"myRecoMarket/domain"
	"myRecoMarket/pkg/metrics"
)

type recommendService struct {
	scores  *domain.ScoreMatrix
	catalog domain.ProductCatalog
}

// NewRecommendService wraps the read-only score matrix and product catalog.
// Both are shared by every request and must not be mutated after startup.
func NewRecommendService(scores *domain.ScoreMatrix, catalog domain.ProductCatalog) *recommendService {
	return &recommendService{
		scores:  scores,
		catalog: catalog,
	}
}

func (s *recommendService) Recommend(ctx context.Context, userID string, topK int) ([]domain.Recommendation, error) {
	start := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	recs, err := TopK(s.scores, s.catalog, userID, topK)
	switch {
	case err == nil:
		metrics.RecommendRequests.WithLabelValues(metrics.OutcomeOK).Inc()
	case errors.Is(err, domain.ErrUserNotFound):
		metrics.RecommendRequests.WithLabelValues(metrics.OutcomeUserNotFound).Inc()
	default:
		metrics.RecommendRequests.WithLabelValues(metrics.OutcomeInvalid).Inc()
	}

	return recs, err
}

// TopK returns the topK highest scored products of a user joined with the
// catalog. Equal scores keep the column order of the matrix. Products without
// catalog metadata are dropped after the cut, so fewer than topK may come back.
func TopK(scores *domain.ScoreMatrix, catalog domain.ProductCatalog, userID string, topK int) ([]domain.Recommendation, error) {
	if topK < 1 {
		return nil, domain.ErrInvalidTopK
	}

	row, ok := scores.Row(userID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	order := make([]int, len(row))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return row[order[a]] > row[order[b]]
	})

	if topK < len(order) {
		order = order[:topK]
	}

	recs := make([]domain.Recommendation, 0, len(order))
	for _, col := range order {
		productID := scores.ProductIDs[col]
		meta, ok := catalog[productID]
		if !ok {
			continue
		}
		recs = append(recs, domain.Recommendation{
			ProductID: productID,
			Category:  meta.Category,
			Score:     row[col],
		})
	}

	return recs, nil
}
