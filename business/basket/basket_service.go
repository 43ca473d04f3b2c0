package basket

import (
	"context"
	"fmt"
	"sort"

	"myRecoMarket/domain"
	"myRecoMarket/pkg/logger"
)

const DefaultTopRules = 10

type basketService struct {
	rules []domain.AssociationRule
}

func NewBasketService(rules []domain.AssociationRule) *basketService {
	return &basketService{
		rules: rules,
	}
}

func (s *basketService) GetTopRules(ctx context.Context, query domain.RuleQuery) ([]domain.AssociationRule, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get top rules")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if query.N <= 0 {
		query.N = DefaultTopRules
	}

	return FilterRules(s.rules, query), nil
}

// TopRules returns the n most confident rules. Rules with equal confidence
// keep their input order. The input slice is not modified.
func TopRules(rules []domain.AssociationRule, n int) []domain.AssociationRule {
	if n <= 0 {
		return []domain.AssociationRule{}
	}

	sorted := make([]domain.AssociationRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// FilterRules drops rules under the confidence and lift thresholds and ranks
// the rest with TopRules.
func FilterRules(rules []domain.AssociationRule, query domain.RuleQuery) []domain.AssociationRule {
	kept := make([]domain.AssociationRule, 0, len(rules))
	for _, r := range rules {
		if r.Confidence < query.MinConfidence || r.Lift < query.MinLift {
			continue
		}
		kept = append(kept, r)
	}

	return TopRules(kept, query.N)
}
