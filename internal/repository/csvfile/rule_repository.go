package csvfile

import (
	"context"
	"fmt"

	"myRecoMarket/business/basket"
	"myRecoMarket/domain"
)

// Column names written by the association rule miner.
const (
	colAntecedents       = "antecedents"
	colConsequents       = "consequents"
	colAntecedentSupport = "antecedent support"
	colConsequentSupport = "consequent support"
	colSupport           = "support"
	colConfidence        = "confidence"
	colLift              = "lift"
	colLeverage          = "leverage"
)

type RuleRepository struct {
	path string
}

func NewRuleRepository(path string) *RuleRepository {
	return &RuleRepository{
		path: path,
	}
}

// FindAll loads the precomputed rule table. Item sets are normalized to plain
// item lists while loading.
func (r *RuleRepository) FindAll(ctx context.Context) ([]domain.AssociationRule, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	required := []string{colAntecedents, colConsequents, colConfidence, colLift}

	var rules []domain.AssociationRule
	err := readRows(ctx, r.path, required, func(rw row) error {
		confidence, err := rw.float(colConfidence)
		if err != nil {
			return err
		}
		if confidence < 0 || confidence > 1 {
			return fmt.Errorf("line %d: confidence %g out of [0, 1]", rw.line, confidence)
		}
		lift, err := rw.float(colLift)
		if err != nil {
			return err
		}
		if lift < 0 {
			return fmt.Errorf("line %d: negative lift %g", rw.line, lift)
		}

		rule := domain.AssociationRule{
			Antecedent: basket.NormalizeItemSet(rw.str(colAntecedents)),
			Consequent: basket.NormalizeItemSet(rw.str(colConsequents)),
			Confidence: confidence,
			Lift:       lift,
		}

		optional := []struct {
			col string
			dst *float64
		}{
			{colAntecedentSupport, &rule.AntecedentSupport},
			{colConsequentSupport, &rule.ConsequentSupport},
			{colSupport, &rule.Support},
			{colLeverage, &rule.Leverage},
		}
		for _, o := range optional {
			v, err := rw.optionalFloat(o.col)
			if err != nil {
				return err
			}
			*o.dst = v
		}

		rules = append(rules, rule)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load association rules: %w", err)
	}

	return rules, nil
}
