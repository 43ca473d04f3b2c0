//go:build !integration

package basket

import (
	"context"
	"testing"

	"myRecoMarket/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rule(name string, confidence, lift float64) domain.AssociationRule {
	return domain.AssociationRule{
		Antecedent: []string{name},
		Consequent: []string{"X"},
		Confidence: confidence,
		Lift:       lift,
	}
}

func names(rules []domain.AssociationRule) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.Antecedent[0])
	}
	return out
}

func TestTopRules(t *testing.T) {
	rules := []domain.AssociationRule{
		rule("a", 0.8, 1.2),
		rule("b", 0.95, 2.0),
		rule("c", 0.6, 0.9),
	}

	got := TopRules(rules, 2)
	assert.Equal(t, []string{"b", "a"}, names(got))

	// input untouched
	assert.Equal(t, []string{"a", "b", "c"}, names(rules))
}

func TestTopRules_StableTies(t *testing.T) {
	rules := []domain.AssociationRule{
		rule("a", 0.5, 1),
		rule("b", 0.7, 1),
		rule("c", 0.5, 1),
		rule("d", 0.7, 1),
	}

	assert.Equal(t, []string{"b", "d", "a", "c"}, names(TopRules(rules, 10)))
}

func TestTopRules_NonPositiveN(t *testing.T) {
	assert.Empty(t, TopRules([]domain.AssociationRule{rule("a", 1, 1)}, 0))
}

func TestFilterRules(t *testing.T) {
	rules := []domain.AssociationRule{
		rule("a", 0.8, 1.2),
		rule("b", 0.95, 0.7),
		rule("c", 0.6, 3.0),
		rule("d", 0.3, 5.0),
	}

	got := FilterRules(rules, domain.RuleQuery{N: 5, MinLift: 1, MinConfidence: 0.5})
	assert.Equal(t, []string{"a", "c"}, names(got))
}

func TestGetTopRules_DefaultsN(t *testing.T) {
	rules := make([]domain.AssociationRule, 0, 15)
	for i := 0; i < 15; i++ {
		rules = append(rules, rule(string(rune('a'+i)), float64(i)/15, 1))
	}
	svc := NewBasketService(rules)

	got, err := svc.GetTopRules(context.Background(), domain.RuleQuery{})
	require.NoError(t, err)
	require.Len(t, got, DefaultTopRules)
	assert.Equal(t, "o", got[0].Antecedent[0])
}
