package domain

import (
	"errors"
	"fmt"
)

// ScoreMatrix holds the offline user x product affinity scores.
// It is built once at startup and never mutated afterwards.
type ScoreMatrix struct {
	UserIDs    []string    `json:"user_ids"`
	ProductIDs []string    `json:"product_ids"`
	Values     [][]float64 `json:"values"`

	userIndex map[string]int
}

// NewScoreMatrix validates the shape of the matrix and indexes the user rows.
func NewScoreMatrix(userIDs, productIDs []string, values [][]float64) (*ScoreMatrix, error) {
	if len(userIDs) == 0 || len(productIDs) == 0 {
		return nil, errors.New("score matrix is empty")
	}
	if len(values) != len(userIDs) {
		return nil, fmt.Errorf("score matrix has %d rows for %d users", len(values), len(userIDs))
	}

	seen := make(map[string]struct{}, len(productIDs))
	for _, p := range productIDs {
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("duplicate product id %q in score matrix", p)
		}
		seen[p] = struct{}{}
	}

	index := make(map[string]int, len(userIDs))
	for i, u := range userIDs {
		if _, dup := index[u]; dup {
			return nil, fmt.Errorf("duplicate user id %q in score matrix", u)
		}
		if len(values[i]) != len(productIDs) {
			return nil, fmt.Errorf("score row for user %q has %d columns, want %d", u, len(values[i]), len(productIDs))
		}
		index[u] = i
	}

	return &ScoreMatrix{
		UserIDs:    userIDs,
		ProductIDs: productIDs,
		Values:     values,
		userIndex:  index,
	}, nil
}

// Row returns the score vector of a user. The slice is shared; callers must not modify it.
func (m *ScoreMatrix) Row(userID string) ([]float64, bool) {
	i, ok := m.userIndex[userID]
	if !ok {
		return nil, false
	}
	return m.Values[i], true
}

func (m *ScoreMatrix) NumUsers() int {
	return len(m.UserIDs)
}

func (m *ScoreMatrix) NumProducts() int {
	return len(m.ProductIDs)
}
