package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidTopK  = errors.New("top_k must be at least 1")
)

// BinningError reports a metric whose distribution cannot be split into
// five non-empty quantile buckets.
type BinningError struct {
	Metric string
	Reason string
}

func (e *BinningError) Error() string {
	return fmt.Sprintf("cannot bin %s into quintiles: %s", e.Metric, e.Reason)
}
