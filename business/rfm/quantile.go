package rfm

import (
	"fmt"
	"math"
	"sort"

	"myRecoMarket/domain"
)

const numBuckets = 5

var (
	ascendingLabels  = [numBuckets]int{1, 2, 3, 4, 5}
	descendingLabels = [numBuckets]int{5, 4, 3, 2, 1}
)

// quintileScores splits values into five equal-population buckets and maps
// bucket i to labels[i]. Bucket edges are the 0, 20, 40, 60, 80 and 100th
// percentiles with linear interpolation. Bucket i holds (edge[i], edge[i+1]]
// and the first bucket also holds the minimum.
//
// Duplicate edges or an empty bucket yield a *domain.BinningError; there is
// no fallback to fewer buckets.
func quintileScores(metric string, values []float64, labels [numBuckets]int) ([]int, error) {
	if len(values) == 0 {
		return []int{}, nil
	}

	edges := quintileEdges(values)
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, &domain.BinningError{
				Metric: metric,
				Reason: fmt.Sprintf("duplicate bucket edge %g", edges[i]),
			}
		}
	}

	var counts [numBuckets]int
	scores := make([]int, len(values))
	for i, v := range values {
		b := bucketOf(v, edges)
		counts[b]++
		scores[i] = labels[b]
	}

	for b, c := range counts {
		if c == 0 {
			return nil, &domain.BinningError{
				Metric: metric,
				Reason: fmt.Sprintf("bucket %d of %d is empty", b+1, numBuckets),
			}
		}
	}

	return scores, nil
}

func quintileEdges(values []float64) [numBuckets + 1]float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var edges [numBuckets + 1]float64
	for k := range edges {
		edges[k] = quantile(sorted, k, numBuckets)
	}
	return edges
}

// quantile returns the k/q-th quantile of sorted input, interpolating
// linearly between the two closest ranks.
func quantile(sorted []float64, k, q int) float64 {
	h := float64(k*(len(sorted)-1)) / float64(q)
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func bucketOf(v float64, edges [numBuckets + 1]float64) int {
	for b := 0; b < numBuckets; b++ {
		if v <= edges[b+1] {
			return b
		}
	}
	return numBuckets - 1
}

// firstOccurrenceRank ranks values ascending, breaking ties by position so
// every rank 1..n is used exactly once.
func firstOccurrenceRank(values []float64) []float64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	ranks := make([]float64, len(values))
	for pos, i := range idx {
		ranks[i] = float64(pos + 1)
	}
	return ranks
}
