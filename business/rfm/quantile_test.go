//go:build !integration

package rfm

import (
	"errors"
	"testing"

	"myRecoMarket/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuintileScores(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		labels [numBuckets]int
		want   []int
	}{
		{
			name:   "ten values ascending labels",
			values: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			labels: ascendingLabels,
			want:   []int{1, 1, 2, 2, 3, 3, 4, 4, 5, 5},
		},
		{
			name:   "ten values descending labels",
			values: []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
			labels: descendingLabels,
			want:   []int{1, 1, 2, 2, 3, 3, 4, 4, 5, 5},
		},
		{
			name:   "five distinct values",
			values: []float64{50, 10, 40, 20, 30},
			labels: ascendingLabels,
			want:   []int{5, 1, 4, 2, 3},
		},
		{
			name:   "six values puts the two smallest in the first bucket",
			values: []float64{1, 2, 3, 4, 5, 6},
			labels: ascendingLabels,
			want:   []int{1, 1, 2, 3, 4, 5},
		},
		{
			name:   "empty input",
			values: []float64{},
			labels: ascendingLabels,
			want:   []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := quintileScores("metric", tt.values, tt.labels)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuintileScores_DuplicateEdges(t *testing.T) {
	_, err := quintileScores("monetary", []float64{7, 7, 7, 7, 7, 7}, ascendingLabels)

	var binErr *domain.BinningError
	require.True(t, errors.As(err, &binErr))
	assert.Equal(t, "monetary", binErr.Metric)
	assert.Contains(t, binErr.Error(), "duplicate bucket edge")
}

func TestQuintileScores_EmptyBucket(t *testing.T) {
	// Edges 1, 1.4, 1.8, 2.2, 2.6, 3 leave (1.4, 1.8] without a value.
	_, err := quintileScores("recency", []float64{1, 2, 3}, descendingLabels)

	var binErr *domain.BinningError
	require.True(t, errors.As(err, &binErr))
	assert.Equal(t, "recency", binErr.Metric)
	assert.Contains(t, binErr.Error(), "bucket 2 of 5 is empty")
}

func TestFirstOccurrenceRank(t *testing.T) {
	assert.Equal(t, []float64{3, 1, 4, 2}, firstOccurrenceRank([]float64{3, 1, 3, 2}))
	assert.Equal(t, []float64{1, 2, 3}, firstOccurrenceRank([]float64{5, 5, 5}))
}

func TestQuintileScores_TiedFrequencySpreadByRank(t *testing.T) {
	freq := []float64{1, 1, 1, 1, 1, 2, 2, 2, 2, 2}

	_, err := quintileScores("frequency", freq, ascendingLabels)
	require.Error(t, err)

	got, err := quintileScores("frequency", firstOccurrenceRank(freq), ascendingLabels)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3, 4, 4, 5, 5}, got)
}
