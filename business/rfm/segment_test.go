//go:build !integration

package rfm

import (
	"testing"

	"myRecoMarket/domain"

	"github.com/stretchr/testify/assert"
)

func TestAssignSegment(t *testing.T) {
	tests := []struct {
		name    string
		r, f, m int
		want    domain.Segment
	}{
		{name: "recent one-time low spender is still gold", r: 5, f: 1, m: 1, want: domain.SegmentGold},
		{name: "gold wins over silver", r: 5, f: 5, m: 5, want: domain.SegmentGold},
		{name: "silver", r: 4, f: 5, m: 2, want: domain.SegmentSilver},
		{name: "silver lower bound", r: 4, f: 4, m: 1, want: domain.SegmentSilver},
		{name: "bronze", r: 2, f: 4, m: 3, want: domain.SegmentBronze},
		{name: "bronze oldest", r: 1, f: 5, m: 5, want: domain.SegmentBronze},
		{name: "middle recency is other", r: 3, f: 5, m: 5, want: domain.SegmentOther},
		{name: "recent but infrequent", r: 4, f: 3, m: 5, want: domain.SegmentOther},
		{name: "old and infrequent", r: 1, f: 1, m: 1, want: domain.SegmentOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssignSegment(tt.r, tt.f, tt.m))
		})
	}
}

func TestSegmentPriority(t *testing.T) {
	assert.Less(t, segmentPriority(domain.SegmentGold), segmentPriority(domain.SegmentSilver))
	assert.Less(t, segmentPriority(domain.SegmentSilver), segmentPriority(domain.SegmentBronze))
	assert.Less(t, segmentPriority(domain.SegmentBronze), segmentPriority(domain.SegmentOther))
}
