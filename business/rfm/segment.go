package rfm

import "myRecoMarket/domain"

type segmentRule struct {
	segment domain.Segment
	match   func(r, f, m int) bool
}

// segmentRules is evaluated top to bottom; the first match wins.
//
// A recency score of 5 alone makes a customer Oro, even with the lowest
// frequency and monetary scores. This mirrors the reporting dashboards the
// segments were defined for and is kept as is.
var segmentRules = []segmentRule{
	{
		segment: domain.SegmentGold,
		match:   func(r, _, _ int) bool { return r == 5 },
	},
	{
		segment: domain.SegmentSilver,
		match:   func(r, f, _ int) bool { return r >= 4 && f >= 4 },
	},
	{
		segment: domain.SegmentBronze,
		match:   func(r, f, _ int) bool { return r <= 2 && f >= 4 },
	},
}

func AssignSegment(r, f, m int) domain.Segment {
	for _, rule := range segmentRules {
		if rule.match(r, f, m) {
			return rule.segment
		}
	}
	return domain.SegmentOther
}

// segmentPriority orders segments the way the rules are evaluated, Otros last.
func segmentPriority(s domain.Segment) int {
	for i, rule := range segmentRules {
		if rule.segment == s {
			return i
		}
	}
	return len(segmentRules)
}
