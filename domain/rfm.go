package domain

type Segment string

const (
	SegmentGold   Segment = "Cliente Oro"
	SegmentSilver Segment = "Cliente Plata"
	SegmentBronze Segment = "Cliente Bronce"
	SegmentOther  Segment = "Otros"
)

type RFMRecord struct {
	CustomerID  string  `json:"customer_id"`
	RecencyDays int     `json:"recency_days"`
	Frequency   int     `json:"frequency"`
	Monetary    float64 `json:"monetary"`
	RScore      int     `json:"r_score"`
	FScore      int     `json:"f_score"`
	MScore      int     `json:"m_score"`
	RFMCode     string  `json:"rfm_code"`
	Segment     Segment `json:"segment"`
}

type SegmentSummary struct {
	Segment        Segment `json:"segment"`
	Customers      int     `json:"customers"`
	SharePct       float64 `json:"share_pct"`
	AvgRecencyDays float64 `json:"avg_recency_days"`
	AvgFrequency   float64 `json:"avg_frequency"`
	AvgMonetary    float64 `json:"avg_monetary"`
}
