package rfm

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"myRecoMarket/domain"
	"myRecoMarket/pkg/logger"
	"myRecoMarket/pkg/metrics"
)

const day = 24 * time.Hour

type rfmService struct {
	transactions []domain.Transaction
}

// NewRFMService segments the read-only transaction log on every call.
func NewRFMService(transactions []domain.Transaction) *rfmService {
	return &rfmService{
		transactions: transactions,
	}
}

func (s *rfmService) GetCustomerSegments(ctx context.Context) ([]domain.RFMRecord, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when segmenting customers")
		return nil, fmt.Errorf("context error: %w", err)
	}

	records, err := SegmentCustomers(s.transactions)
	if err != nil {
		var binErr *domain.BinningError
		if errors.As(err, &binErr) {
			metrics.SegmentationRuns.WithLabelValues(metrics.OutcomeBinningError).Inc()
		}
		logger.Error("Failed to segment customers", err)
		return nil, err
	}

	metrics.SegmentationRuns.WithLabelValues(metrics.OutcomeOK).Inc()
	logger.Debug("customers segmented", "customers", len(records))

	return records, nil
}

func (s *rfmService) GetSegmentSummary(ctx context.Context) ([]domain.SegmentSummary, error) {
	records, err := s.GetCustomerSegments(ctx)
	if err != nil {
		return nil, err
	}

	return Summarize(records), nil
}

type customerAgg struct {
	last     time.Time
	orders   map[string]struct{}
	monetary float64
}

// SegmentCustomers computes one RFM record per distinct customer, ordered by
// customer id. It is a pure function of its input.
func SegmentCustomers(transactions []domain.Transaction) ([]domain.RFMRecord, error) {
	if len(transactions) == 0 {
		return []domain.RFMRecord{}, nil
	}

	var maxDate time.Time
	aggs := make(map[string]*customerAgg)
	for _, t := range transactions {
		if t.Date.After(maxDate) {
			maxDate = t.Date
		}

		agg, ok := aggs[t.CustomerID]
		if !ok {
			agg = &customerAgg{last: t.Date, orders: make(map[string]struct{})}
			aggs[t.CustomerID] = agg
		}
		if t.Date.After(agg.last) {
			agg.last = t.Date
		}
		agg.orders[t.OrderID] = struct{}{}
		agg.monetary += t.GrossSaleAmount
	}
	snapshot := maxDate.Add(day)

	customers := make([]string, 0, len(aggs))
	for id := range aggs {
		customers = append(customers, id)
	}
	sort.Strings(customers)

	records := make([]domain.RFMRecord, len(customers))
	recency := make([]float64, len(customers))
	frequency := make([]float64, len(customers))
	monetary := make([]float64, len(customers))
	for i, id := range customers {
		agg := aggs[id]
		records[i] = domain.RFMRecord{
			CustomerID:  id,
			RecencyDays: int(snapshot.Sub(agg.last) / day),
			Frequency:   len(agg.orders),
			Monetary:    agg.monetary,
		}
		recency[i] = float64(records[i].RecencyDays)
		frequency[i] = float64(records[i].Frequency)
		monetary[i] = records[i].Monetary
	}

	rScores, err := quintileScores("recency", recency, descendingLabels)
	if err != nil {
		return nil, err
	}
	fScores, err := quintileScores("frequency", firstOccurrenceRank(frequency), ascendingLabels)
	if err != nil {
		return nil, err
	}
	mScores, err := quintileScores("monetary", monetary, ascendingLabels)
	if err != nil {
		return nil, err
	}

	for i := range records {
		r, f, m := rScores[i], fScores[i], mScores[i]
		records[i].RScore = r
		records[i].FScore = f
		records[i].MScore = m
		records[i].RFMCode = strconv.Itoa(r) + strconv.Itoa(f) + strconv.Itoa(m)
		records[i].Segment = AssignSegment(r, f, m)
	}

	return records, nil
}

// Summarize reports the size, share and average metrics of every segment
// present in records, largest segment first.
func Summarize(records []domain.RFMRecord) []domain.SegmentSummary {
	if len(records) == 0 {
		return []domain.SegmentSummary{}
	}

	bySegment := make(map[domain.Segment]*domain.SegmentSummary)
	for _, r := range records {
		sum, ok := bySegment[r.Segment]
		if !ok {
			sum = &domain.SegmentSummary{Segment: r.Segment}
			bySegment[r.Segment] = sum
		}
		sum.Customers++
		sum.AvgRecencyDays += float64(r.RecencyDays)
		sum.AvgFrequency += float64(r.Frequency)
		sum.AvgMonetary += r.Monetary
	}

	total := float64(len(records))
	out := make([]domain.SegmentSummary, 0, len(bySegment))
	for _, sum := range bySegment {
		n := float64(sum.Customers)
		sum.SharePct = n / total * 100
		sum.AvgRecencyDays /= n
		sum.AvgFrequency /= n
		sum.AvgMonetary /= n
		out = append(out, *sum)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Customers != out[j].Customers {
			return out[i].Customers > out[j].Customers
		}
		return segmentPriority(out[i].Segment) < segmentPriority(out[j].Segment)
	})

	return out
}
