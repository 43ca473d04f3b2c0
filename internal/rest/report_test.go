//go:build !integration

package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"myRecoMarket/business/basket"
	"myRecoMarket/business/eda"
	"myRecoMarket/domain"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRFMService struct {
	records []domain.RFMRecord
	summary []domain.SegmentSummary
	err     error
}

func (s stubRFMService) GetCustomerSegments(ctx context.Context) ([]domain.RFMRecord, error) {
	return s.records, s.err
}

func (s stubRFMService) GetSegmentSummary(ctx context.Context) ([]domain.SegmentSummary, error) {
	return s.summary, s.err
}

func reportRules() []domain.AssociationRule {
	return []domain.AssociationRule{
		{Antecedent: []string{"Leche"}, Consequent: []string{"Pan"}, Confidence: 0.4, Lift: 0.9},
		{Antecedent: []string{"Pan"}, Consequent: []string{"Queso"}, Confidence: 0.8, Lift: 1.5},
		{Antecedent: []string{"Queso"}, Consequent: []string{"Vino"}, Confidence: 0.6, Lift: 2.1},
	}
}

func newReportHandler(rfm RFMService) *ReportHandler {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tx := []domain.Transaction{
		{CustomerID: "C1", OrderID: "O1", ProductID: "P1", Date: day, Category: "Frutas", Units: 2, GrossSaleAmount: 10},
		{CustomerID: "C2", OrderID: "O2", ProductID: "P2", Date: day, Category: "Aseo", Units: 1, GrossSaleAmount: 30},
	}

	return NewReportHandler(rfm, basket.NewBasketService(reportRules()), eda.NewEDAService(tx, []domain.CityRecord{{City: "Cali"}, {City: "Cali"}, {City: "Pasto"}}), time.Second)
}

func getReport(t *testing.T, target string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestReportHandler_CustomerSegments(t *testing.T) {
	h := newReportHandler(stubRFMService{records: []domain.RFMRecord{
		{CustomerID: "C1", RScore: 5, FScore: 5, MScore: 5, RFMCode: "555", Segment: domain.SegmentGold},
	}})

	rec := getReport(t, "/api/v1/reports/rfm", h.GetCustomerSegments)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Customers []domain.RFMRecord `json:"customers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Customers, 1)
	assert.Equal(t, domain.SegmentGold, body.Customers[0].Segment)
}

func TestReportHandler_BinningError(t *testing.T) {
	h := newReportHandler(stubRFMService{err: &domain.BinningError{Metric: "monetary", Reason: "duplicate bin edges"}})

	rec := getReport(t, "/api/v1/reports/rfm", h.GetCustomerSegments)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"cannot bin monetary into quintiles: duplicate bin edges"}`, rec.Body.String())

	rec = getReport(t, "/api/v1/reports/rfm/segments", h.GetSegmentSummary)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestReportHandler_SegmentSummary(t *testing.T) {
	h := newReportHandler(stubRFMService{summary: []domain.SegmentSummary{
		{Segment: domain.SegmentOther, Customers: 3, SharePct: 100},
	}})

	rec := getReport(t, "/api/v1/reports/rfm/segments", h.GetSegmentSummary)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"segments"`)
	assert.Contains(t, rec.Body.String(), `"Otros"`)
}

func TestReportHandler_TopRules(t *testing.T) {
	h := newReportHandler(stubRFMService{})

	rec := getReport(t, "/api/v1/reports/rules?n=2&min_lift=1", h.GetTopRules)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Rules []domain.AssociationRule `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Rules, 2)
	assert.Equal(t, 0.8, body.Rules[0].Confidence)
	assert.Equal(t, 0.6, body.Rules[1].Confidence)
}

func TestReportHandler_TopRulesBadQuery(t *testing.T) {
	h := newReportHandler(stubRFMService{})

	rec := getReport(t, "/api/v1/reports/rules?min_confidence=2", h.GetTopRules)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = getReport(t, "/api/v1/reports/rules?n=abc", h.GetTopRules)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportHandler_EDAOverview(t *testing.T) {
	h := newReportHandler(stubRFMService{})

	rec := getReport(t, "/api/v1/reports/eda?n=1", h.GetEDAOverview)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Overview domain.EDAOverview `json:"overview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []domain.CategoryStat{{Category: "Aseo", Value: 30}}, body.Overview.TopCategoriesByAvgSale)
	assert.Equal(t, []domain.MonthlySales{{Month: "2024-03", Total: 40}}, body.Overview.MonthlySales)
	assert.Equal(t, []domain.CategoryStat{{Category: "Cali", Value: 2}}, body.Overview.TopCitiesByCount)
}
