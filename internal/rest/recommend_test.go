//go:build !integration

package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"myRecoMarket/business/recommend"
	"myRecoMarket/domain"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecommendHandler(t *testing.T) *RecommendHandler {
	t.Helper()

	products := []string{"P1", "P2", "P3", "P4", "P5", "P6"}
	scores, err := domain.NewScoreMatrix(
		[]string{"U1", "U2"},
		products,
		[][]float64{
			{0.9, 0.95, 0.1, 0.2, 0.3, 0.4},
			{0.1, 0.2, 0.3, 0.4, 0.5, 0.6},
		},
	)
	require.NoError(t, err)

	catalog := domain.ProductCatalog{}
	for _, p := range products {
		catalog[p] = domain.ProductMetadata{ProductID: p, Category: "cat-" + p}
	}

	return NewRecommendHandler(recommend.NewRecommendService(scores, catalog), time.Second)
}

func postRecommend(t *testing.T, h *RecommendHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommend", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Recommend(e.NewContext(req, rec)))
	return rec
}

func TestRecommendHandler_OK(t *testing.T) {
	rec := postRecommend(t, newRecommendHandler(t), `{"user_id":"U1","top_k":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got RecommendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, "U1", got.UserID)
	assert.Equal(t, 2, got.TopK)
	assert.Equal(t, []domain.Recommendation{
		{ProductID: "P2", Category: "cat-P2", Score: 0.95},
		{ProductID: "P1", Category: "cat-P1", Score: 0.9},
	}, got.RecommendedProducts)
}

func TestRecommendHandler_DefaultTopK(t *testing.T) {
	rec := postRecommend(t, newRecommendHandler(t), `{"user_id":"U2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got RecommendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, defaultTopK, got.TopK)
	assert.Len(t, got.RecommendedProducts, defaultTopK)
	assert.Equal(t, "P6", got.RecommendedProducts[0].ProductID)
}

func TestRecommendHandler_UnknownUser(t *testing.T) {
	rec := postRecommend(t, newRecommendHandler(t), `{"user_id":"nobody","top_k":3}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, rec.Body.String())
}

func TestRecommendHandler_BadRequests(t *testing.T) {
	h := newRecommendHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing user", body: `{"top_k":3}`},
		{name: "zero top_k", body: `{"user_id":"U1","top_k":0}`},
		{name: "negative top_k", body: `{"user_id":"U1","top_k":-1}`},
		{name: "malformed json", body: `{"user_id":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postRecommend(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}
