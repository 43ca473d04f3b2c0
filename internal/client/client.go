package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"myRecoMarket/domain"
	"myRecoMarket/pkg/config"
	"myRecoMarket/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
)

// ErrConnectionFailure is returned when the API cannot be reached, either
// because the transport failed or because the breaker is open.
var ErrConnectionFailure = errors.New("cannot reach the recommendation api")

// APIError is a non-2xx answer from the API that has no domain meaning.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned %d: %s", e.StatusCode, e.Message)
}

type response struct {
	status int
	body   []byte
}

type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*response]
}

func New(cfg config.ClientConfig) *Client {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 1
	}

	settings := gobreaker.Settings{
		Name:        "reco-api",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[*response](settings),
	}
}

type recommendRequest struct {
	UserID string `json:"user_id"`
	TopK   int    `json:"top_k"`
}

type RecommendResult struct {
	UserID              string                  `json:"user_id"`
	TopK                int                     `json:"top_k"`
	RecommendedProducts []domain.Recommendation `json:"recommended_products"`
}

// Recommend asks for the topK products of a user. A 404 from the API comes
// back as domain.ErrUserNotFound.
func (c *Client) Recommend(ctx context.Context, userID string, topK int) (*RecommendResult, error) {
	payload, err := json.Marshal(recommendRequest{UserID: userID, TopK: topK})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json payload: %w", err)
	}

	var out RecommendResult
	err = c.do(ctx, http.MethodPost, "/api/v1/recommend", nil, payload, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &out, nil
}

func (c *Client) CustomerSegments(ctx context.Context) ([]domain.RFMRecord, error) {
	var out struct {
		Customers []domain.RFMRecord `json:"customers"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/reports/rfm", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Customers, nil
}

func (c *Client) SegmentSummary(ctx context.Context) ([]domain.SegmentSummary, error) {
	var out struct {
		Segments []domain.SegmentSummary `json:"segments"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/reports/rfm/segments", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Segments, nil
}

func (c *Client) TopRules(ctx context.Context, query domain.RuleQuery) ([]domain.AssociationRule, error) {
	params := url.Values{}
	if query.N > 0 {
		params.Set("n", strconv.Itoa(query.N))
	}
	if query.MinConfidence > 0 {
		params.Set("min_confidence", strconv.FormatFloat(query.MinConfidence, 'f', -1, 64))
	}
	if query.MinLift > 0 {
		params.Set("min_lift", strconv.FormatFloat(query.MinLift, 'f', -1, 64))
	}

	var out struct {
		Rules []domain.AssociationRule `json:"rules"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/reports/rules", params, nil, &out); err != nil {
		return nil, err
	}
	return out.Rules, nil
}

func (c *Client) EDAOverview(ctx context.Context, n int) (domain.EDAOverview, error) {
	params := url.Values{}
	if n > 0 {
		params.Set("n", strconv.Itoa(n))
	}

	var out struct {
		Overview domain.EDAOverview `json:"overview"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/reports/eda", params, nil, &out); err != nil {
		return domain.EDAOverview{}, err
	}
	return out.Overview, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, payload []byte, out any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	res, err := c.breaker.Execute(func() (*response, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, target, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		httpRes, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConnectionFailure, err)
		}
		defer httpRes.Body.Close()

		raw, err := io.ReadAll(httpRes.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConnectionFailure, err)
		}

		r := &response{status: httpRes.StatusCode, body: raw}
		if r.status >= http.StatusInternalServerError {
			return r, newAPIError(r)
		}
		return r, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %w", ErrConnectionFailure, err)
		}
		return err
	}

	if res.status < 200 || res.status > 299 {
		return newAPIError(res)
	}

	if err := json.Unmarshal(res.body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func newAPIError(res *response) *APIError {
	var body struct {
		Error string `json:"error"`
	}
	message := strings.TrimSpace(string(res.body))
	if err := json.Unmarshal(res.body, &body); err == nil && body.Error != "" {
		message = body.Error
	}

	return &APIError{StatusCode: res.status, Message: message}
}
