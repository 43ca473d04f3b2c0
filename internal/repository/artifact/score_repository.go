package artifact

import (
	"context"
	"fmt"
	"os"

	"myRecoMarket/domain"

	"github.com/goccy/go-json"
)

// scoreArtifact is the on-disk layout produced by the offline training job:
//
//	{"scores": {"user_ids": [...], "product_ids": [...], "values": [[...], ...]}}
type scoreArtifact struct {
	Scores *struct {
		UserIDs    []string    `json:"user_ids"`
		ProductIDs []string    `json:"product_ids"`
		Values     [][]float64 `json:"values"`
	} `json:"scores"`
}

type ScoreRepository struct {
	path string
}

func NewScoreRepository(path string) *ScoreRepository {
	return &ScoreRepository{
		path: path,
	}
}

func (r *ScoreRepository) Load(ctx context.Context) (*domain.ScoreMatrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open score artifact: %w", err)
	}
	defer f.Close()

	var a scoreArtifact
	if err := json.NewDecoder(f).DecodeContext(ctx, &a); err != nil {
		return nil, fmt.Errorf("failed to decode score artifact: %w", err)
	}
	if a.Scores == nil {
		return nil, fmt.Errorf("score artifact %s has no scores", r.path)
	}

	m, err := domain.NewScoreMatrix(a.Scores.UserIDs, a.Scores.ProductIDs, a.Scores.Values)
	if err != nil {
		return nil, fmt.Errorf("invalid score artifact: %w", err)
	}

	return m, nil
}
