//go:build !integration

package artifact

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recommender_full.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeArtifact(t, `{"scores": {
		"user_ids": ["U1", "U2"],
		"product_ids": ["P1", "P2", "P3"],
		"values": [[0.9, 0.95, 0.1], [0, 0.2, 0.4]]
	}}`)

	m, err := NewScoreRepository(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, m.NumUsers())
	assert.Equal(t, 3, m.NumProducts())

	row, ok := m.Row("U1")
	require.True(t, ok)
	assert.Equal(t, []float64{0.9, 0.95, 0.1}, row)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "missing scores key", body: `{"pred_df": {}}`, want: "has no scores"},
		{name: "ragged rows", body: `{"scores": {"user_ids": ["U1"], "product_ids": ["P1", "P2"], "values": [[1]]}}`, want: "has 1 columns, want 2"},
		{name: "row count", body: `{"scores": {"user_ids": ["U1", "U2"], "product_ids": ["P1"], "values": [[1]]}}`, want: "1 rows for 2 users"},
		{name: "duplicate user", body: `{"scores": {"user_ids": ["U1", "U1"], "product_ids": ["P1"], "values": [[1], [2]]}}`, want: `duplicate user id "U1"`},
		{name: "empty", body: `{"scores": {"user_ids": [], "product_ids": [], "values": []}}`, want: "score matrix is empty"},
		{name: "not json", body: `scores`, want: "failed to decode score artifact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScoreRepository(writeArtifact(t, tt.body)).Load(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewScoreRepository(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
