package cmd

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	m "linterman.dev/pkg/linterman/internal/model"
)

func fixturePath() string {
	return filepath.Join("testdata", "collection.json")
}

func TestLintCommandText(t *testing.T) {
	out, err := executeLinterman(t, "lint", fixturePath())
	require.NoError(t, err)

	require.Contains(t, out, "Score:")
	require.Contains(t, out, "test-http-status-mandatory")
	require.Contains(t, out, "request-naming-convention")
	require.Contains(t, out, "1 requests, 0 folders, 0 tests")
}

func TestLintCommandJSON(t *testing.T) {
	out, err := executeLinterman(t, "lint", "--format", "json", fixturePath())
	require.NoError(t, err)

	var result m.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.NotEmpty(t, result.Issues)
	require.Less(t, result.Score, 100)
	require.Equal(t, 1, result.Stats.TotalRequests)
}

func TestLintCommandRuleSelection(t *testing.T) {
	out, err := executeLinterman(t,
		"lint", "--format", "json", "--rules", "request-naming-convention", fixturePath(),
	)
	require.NoError(t, err)

	var result m.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.NotEmpty(t, result.Issues)
	for _, issue := range result.Issues {
		require.Equal(t, "request-naming-convention", issue.RuleID)
	}
}

func TestLintCommandMissingFile(t *testing.T) {
	_, err := executeLinterman(t, "lint", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
