package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	m "linterman.dev/pkg/linterman/internal/model"
)

func mustCollection(t *testing.T, raw string) *m.Collection {
	t.Helper()

	var c m.Collection
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	return &c
}
