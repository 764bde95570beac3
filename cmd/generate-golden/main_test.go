package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargets(t *testing.T) {
	t.Parallel()
	targets, err := parseTargets(" 30000, 5 ,,10")
	require.NoError(t, err)
	assert.Len(t, targets, len(defaultTargets)+1, "duplicates are dropped")
	assert.Equal(t, uint64(30000), targets[len(targets)-1])
	assert.IsIncreasing(t, targets)

	_, err = parseTargets("12x")
	assert.Error(t, err)
}

func TestWriteGolden(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "golden.json")
	require.NoError(t, writeGolden(path, []uint64{0, 1, 2, 10, 93}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []GoldenData
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, []GoldenData{
		{0, "0"}, {1, "1"}, {2, "1"}, {10, "55"}, {93, "12200160415121876738"},
	}, got)
}
