package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "covtree.dev/pkg/covtree/internal/model"
)

func coverageOf(found, hit int) *m.FileRecord {
	lines := make([]m.LineRecord, 0, found)
	for i := 1; i <= found; i++ {
		hits := 0
		if i <= hit {
			hits = 1
		}

		lines = append(lines, m.LineRecord{Number: i, Hits: hits})
	}

	return m.NewFileRecord("/check.x", "", lines)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		found    int
		hit      int
		minimum  float64
		wantPass bool
	}{
		{"just below", 10000, 7999, 80, false},
		{"exactly at minimum", 10, 8, 80, true},
		{"above", 10, 9, 80, true},
		{"zero minimum", 10, 0, 0, true},
		{"full minimum", 10, 9, 100, false},
		{"nothing to cover", 0, 0, 100, true},
		{"exactly 29 percent", 100, 29, 29, true},
		{"exactly 57 percent", 100, 57, 57, true},
		{"exactly 58 percent", 100, 58, 58, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Check(coverageOf(tt.found, tt.hit), tt.minimum)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPass, result.Passed)
			assert.Equal(t, tt.minimum, result.MinimumPercent)

			if tt.wantPass {
				assert.NoError(t, result.Err())
				return
			}

			var below *m.BelowMinimumError
			require.True(t, errors.As(result.Err(), &below))
			assert.Equal(t, result.ObservedPercent, below.Observed)
		})
	}
}

func TestCheck_InvalidMinimum(t *testing.T) {
	for _, minimum := range []float64{-0.1, 100.01} {
		_, err := Check(coverageOf(1, 1), minimum)

		var configErr *m.ConfigError
		require.True(t, errors.As(err, &configErr), "minimum %v", minimum)
		assert.Equal(t, "minimum coverage", configErr.Field)
	}
}

func TestCheck_Tree(t *testing.T) {
	root, err := BuildTree(mustParse(t, sampleTracefile))
	require.NoError(t, err)

	result, err := Check(root, 66)
	require.NoError(t, err)
	assert.True(t, result.Passed)

	result, err = Check(root, 67)
	require.NoError(t, err)
	assert.False(t, result.Passed)
}
