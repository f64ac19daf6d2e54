package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "covtree.dev/pkg/covtree/internal/model"
)

func TestNewThresholds(t *testing.T) {
	tests := []struct {
		name      string
		medium    float64
		high      float64
		wantField string
	}{
		{"defaults", 75, 90, ""},
		{"equal", 80, 80, ""},
		{"extremes", 0, 100, ""},
		{"medium above high", 91, 90, "medium threshold"},
		{"negative medium", -1, 90, "medium threshold"},
		{"high above hundred", 75, 100.5, "high threshold"},
		{"nan", math.NaN(), 90, "medium threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := NewThresholds(tt.medium, tt.high)

			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, m.Thresholds{Medium: tt.medium, High: tt.high}, th)

				return
			}

			var configErr *m.ConfigError
			require.True(t, errors.As(err, &configErr), "got %v", err)
			assert.Equal(t, tt.wantField, configErr.Field)
		})
	}
}

func TestClassify(t *testing.T) {
	th, err := NewThresholds(75, 90)
	require.NoError(t, err)

	record := func(found, hit int) *m.FileRecord {
		lines := make([]m.LineRecord, 0, found)
		for i := 1; i <= found; i++ {
			hits := 0
			if i <= hit {
				hits = 1
			}

			lines = append(lines, m.LineRecord{Number: i, Hits: hits})
		}

		return m.NewFileRecord("/a.x", "", lines)
	}

	assert.Equal(t, m.BandHigh, Classify(record(10, 9), th))
	assert.Equal(t, m.BandMedium, Classify(record(100, 89), th))
	assert.Equal(t, m.BandMedium, Classify(record(4, 3), th))
	assert.Equal(t, m.BandLow, Classify(record(100, 74), th))
	assert.Equal(t, m.BandHigh, Classify(record(0, 0), th))
}

func TestClassify_ExactBoundaries(t *testing.T) {
	record := func(found, hit int) *m.FileRecord {
		lines := make([]m.LineRecord, 0, found)
		for i := 1; i <= found; i++ {
			hits := 0
			if i <= hit {
				hits = 1
			}

			lines = append(lines, m.LineRecord{Number: i, Hits: hits})
		}

		return m.NewFileRecord("/a.x", "", lines)
	}

	for _, hit := range []int{29, 57, 58} {
		percent := float64(hit)

		assert.Equal(t, m.BandHigh, Classify(record(100, hit), m.Thresholds{Medium: 0, High: percent}), "high at %d%%", hit)
		assert.Equal(t, m.BandMedium, Classify(record(100, hit), m.Thresholds{Medium: percent, High: 100}), "medium at %d%%", hit)
	}
}

func TestSummarize(t *testing.T) {
	tf := mustParse(t, "SF:lib/a.x\nDA:1,1\nDA:2,1\nDA:3,0\nend_of_record\nSF:b.x\nDA:1,1\nend_of_record\n")

	root, err := BuildTree(tf)
	require.NoError(t, err)

	summary := Summarize(root, m.Thresholds{Medium: 50, High: 100})

	want := m.NodeSummary{
		Name: "", Path: "/", LinesFound: 4, LinesHit: 3, CoveragePercent: 75, Band: m.BandMedium,
		Children: []m.NodeSummary{{
			Name: "work", Path: "/work", LinesFound: 4, LinesHit: 3, CoveragePercent: 75, Band: m.BandMedium,
			Children: []m.NodeSummary{
				{Name: "b.x", Path: "/work/b.x", Leaf: true, LinesFound: 1, LinesHit: 1, CoveragePercent: 100, Band: m.BandHigh},
				{
					Name: "lib", Path: "/work/lib", LinesFound: 3, LinesHit: 2, CoveragePercent: 66.67, Band: m.BandMedium,
					Children: []m.NodeSummary{
						{Name: "a.x", Path: "/work/lib/a.x", Leaf: true, LinesFound: 3, LinesHit: 2, CoveragePercent: 66.67, Band: m.BandMedium},
					},
				},
			},
		}},
	}

	if diff := cmp.Diff(want, summary); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_BandUsesFullPrecision(t *testing.T) {
	lines := make([]m.LineRecord, 0, 10000)
	for i := 1; i <= 10000; i++ {
		hits := 0
		if i <= 8999 {
			hits = 1
		}

		lines = append(lines, m.LineRecord{Number: i, Hits: hits})
	}

	leaf := m.NewLeaf("a.x", m.NewFileRecord("/a.x", "", lines))
	summary := Summarize(leaf, m.Thresholds{Medium: 75, High: 90})

	assert.Equal(t, 89.99, summary.CoveragePercent)
	assert.Equal(t, m.BandMedium, summary.Band)
}
