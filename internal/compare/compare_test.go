package compare

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/aloncha/Kelas-Alpro/internal/grid"
	"github.com/aloncha/Kelas-Alpro/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const scenarioGrid = `
dataset "reference" {
  size = 100
}

dataset "repeats" {
  values = [1, 3, 3, 3, 3, 9]
}

probe "scenarios" {
  dataset = "reference"
  keys    = [0, 198, 50, 7, -1, 200]
}

probe "repeats" {
  dataset = "repeats"
  keys    = [3, 4]
}
`

func loadReport(t *testing.T) *Report {
	t.Helper()
	g, err := grid.LoadSource(context.Background(), "grid.hcl", []byte(scenarioGrid))
	require.NoError(t, err)
	return Run(context.Background(), g)
}

func TestRun_ReferenceScenarios(t *testing.T) {
	report := loadReport(t)

	require.Len(t, report.Probes, 2)
	assert.Zero(t, report.Disagreements)

	pr := report.Probes[0]
	assert.Equal(t, "scenarios", pr.Probe)
	assert.Equal(t, "reference", pr.Dataset)
	assert.Equal(t, 100, pr.Size)
	assert.True(t, pr.Distinct)
	require.Len(t, pr.Outcomes, 6)

	want := map[int]string{0: "0", 198: "99", 50: "25", 7: "absent", -1: "absent", 200: "absent"}
	for _, o := range pr.Outcomes {
		assert.Equal(t, want[o.Key], o.Linear.String(), "linear key %d", o.Key)
		assert.Equal(t, want[o.Key], o.Binary.String(), "binary key %d", o.Key)
		assert.True(t, o.Agree)
		assert.LessOrEqual(t, o.Binary.Comparisons, 7)
	}

	// Linear pays one comparison per element scanned.
	assert.Equal(t, 1, pr.Outcomes[0].Linear.Comparisons)
	assert.Equal(t, 100, pr.Outcomes[1].Linear.Comparisons)
	assert.Equal(t, 100, pr.Outcomes[3].Linear.Comparisons)

	total := 0
	for _, o := range pr.Outcomes {
		total += o.Linear.Comparisons
	}
	assert.Equal(t, total, pr.LinearTotal)
	assert.Less(t, pr.BinaryTotal, pr.LinearTotal)
}

func TestRun_DuplicatesStillAgree(t *testing.T) {
	pr := loadReport(t).Probes[1]

	assert.False(t, pr.Distinct)
	assert.Zero(t, pr.Disagreements)
	require.Len(t, pr.Outcomes, 2)
	assert.Equal(t, "1", pr.Outcomes[0].Linear.String())
	assert.True(t, pr.Outcomes[0].Binary.Found)
	assert.False(t, pr.Outcomes[1].Linear.Found)
	assert.False(t, pr.Outcomes[1].Binary.Found)
}

func TestAgree(t *testing.T) {
	seq := []int{1, 3, 3, 9}

	assert.True(t, agree(seq, search.Absent, search.Absent))
	assert.True(t, agree(seq, search.Found(1), search.Found(2)))
	assert.False(t, agree(seq, search.Found(0), search.Found(3)))
	assert.False(t, agree(seq, search.Found(0), search.Absent))
	assert.False(t, agree(seq, search.Absent, search.Found(0)))
}

func TestRender(t *testing.T) {
	report := loadReport(t)

	t.Run("table", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, Render(&out, report, FormatTable))
		assert.Contains(t, out.String(), "linear cmp")
		assert.Contains(t, out.String(), "scenarios")
		assert.Contains(t, out.String(), "absent")
		assert.Contains(t, out.String(), "disagreements")
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, Render(&out, report, FormatJSON))

		var decoded Report
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		require.Len(t, decoded.Probes, 2)
		assert.Equal(t, report.Probes[0].LinearTotal, decoded.Probes[0].LinearTotal)
		assert.NotContains(t, out.String(), `"index": null`)
	})

	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, Render(&out, report, FormatYAML))

		var decoded Report
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
		require.Len(t, decoded.Probes, 2)
		assert.Equal(t, "scenarios", decoded.Probes[0].Probe)
		assert.Contains(t, out.String(), "binary_comparisons:")
	})

	t.Run("unknown format", func(t *testing.T) {
		err := Render(&bytes.Buffer{}, report, "csv")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown report format "csv"`)
	})
}
