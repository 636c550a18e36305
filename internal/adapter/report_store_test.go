package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mixvenn.dev/pkg/mixvenn/internal/model"
)

func TestYAMLReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	path := filepath.Join(t.TempDir(), "nested", "report.yaml")

	report := &m.VennReport{Pairs: 2}
	report.Weights[m.CaseEqualInside-1] = 1.5
	report.Weights[m.CaseDisjointInside-1] = 0.5
	report.Contributions = []m.PairContribution{{Key: m.PairKey{ParentID: "p", ChildID: "c"}, Candidates: 2}}

	generated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	export := m.NewExport("run-1", generated, m.Summary{Pairs: 3, Mixes: 7}, report)
	export.LogFile = "log.txt"

	require.NoError(t, store.SaveReport(path, export))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run_id: run-1")
	assert.Contains(t, string(data), "qualifying_pairs: 2")

	loaded, err := store.LoadReport(path)
	require.NoError(t, err)

	assert.Equal(t, "run-1", loaded.RunID)
	assert.True(t, generated.Equal(loaded.Generated))
	assert.Equal(t, 3, loaded.Pairs)
	assert.Equal(t, 7, loaded.MixedRevisions)
	require.Len(t, loaded.Cases, m.VennCaseCount)
	assert.InDelta(t, 75.0, loaded.Cases[0].Percent, 1e-9)
	assert.InDelta(t, 25.0, loaded.Cases[1].Percent, 1e-9)
	require.Len(t, loaded.Contributions, 1)
	assert.Equal(t, "p", loaded.Contributions[0].Parent)
	assert.Len(t, loaded.Contributions[0].Weights, m.VennCaseCount)
}

func TestYAMLReportStore_LoadErrors(t *testing.T) {
	store := NewReportStore()

	_, err := store.LoadReport(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("pairs: [unterminated"), 0o600))

	_, err = store.LoadReport(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode report")
}
