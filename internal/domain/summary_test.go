package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mixvenn.dev/pkg/mixvenn/internal/model"
)

func TestSummarize(t *testing.T) {
	pairs, deltas := voldemortCorpus(t)

	summary := Summarize(pairs, deltas, 2)

	assert.Equal(t, m.Summary{
		Pairs:           5,
		Mixes:           9,
		RepairedPairs:   4,
		FlipFixes:       4,
		Deltas:          5,
		UnmatchedDeltas: 1,
		Rejects:         2,
	}, summary)
}

func TestSummarize_UnmatchedDeltas(t *testing.T) {
	records := mustRecords(t, "1;p;c;~a;1;0;Flip;1;0;1")
	deltas := mustDeltas(t, "p;c;~a", "x;y;~b", "c;p;~a")

	summary := Summarize(BuildRevisionPairs(records), deltas, 0)

	assert.Equal(t, 3, summary.Deltas)
	assert.Equal(t, 2, summary.UnmatchedDeltas, "reversed pair keys do not match")
}

func TestSummarize_FlipFixIgnoresBrokenTests(t *testing.T) {
	records := mustRecords(t,
		"1;p;c;~a;1;0;Flip;1;0;1",
		"1;p;c;~a;1;0;Stable;0;1;1",
	)

	summary := Summarize(BuildRevisionPairs(records), nil, 0)

	assert.Equal(t, 1, summary.FlipFixes)
	assert.Zero(t, summary.RepairedPairs)
	assert.Zero(t, summary.Deltas)
}

func TestDescribePairs(t *testing.T) {
	pairs, deltas := voldemortCorpus(t)

	rows := DescribePairs(pairs, deltas)
	require.Len(t, rows, 5)

	assert.Equal(t, m.PairRow{
		Key:       m.PairKey{ParentID: "8378cec", ChildID: "d3867bf"},
		Mixes:     3,
		Repaired:  true,
		HasDelta:  true,
		DeltaSize: 3,
		DeltaP:    1,
		DeltaPBar: 1,
		DeltaF:    2,
	}, rows[0])

	assert.Equal(t, m.PairRow{
		Key:       m.PairKey{ParentID: "aaa1111", ChildID: "bbb2222"},
		Mixes:     2,
		HasDelta:  true,
		DeltaSize: 2,
		DeltaF:    1,
	}, rows[2])

	assert.Equal(t, m.PairRow{
		Key:      m.PairKey{ParentID: "ccc3333", ChildID: "ddd4444"},
		Mixes:    1,
		Repaired: true,
		DeltaP:   1,
	}, rows[3])
}

func TestDescribePairs_CountsAnomalies(t *testing.T) {
	records := mustRecords(t,
		"1;p;c;~a,~x;1;0;T;0;0;1",
		"2;p;c;~x,~y;1;0;T;0;0;1",
	)
	deltas := mustDeltas(t, "p;c;~a,~b")

	rows := DescribePairs(BuildRevisionPairs(records), deltas)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Anomalies)
}
