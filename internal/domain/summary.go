package domain

import (
	m "mixvenn.dev/pkg/mixvenn/internal/model"
)

// Summarize counts pairs, mixes and repairs of a parsed corpus.
func Summarize(pairs []*m.RevisionPair, deltas *m.DeltaIndex, rejects int) m.Summary {
	summary := m.Summary{
		Pairs:   len(pairs),
		Deltas:  deltas.Len(),
		Rejects: rejects,
	}

	logged := make(map[m.PairKey]struct{}, len(pairs))

	for _, pair := range pairs {
		logged[pair.Key()] = struct{}{}
		summary.Mixes += len(pair.Mixes)

		if pair.IsRepaired() {
			summary.RepairedPairs++
		}

		for _, mix := range pair.Mixes {
			if mix.RepairsAnyFlip() {
				summary.FlipFixes++
			}
		}
	}

	for _, delta := range deltas.Deltas() {
		if _, ok := logged[delta.Key()]; !ok {
			summary.UnmatchedDeltas++
		}
	}

	return summary
}

// DescribePairs returns one row per pair with the sizes of its derived sets.
// Pairs without a delta only report their mix count and repair state.
func DescribePairs(pairs []*m.RevisionPair, deltas *m.DeltaIndex) []m.PairRow {
	rows := make([]m.PairRow, 0, len(pairs))

	for _, pair := range pairs {
		row := m.PairRow{
			Key:      pair.Key(),
			Mixes:    len(pair.Mixes),
			Repaired: pair.IsRepaired(),
			DeltaP:   len(pair.DeltaP()),
		}

		if delta, ok := deltas.Lookup(pair.Key()); ok {
			row.HasDelta = true
			row.DeltaSize = len(delta.Total)
			row.DeltaPBar = len(pair.DeltaPBar(delta))
			row.DeltaF = len(pair.DeltaF(delta))
			row.Anomalies = len(pair.Anomalies(delta))
		}

		rows = append(rows, row)
	}

	return rows
}
