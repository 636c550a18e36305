package domain

import (
	"log/slog"

	m "mixvenn.dev/pkg/mixvenn/internal/model"
)

// BuildRevisionPairs folds ordered records into revision pairs and mixed revisions.
//
// Records are expected grouped by pair and, within a pair, by mix ID. A new
// pair starts whenever the pair key changes and a new mix whenever the mix ID
// changes; the input is never sorted.
func BuildRevisionPairs(records []m.Record) []*m.RevisionPair {
	var (
		pairs []*m.RevisionPair
		pair  *m.RevisionPair
		group []m.Record
	)

	flushMix := func() {
		if pair == nil || len(group) == 0 {
			return
		}

		if mix, ok := BuildMix(group[0].MixID, group); ok {
			pair.Mixes = append(pair.Mixes, mix)
		}

		group = nil
	}

	for _, rec := range records {
		if pair == nil || rec.Key() != pair.Key() {
			flushMix()

			pair = &m.RevisionPair{ParentID: rec.ParentID, ChildID: rec.ChildID}
			pairs = append(pairs, pair)
		} else if rec.MixID != group[0].MixID {
			flushMix()
		}

		group = append(group, rec)
	}

	flushMix()

	return pairs
}

// BuildMix builds one mixed revision from the records sharing a mix ID.
//
// The reverted files come from the first record. A mix with no reverted
// non-test file is not an analysis unit and is dropped (ok is false). The mix
// is compilable only when every record is. Every compilable record adds an
// outcome; an aborted run never has a known mix result.
func BuildMix(id int, records []m.Record) (*m.MixedRevision, bool) {
	if len(records) == 0 {
		return nil, false
	}

	reverted := m.ParseChangedFiles(records[0].ChangedFiles)
	if len(reverted) == 0 {
		slog.Debug("dropping mix without reverted files", "mix", id, "pair", records[0].Key().String())
		return nil, false
	}

	mix := &m.MixedRevision{
		ID:         id,
		Reverted:   reverted,
		Compilable: true,
	}

	for _, rec := range records {
		if !rec.Compilable {
			mix.Compilable = false
			continue
		}

		outcome := rec.Outcome()
		if rec.Aborted {
			outcome.Mix = m.ResultUnknown
		}

		mix.Outcomes = append(mix.Outcomes, outcome)
	}

	return mix, true
}
