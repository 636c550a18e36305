package domain

import (
	"fmt"
	"log/slog"

	m "mixvenn.dev/pkg/mixvenn/internal/model"
	"mixvenn.dev/pkg/mixvenn/pkg"
)

// Aggregate classifies every revision pair that has a delta and sums the
// weighted cases over the corpus.
//
// Each qualifying pair contributes a total weight of exactly one, split evenly
// across the cartesian product of its delta_p_bar and delta_f candidates.
// Pairs without a delta are counted and left out; so are repaired pairs whose
// largest repair leaves no observed complement.
func Aggregate(pairs []*m.RevisionPair, deltas *m.DeltaIndex) (*m.VennReport, error) {
	report := &m.VennReport{}

	for _, pair := range pairs {
		delta, ok := deltas.Lookup(pair.Key())
		if !ok {
			slog.Debug("no delta for revision pair", "pair", pair.Key().String())

			report.MissingDelta++

			continue
		}

		contribution, ok, err := classifyPair(pair, delta)
		if err != nil {
			return nil, fmt.Errorf("classify pair %s: %w", pair.Key(), err)
		}

		if !ok {
			slog.Debug("skipping fully repaired pair", "pair", pair.Key().String())

			report.SkippedFullRepair++

			continue
		}

		for i, w := range contribution.Weights {
			report.Weights[i] += w
		}

		report.Pairs++
		report.Contributions = append(report.Contributions, contribution)
	}

	slog.Info("venn aggregation complete",
		"pairs", report.Pairs,
		"missing_delta", report.MissingDelta,
		"skipped_full_repair", report.SkippedFullRepair)

	return report, nil
}

func classifyPair(pair *m.RevisionPair, delta *m.Delta) (m.PairContribution, bool, error) {
	contribution := m.PairContribution{Key: pair.Key()}

	passing := pair.DeltaPBar(delta)
	if len(passing) == 0 && pair.IsRepaired() {
		return contribution, false, nil
	}

	passSets := candidateSets(passing, delta)
	failSets := candidateSets(pair.DeltaF(delta), delta)

	contribution.Candidates = len(passSets) * len(failSets)
	weight := 1.0 / float64(contribution.Candidates)
	total := delta.FileSet()

	for _, p := range passSets {
		for _, f := range failSets {
			c, err := Classify(total, p, f)
			if err != nil {
				return contribution, false, err
			}

			slog.Debug("classified candidate",
				"pair", contribution.Key.String(),
				"pass", p.Items(),
				"fail", f.Items(),
				"case", int(c))

			contribution.Weights[c-1] += weight
		}
	}

	return contribution, true, nil
}

// candidateSets returns the file sets of mixes, or the whole delta as the only
// candidate when there are none.
func candidateSets(mixes []*m.MixedRevision, delta *m.Delta) []pkg.Set[string] {
	if len(mixes) == 0 {
		return []pkg.Set[string]{delta.FileSet()}
	}

	sets := make([]pkg.Set[string], 0, len(mixes))
	for _, mix := range mixes {
		sets = append(sets, mix.FileSet())
	}

	return sets
}
