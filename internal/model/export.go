package model

import "time"

// CaseShare is the exported weight of one Venn case.
type CaseShare struct {
	Case        int     `yaml:"case"`
	Description string  `yaml:"description"`
	Weight      float64 `yaml:"weight"`
	Percent     float64 `yaml:"percent"`
}

// PairExport is the exported contribution of one revision pair.
type PairExport struct {
	Parent     string    `yaml:"parent"`
	Child      string    `yaml:"child"`
	Candidates int       `yaml:"candidates"`
	Weights    []float64 `yaml:"weights,flow"`
}

// Export is the serializable result of one analysis run.
type Export struct {
	RunID             string       `yaml:"run_id"`
	Generated         time.Time    `yaml:"generated"`
	LogFile           string       `yaml:"log_file"`
	DeltaFile         string       `yaml:"delta_file"`
	Pairs             int          `yaml:"pairs"`
	MixedRevisions    int          `yaml:"mixed_revisions"`
	RepairedPairs     int          `yaml:"repaired_pairs"`
	UnmatchedDeltas   int          `yaml:"unmatched_deltas"`
	Rejects           int          `yaml:"rejects"`
	QualifyingPairs   int          `yaml:"qualifying_pairs"`
	MissingDelta      int          `yaml:"missing_delta"`
	SkippedFullRepair int          `yaml:"skipped_full_repair"`
	Cases             []CaseShare  `yaml:"cases"`
	Contributions     []PairExport `yaml:"contributions,omitempty"`
}

// NewExport flattens a summary and a Venn report into an Export.
func NewExport(runID string, generated time.Time, summary Summary, report *VennReport) Export {
	export := Export{
		RunID:             runID,
		Generated:         generated,
		Pairs:             summary.Pairs,
		MixedRevisions:    summary.Mixes,
		RepairedPairs:     summary.RepairedPairs,
		UnmatchedDeltas:   summary.UnmatchedDeltas,
		Rejects:           summary.Rejects,
		QualifyingPairs:   report.Pairs,
		MissingDelta:      report.MissingDelta,
		SkippedFullRepair: report.SkippedFullRepair,
	}

	for _, c := range AllVennCases() {
		export.Cases = append(export.Cases, CaseShare{
			Case:        int(c),
			Description: c.Description(),
			Weight:      report.Weight(c),
			Percent:     report.Percent(c),
		})
	}

	for _, contribution := range report.Contributions {
		export.Contributions = append(export.Contributions, PairExport{
			Parent:     contribution.Key.ParentID,
			Child:      contribution.Key.ChildID,
			Candidates: contribution.Candidates,
			Weights:    contribution.Weights[:],
		})
	}

	return export
}

// VennReport rebuilds the Venn report an export was flattened from. Cases
// outside 1-9 are ignored.
func (e Export) VennReport() *VennReport {
	report := &VennReport{
		Pairs:             e.QualifyingPairs,
		MissingDelta:      e.MissingDelta,
		SkippedFullRepair: e.SkippedFullRepair,
	}

	for _, share := range e.Cases {
		if c := VennCase(share.Case); c.Valid() {
			report.Weights[c-1] = share.Weight
		}
	}

	for _, pe := range e.Contributions {
		contribution := PairContribution{
			Key:        PairKey{ParentID: pe.Parent, ChildID: pe.Child},
			Candidates: pe.Candidates,
		}
		copy(contribution.Weights[:], pe.Weights)
		report.Contributions = append(report.Contributions, contribution)
	}

	return report
}
