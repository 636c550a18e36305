package model

import "fmt"

// VennCase is one of the nine relationships between the total delta D, a
// complemented repair P and a minimal failing set F.
type VennCase int

// The nine cases. Cases 1, 2, 4, 6 and 8 leave part of D outside P ∪ F.
const (
	CaseEqualInside VennCase = iota + 1
	CaseDisjointInside
	CaseIncomparableCovering
	CaseOverlapInside
	CaseFailInPassCovering
	CaseFailInPassInside
	CasePassInFailCovering
	CasePassInFailInside
	CaseEqualCovering
)

// VennCaseCount is the number of Venn cases.
const VennCaseCount = 9

// AllVennCases lists the cases in numeric order.
func AllVennCases() []VennCase {
	cases := make([]VennCase, 0, VennCaseCount)
	for c := CaseEqualInside; c <= CaseEqualCovering; c++ {
		cases = append(cases, c)
	}

	return cases
}

// Valid reports whether c is one of the nine cases.
func (c VennCase) Valid() bool {
	return c >= CaseEqualInside && c <= CaseEqualCovering
}

func (c VennCase) String() string {
	return fmt.Sprintf("case %d", int(c))
}

// Description explains the relationship the case stands for.
func (c VennCase) Description() string {
	switch c {
	case CaseEqualInside:
		return "P = F, both strictly inside D"
	case CaseDisjointInside:
		return "P and F disjoint, D not covered"
	case CaseIncomparableCovering:
		return "neither contains the other, P ∪ F covers D"
	case CaseOverlapInside:
		return "P and F overlap, D not covered"
	case CaseFailInPassCovering:
		return "F ⊂ P, P ∪ F covers D"
	case CaseFailInPassInside:
		return "F ⊂ P, D not covered"
	case CasePassInFailCovering:
		return "P ⊂ F, P ∪ F covers D"
	case CasePassInFailInside:
		return "P ⊂ F, D not covered"
	case CaseEqualCovering:
		return "P = F = D"
	}

	return "undefined"
}

// PairContribution is the weight one revision pair added to each case.
type PairContribution struct {
	Key        PairKey
	Candidates int
	Weights    [VennCaseCount]float64
}

// Total returns the sum of the pair's weights.
func (p PairContribution) Total() float64 {
	total := 0.0
	for _, w := range p.Weights {
		total += w
	}

	return total
}

// VennReport is the weighted Venn classification of a corpus.
type VennReport struct {
	Weights           [VennCaseCount]float64
	Pairs             int
	MissingDelta      int
	SkippedFullRepair int
	Contributions     []PairContribution
}

// Weight returns the accumulated weight of c.
func (r *VennReport) Weight(c VennCase) float64 {
	if !c.Valid() {
		return 0
	}

	return r.Weights[c-1]
}

// Percent returns the share of qualifying pairs classified as c, 0-100.
func (r *VennReport) Percent(c VennCase) float64 {
	if r.Pairs == 0 {
		return 0
	}

	return r.Weight(c) / float64(r.Pairs) * 100
}

// Summary describes a parsed corpus.
type Summary struct {
	Pairs           int
	Mixes           int
	RepairedPairs   int
	FlipFixes       int
	Deltas          int
	UnmatchedDeltas int // deltas whose revision pair has no log entries
	Rejects         int
}

// PairRow is a one-line description of a revision pair.
type PairRow struct {
	Key       PairKey
	Mixes     int
	Repaired  bool
	HasDelta  bool
	DeltaSize int
	DeltaP    int
	DeltaPBar int
	DeltaF    int
	Anomalies int
}

// Reject describes an input line that was skipped.
type Reject struct {
	File   string
	Line   int
	Reason string
}

func (r Reject) String() string {
	return fmt.Sprintf("%s:%d: %s", r.File, r.Line, r.Reason)
}
