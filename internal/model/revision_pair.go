package model

import (
	"fmt"

	"mixvenn.dev/pkg/mixvenn/pkg"
)

// RevisionPair groups the mixed revisions built between a parent and a child.
// It is not modified after the builder returns it; every query below derives
// new values.
type RevisionPair struct {
	ParentID string
	ChildID  string
	Mixes    []*MixedRevision
}

// Key returns the identifying pair key.
func (p *RevisionPair) Key() PairKey {
	return PairKey{ParentID: p.ParentID, ChildID: p.ChildID}
}

// Repairs returns the mixes that repair a flip without breaking a test.
func (p *RevisionPair) Repairs() []*MixedRevision {
	var repairs []*MixedRevision

	for _, mix := range p.Mixes {
		if mix.IsRepaired() {
			repairs = append(repairs, mix)
		}
	}

	return repairs
}

// IsRepaired reports whether any mix of the pair repairs it.
func (p *RevisionPair) IsRepaired() bool {
	return len(p.Repairs()) > 0
}

// BrokenMixes returns the compilable mixes that do not repair the pair.
func (p *RevisionPair) BrokenMixes() []*MixedRevision {
	var broken []*MixedRevision

	for _, mix := range p.Mixes {
		if mix.Compilable && !mix.IsRepaired() {
			broken = append(broken, mix)
		}
	}

	return broken
}

// DeltaP returns the repairing mixes with the largest reverted set. Ties are all kept.
func (p *RevisionPair) DeltaP() []*MixedRevision {
	var (
		largest []*MixedRevision
		size    = -1
	)

	for _, mix := range p.Repairs() {
		switch n := len(mix.Reverted); {
		case n > size:
			size = n
			largest = []*MixedRevision{mix}
		case n == size:
			largest = append(largest, mix)
		}
	}

	return largest
}

// DeltaPBar complements every DeltaP member inside delta. A complement is kept
// only when some compilable mix of the pair reverted exactly that file set,
// since an untested complement has no known outcome.
func (p *RevisionPair) DeltaPBar(delta *Delta) []*MixedRevision {
	if delta == nil {
		return nil
	}

	observed := make([]pkg.Set[string], 0, len(p.Mixes))
	for _, mix := range p.Mixes {
		if mix.Compilable {
			observed = append(observed, mix.FileSet())
		}
	}

	var complements []*MixedRevision

	total := delta.FileSet()

	for _, mix := range p.DeltaP() {
		restSet := total.Difference(mix.FileSet())

		rest := make([]ChangedFile, 0, restSet.Len())
		for _, f := range delta.Total {
			if restSet.Contains(f.Path) {
				rest = append(rest, f)
			}
		}

		for _, set := range observed {
			if set.Equal(restSet) {
				complements = append(complements, mix.WithReverted(rest))
				break
			}
		}
	}

	return complements
}

// DeltaF returns the non-repairing compilable mixes with the smallest reverted
// set, considering only sets no larger than the delta. Ties are all kept.
func (p *RevisionPair) DeltaF(delta *Delta) []*MixedRevision {
	if delta == nil {
		return nil
	}

	var smallest []*MixedRevision

	size := len(delta.Total)

	for _, mix := range p.BrokenMixes() {
		switch n := len(mix.Reverted); {
		case n < size:
			size = n
			smallest = []*MixedRevision{mix}
		case n == size:
			smallest = append(smallest, mix)
		}
	}

	return smallest
}

// Anomalies returns the reverted files that the delta does not list.
func (p *RevisionPair) Anomalies(delta *Delta) []ChangedFile {
	if delta == nil {
		return nil
	}

	known := delta.FileSet()
	seen := pkg.NewSet[string]()

	var anomalies []ChangedFile

	for _, mix := range p.Mixes {
		for _, f := range mix.Reverted {
			if known.Contains(f.Path) || !seen.Add(f.Path) {
				continue
			}

			anomalies = append(anomalies, f)
		}
	}

	return anomalies
}

func (p *RevisionPair) String() string {
	return fmt.Sprintf("Revision Pair: %s, %s\tMixed Revisions: %d", p.ParentID, p.ChildID, len(p.Mixes))
}
