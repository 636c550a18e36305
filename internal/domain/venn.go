package domain

import (
	"errors"
	"fmt"

	m "mixvenn.dev/pkg/mixvenn/internal/model"
	"mixvenn.dev/pkg/mixvenn/pkg"
)

// ErrUnclassifiable is returned when no Venn case matches. The nine cases are
// exhaustive for sets, so seeing it means a logic fault.
var ErrUnclassifiable = errors.New("no venn case matched")

// Classify places the complemented repair p and the failing set f relative to
// each other and to the total delta d.
func Classify(d, p, f pkg.Set[string]) (m.VennCase, error) {
	c := classify(d, p, f)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: |D|=%d |P|=%d |F|=%d", ErrUnclassifiable, d.Len(), p.Len(), f.Len())
	}

	return c, nil
}

func classify(d, p, f pkg.Set[string]) m.VennCase {
	if d.Len() > p.Union(f).Len() {
		switch {
		case p.Equal(f):
			return m.CaseEqualInside
		case p.Disjoint(f):
			return m.CaseDisjointInside
		case f.ProperSubsetOf(p):
			return m.CaseFailInPassInside
		case p.ProperSubsetOf(f):
			return m.CasePassInFailInside
		default:
			return m.CaseOverlapInside
		}
	}

	switch {
	case p.Equal(f):
		return m.CaseEqualCovering
	case f.SubsetOf(p):
		return m.CaseFailInPassCovering
	case p.SubsetOf(f):
		return m.CasePassInFailCovering
	default:
		return m.CaseIncomparableCovering
	}
}
