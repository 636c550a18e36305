package model

import (
	"fmt"
	"strings"

	"mixvenn.dev/pkg/mixvenn/pkg"
)

// MixedRevision is a child revision with a subset of the parent/child
// difference reverted, together with the tests run on it.
type MixedRevision struct {
	ID         int
	Reverted   []ChangedFile
	Outcomes   []TestOutcome
	Compilable bool
}

// FileSet returns the reverted paths as a fresh set.
func (m *MixedRevision) FileSet() pkg.Set[string] {
	return PathSet(m.Reverted)
}

// IsRepaired reports whether the mix compiles, repairs at least one flip
// and breaks no test.
func (m *MixedRevision) IsRepaired() bool {
	if !m.Compilable {
		return false
	}

	repaired := false

	for _, outcome := range m.Outcomes {
		if outcome.BreaksTest() {
			return false
		}

		if outcome.RepairsFlip() {
			repaired = true
		}
	}

	return repaired
}

// RepairsAnyFlip reports whether at least one outcome repairs a flip,
// regardless of broken tests.
func (m *MixedRevision) RepairsAnyFlip() bool {
	for _, outcome := range m.Outcomes {
		if outcome.RepairsFlip() {
			return true
		}
	}

	return false
}

// WithReverted returns a copy of m sharing its ID, outcomes and compilable flag
// but reverting files instead. Nothing is aliased with m.
func (m *MixedRevision) WithReverted(files []ChangedFile) *MixedRevision {
	reverted := make([]ChangedFile, len(files))
	copy(reverted, files)

	outcomes := make([]TestOutcome, len(m.Outcomes))
	copy(outcomes, m.Outcomes)

	return &MixedRevision{
		ID:         m.ID,
		Reverted:   reverted,
		Outcomes:   outcomes,
		Compilable: m.Compilable,
	}
}

func (m *MixedRevision) String() string {
	files := make([]string, 0, len(m.Reverted))
	for _, f := range m.Reverted {
		files = append(files, f.String())
	}

	return fmt.Sprintf("Mixed Revision: %d\nChanged files: %s", m.ID, strings.Join(files, ", "))
}
