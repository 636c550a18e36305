package model

import (
	"mixvenn.dev/pkg/mixvenn/pkg"
)

// PairKey identifies a revision pair.
type PairKey struct {
	ParentID string
	ChildID  string
}

func (k PairKey) String() string {
	return k.ParentID + ".." + k.ChildID
}

// Delta is the complete non-test file difference between two revisions.
type Delta struct {
	ParentID string
	ChildID  string
	Total    []ChangedFile
}

// Key returns the pair key of the delta.
func (d *Delta) Key() PairKey {
	return PairKey{ParentID: d.ParentID, ChildID: d.ChildID}
}

// FileSet returns the delta paths as a fresh set.
func (d *Delta) FileSet() pkg.Set[string] {
	return PathSet(d.Total)
}

// DeltaIndex looks up deltas by revision pair. It is read-only once built.
type DeltaIndex struct {
	order   []PairKey
	entries map[PairKey]*Delta
}

// NewDeltaIndex creates an empty index.
func NewDeltaIndex() *DeltaIndex {
	return &DeltaIndex{entries: make(map[PairKey]*Delta)}
}

// Add stores d and reports whether its key was new. An existing entry is kept.
func (x *DeltaIndex) Add(d Delta) bool {
	key := d.Key()
	if _, ok := x.entries[key]; ok {
		return false
	}

	stored := d
	x.entries[key] = &stored
	x.order = append(x.order, key)

	return true
}

// Lookup returns the delta for key and whether it exists.
func (x *DeltaIndex) Lookup(key PairKey) (*Delta, bool) {
	if x == nil {
		return nil, false
	}

	d, ok := x.entries[key]

	return d, ok
}

// Len returns the number of deltas.
func (x *DeltaIndex) Len() int {
	if x == nil {
		return 0
	}

	return len(x.order)
}

// Deltas returns the deltas in file order.
func (x *DeltaIndex) Deltas() []*Delta {
	if x == nil {
		return nil
	}

	out := make([]*Delta, 0, len(x.order))
	for _, key := range x.order {
		out = append(out, x.entries[key])
	}

	return out
}
