package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	t.Run("NewSet drops duplicates and keeps first-seen order", func(t *testing.T) {
		s := NewSet("b", "a", "b", "c", "a")
		require.Equal(t, 3, s.Len())
		assert.Equal(t, []string{"b", "a", "c"}, s.Items())
	})

	t.Run("zero value is usable", func(t *testing.T) {
		var s Set[int]
		assert.Equal(t, 0, s.Len())
		assert.False(t, s.Contains(1))
		assert.True(t, s.Add(1))
		assert.False(t, s.Add(1))
		assert.True(t, s.Contains(1))
	})

	t.Run("Items returns a copy", func(t *testing.T) {
		s := NewSet(1, 2)
		items := s.Items()
		items[0] = 99

		assert.Equal(t, []int{1, 2}, s.Items())
	})

	t.Run("Union keeps order of receiver first", func(t *testing.T) {
		u := NewSet("a", "b").Union(NewSet("c", "a"))
		assert.Equal(t, []string{"a", "b", "c"}, u.Items())
	})

	t.Run("Intersect and Difference follow receiver order", func(t *testing.T) {
		s := NewSet("a", "b", "c", "d")
		o := NewSet("d", "b", "x")

		assert.Equal(t, []string{"b", "d"}, s.Intersect(o).Items())
		assert.Equal(t, []string{"a", "c"}, s.Difference(o).Items())
	})
}

func TestSetRelations(t *testing.T) {
	tests := []struct {
		name     string
		s, o     Set[string]
		subset   bool
		proper   bool
		equal    bool
		disjoint bool
	}{
		{"both empty", NewSet[string](), NewSet[string](), true, false, true, true},
		{"empty in non-empty", NewSet[string](), NewSet("a"), true, true, false, true},
		{"same keys different order", NewSet("a", "b"), NewSet("b", "a"), true, false, true, false},
		{"strict subset", NewSet("a"), NewSet("a", "b"), true, true, false, false},
		{"superset", NewSet("a", "b"), NewSet("a"), false, false, false, false},
		{"overlap", NewSet("a", "b"), NewSet("b", "c"), false, false, false, false},
		{"disjoint", NewSet("a"), NewSet("b"), false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.subset, tt.s.SubsetOf(tt.o), "subset")
			assert.Equal(t, tt.proper, tt.s.ProperSubsetOf(tt.o), "proper subset")
			assert.Equal(t, tt.equal, tt.s.Equal(tt.o), "equal")
			assert.Equal(t, tt.disjoint, tt.s.Disjoint(tt.o), "disjoint")
		})
	}
}
