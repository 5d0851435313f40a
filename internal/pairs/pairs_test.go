package pairs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingyamilmolinar/matchup/core/model"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
	assert.Len(t, Default(), 4)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrNoPairs)
	assert.ErrorIs(t, Validate([]Pair{{ID: 1, Left: "a"}, {ID: 1, Left: "b"}}), ErrDuplicateID)
	assert.Error(t, Validate([]Pair{{ID: 1, Left: "  "}}))
}

func TestColumns(t *testing.T) {
	left, right := Columns([]Pair{{ID: 7, Left: "Kiwi", Right: "kiwi.png"}, {ID: 9, Left: "Plum", Right: "plum.png"}})
	assert.Equal(t, []model.Item{{ID: 7, Label: "Kiwi"}, {ID: 9, Label: "Plum"}}, left)
	assert.Equal(t, []model.Item{{ID: 7, Image: "kiwi.png"}, {ID: 9, Image: "plum.png"}}, right)
}

func TestShuffleIsPermutationAndSeeded(t *testing.T) {
	left, _ := Columns(Default())
	a := NewShuffler(42).Shuffle(left)
	b := NewShuffler(42).Shuffle(left)
	assert.Equal(t, a, b, "same seed, same order")
	assert.ElementsMatch(t, left, a)
	assert.Equal(t, model.ItemID(1), left[0].ID, "input untouched")
}

func TestShuffleVariesAcrossCalls(t *testing.T) {
	left, _ := Columns(append(Default(), Pair{ID: 5, Left: "Pear"}, Pair{ID: 6, Left: "Lime"}))
	s := NewShuffler(1)
	first := s.Shuffle(left)
	differs := false
	for i := 0; i < 20 && !differs; i++ {
		next := s.Shuffle(left)
		for j := range next {
			if next[j].ID != first[j].ID {
				differs = true
				break
			}
		}
	}
	assert.True(t, differs, "twenty shuffles of six items all equal")
}
