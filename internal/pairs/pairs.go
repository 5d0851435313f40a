// Package pairs holds the list of items a round is played with.
package pairs

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ingyamilmolinar/matchup/core/model"
)

var (
	ErrNoPairs     = errors.New("no pairs configured")
	ErrDuplicateID = errors.New("duplicate pair id")
)

// Pair is one {id, left label, right image} triple as found in the config
// file.
type Pair struct {
	ID    int    `mapstructure:"id"`
	Left  string `mapstructure:"left"`
	Right string `mapstructure:"right"`
}

// Default is the built-in fruit set.
func Default() []Pair {
	return []Pair{
		{ID: 1, Left: "Apple", Right: "https://www.shutterstock.com/image-photo/red-apple-isolated-on-white-600nw-1727544364.jpg"},
		{ID: 2, Left: "Banana", Right: "https://w7.pngwing.com/pngs/186/294/png-transparent-banana-a-banana-food-banana-leaves-cartoon-thumbnail.png"},
		{ID: 3, Left: "Grapes", Right: "https://i.pinimg.com/originals/7a/38/e7/7a38e7207389f22a6a27f4e095807792.png"},
		{ID: 4, Left: "Orange", Right: "https://pngfre.com/wp-content/uploads/orange-poster.png"},
	}
}

// Validate checks that the list is non-empty and IDs are unique.
func Validate(ps []Pair) error {
	if len(ps) == 0 {
		return ErrNoPairs
	}
	seen := make(map[int]struct{}, len(ps))
	for i, p := range ps {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("pair %d: %w: %d", i, ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
		if strings.TrimSpace(p.Left) == "" {
			return fmt.Errorf("pair %d (id %d): empty left label", i, p.ID)
		}
	}
	return nil
}

// Columns splits pairs into the left and right item columns, keeping input
// order.
func Columns(ps []Pair) (left, right []model.Item) {
	left = make([]model.Item, len(ps))
	right = make([]model.Item, len(ps))
	for i, p := range ps {
		left[i] = model.Item{ID: model.ItemID(p.ID), Label: p.Left}
		right[i] = model.Item{ID: model.ItemID(p.ID), Image: p.Right}
	}
	return left, right
}

// Shuffler randomises column order. Each column is shuffled independently so
// a row's position says nothing about its partner.
type Shuffler struct {
	rng *rand.Rand
}

// NewShuffler seeds a shuffler. The same seed always yields the same
// sequence of orders.
func NewShuffler(seed uint64) *Shuffler {
	return &Shuffler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Shuffler) Shuffle(items []model.Item) []model.Item {
	out := append([]model.Item(nil), items...)
	s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
