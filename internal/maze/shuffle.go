package maze

import (
	"math/rand"

	"github.com/san-kum/mazelab/internal/grid"
)

// Shuffler reorders the direction table in place before a node is expanded.
type Shuffler interface {
	Shuffle(dirs []grid.Direction)
}

type RandomShuffler struct {
	rng *rand.Rand
}

func NewRandomShuffler(seed int64) *RandomShuffler {
	return &RandomShuffler{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomShuffler) Shuffle(dirs []grid.Direction) {
	s.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
}

// FixedOrder leaves the right, down, left, up order untouched.
type FixedOrder struct{}

func (FixedOrder) Shuffle([]grid.Direction) {}

// Sequence replays a scripted list of orders, one per expanded node, and falls
// back to the table order once exhausted.
type Sequence struct {
	orders [][4]grid.Direction
	next   int
}

func NewSequence(orders ...[4]grid.Direction) *Sequence {
	return &Sequence{orders: orders}
}

func (s *Sequence) Shuffle(dirs []grid.Direction) {
	if s.next >= len(s.orders) {
		return
	}
	copy(dirs, s.orders[s.next][:])
	s.next++
}
