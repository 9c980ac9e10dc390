package maze

import (
	"github.com/san-kum/mazelab/internal/grid"
)

var (
	origin   = grid.Coord{Row: 1, Col: 1}
	startPos = grid.Coord{Row: 1, Col: 0}
)

type Generator struct {
	shuffler Shuffler
}

func New(s Shuffler) *Generator {
	if s == nil {
		s = FixedOrder{}
	}
	return &Generator{shuffler: s}
}

// frame is one suspended level of the depth-first carve.
type frame struct {
	at   grid.Coord
	dirs [4]grid.Direction
	next int
}

// Generate carves a height×width maze. Even sizes are accepted; the stride of
// two simply leaves the last row or column partly open.
func (gen *Generator) Generate(height, width int) (*grid.Grid, error) {
	g, err := grid.New(height, width)
	if err != nil {
		return nil, err
	}

	stack := []frame{gen.enter(g, origin)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		n := top.at.Step(d, 2)
		if !carvable(g, n) {
			continue
		}
		g.Set(top.at.Add(d), grid.Path)
		stack = append(stack, gen.enter(g, n))
	}

	g.Set(startPos, grid.Start)
	g.Set(EndPos(height, width), grid.End)
	return g, nil
}

func (gen *Generator) enter(g *grid.Grid, at grid.Coord) frame {
	g.Set(at, grid.Path)
	f := frame{at: at, dirs: grid.Directions}
	gen.shuffler.Shuffle(f.dirs[:])
	return f
}

func carvable(g *grid.Grid, c grid.Coord) bool {
	return g.InBounds(c) && g.At(c) == grid.Wall
}

// StartPos is the fixed Start cell of every generated maze.
func StartPos() grid.Coord { return startPos }

// EndPos is the fixed End cell of a height×width maze.
func EndPos(height, width int) grid.Coord {
	return grid.Coord{Row: height - 2, Col: width - 1}
}

// NormalizeSize rounds n up to the next odd value no smaller than grid.MinSize.
func NormalizeSize(n int) int {
	if n < grid.MinSize {
		n = grid.MinSize
	}
	if n%2 == 0 {
		n++
	}
	return n
}

// FromSeed generates a maze of the normalized size with a seeded random
// shuffler. The same seed and size always yield the same maze.
func FromSeed(seed int64, height, width int) (*grid.Grid, error) {
	return New(NewRandomShuffler(seed)).Generate(NormalizeSize(height), NormalizeSize(width))
}
