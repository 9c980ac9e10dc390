package search

import "github.com/san-kum/mazelab/internal/grid"

type frontier interface {
	push(c grid.Coord)
	pop() grid.Coord
	len() int
}

// queue pops from the front.
type queue struct {
	items []grid.Coord
	head  int
}

func (q *queue) push(c grid.Coord) { q.items = append(q.items, c) }

func (q *queue) pop() grid.Coord {
	c := q.items[q.head]
	q.head++
	if q.head > len(q.items)/2 && q.head > 32 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return c
}

func (q *queue) len() int { return len(q.items) - q.head }

// stack pops from the top.
type stack struct {
	items []grid.Coord
}

func (s *stack) push(c grid.Coord) { s.items = append(s.items, c) }

func (s *stack) pop() grid.Coord {
	c := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return c
}

func (s *stack) len() int { return len(s.items) }
