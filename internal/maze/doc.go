// Package maze generates rectangular mazes by randomized backtracking.
//
// Odd coordinates (2i+1, 2j+1) are the graph nodes. Starting from (1,1) the
// generator carves each node it enters, shuffles the direction table, and
// descends into every neighbor node two cells away that is still a wall,
// carving the connecting cell on the way. Start is forced to (1,0) and End to
// (H-2, W-1) once carving finishes.
//
// The walk uses an explicit stack of frames instead of recursion, so large
// grids cannot exhaust the call stack. Node order and shuffle draws match the
// recursive form exactly, which keeps seeded mazes reproducible.
//
//	gen := maze.New(maze.NewRandomShuffler(42))
//	g, err := gen.Generate(17, 17)
package maze
