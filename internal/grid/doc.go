// Package grid provides the cell matrix shared by maze generation and search.
//
// The package defines the primitives every other part of mazelab works on:
//
//   - [Cell]: the state of one grid position (wall, open path, start, end,
//     visited, path found)
//   - [Coord]: a (row, col) position, usable directly as a map key
//   - [Direction]: the fixed right, down, left, up neighbor table
//   - [Grid]: a fixed-size H×W matrix of cells
//
// # Example
//
//	g, _ := grid.New(5, 5)
//	g.Set(grid.Coord{Row: 1, Col: 1}, grid.Path)
//	fmt.Print(g)
//
// # Ownership
//
// A Grid is not safe for concurrent mutation. Search runs read a private
// [Grid.Clone]; only the animation driver writes to the display copy.
package grid
