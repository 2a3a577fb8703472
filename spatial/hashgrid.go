// Package spatial provides spatial-hashing structures used to accelerate
// vertex lookups and to order point insertion for locality.
package spatial

import (
	"math"

	"github.com/planarcdt/cdt/types"
)

// HashGrid is a uniform spatial hash over points, keyed by cell. It backs
// the optional vertex-merging pre-pass of cdt.Triangulate, finding nearby
// candidate points without a linear scan of every point kept so far.
type HashGrid struct {
	cellSize float64
	cells    map[[2]int][]int
}

// NewHashGrid creates a hash grid index with the given cell size.
func NewHashGrid(cellSize float64) *HashGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &HashGrid{
		cellSize: cellSize,
		cells:    make(map[[2]int][]int),
	}
}

// FindNear returns point indices in cells overlapping the query radius.
func (h *HashGrid) FindNear(p types.Point, radius float64) []int {
	if radius < 0 {
		radius = 0
	}
	if radius == 0 {
		cell := h.pointToCell(p)
		return append([]int(nil), h.cells[cell]...)
	}

	min := h.pointToCell(types.Point{X: p.X - radius, Y: p.Y - radius})
	max := h.pointToCell(types.Point{X: p.X + radius, Y: p.Y + radius})

	var result []int
	for cy := min[1]; cy <= max[1]; cy++ {
		for cx := min[0]; cx <= max[0]; cx++ {
			if idxs, ok := h.cells[[2]int{cx, cy}]; ok {
				result = append(result, idxs...)
			}
		}
	}
	return result
}

// Add inserts a point index into its bucket.
func (h *HashGrid) Add(idx int, p types.Point) {
	cell := h.pointToCell(p)
	h.cells[cell] = append(h.cells[cell], idx)
}

func (h *HashGrid) pointToCell(p types.Point) [2]int {
	return [2]int{
		int(math.Floor(p.X / h.cellSize)),
		int(math.Floor(p.Y / h.cellSize)),
	}
}
