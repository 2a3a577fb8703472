package spatial

import (
	"math"

	"github.com/planarcdt/cdt/types"
)

// BinGrid buckets normalized points into a fixed cells_per_side x
// cells_per_side grid and replays them in boustrophedon (snake) order so the
// insertion engine's point-location walk stays spatially local.
//
// cells_per_side is fixed at construction to ceil(N^0.25) as specified by
// the pipeline driver; unlike HashGrid this is not an incremental index —
// it exists purely to produce an insertion order.
type BinGrid struct {
	cellsPerSide int
	bounds       types.AABB
	cells        [][]int // row-major, cells[row*cellsPerSide+col]
}

// NewBinGrid constructs a bin grid sized for n points over the given
// (already normalized) bounding box.
func NewBinGrid(n int, bounds types.AABB) *BinGrid {
	side := int(math.Ceil(math.Sqrt(math.Sqrt(float64(n)))))
	if side < 1 {
		side = 1
	}
	return &BinGrid{
		cellsPerSide: side,
		bounds:       bounds,
		cells:        make([][]int, side*side),
	}
}

// CellsPerSide returns the grid's fixed side length.
func (g *BinGrid) CellsPerSide() int {
	return g.cellsPerSide
}

// AddPoint appends the point index idx to the cell containing p. Indices
// are clamped to [0, cellsPerSide) so points on or slightly outside the
// recorded bounds still land in a valid cell.
func (g *BinGrid) AddPoint(idx int, p types.Point) {
	col, row := g.cellOf(p)
	i := row*g.cellsPerSide + col
	g.cells[i] = append(g.cells[i], idx)
}

func (g *BinGrid) cellOf(p types.Point) (col, row int) {
	w := g.bounds.Width()
	h := g.bounds.Height()
	side := g.cellsPerSide

	col = 0
	if w > 0 {
		col = int(((p.X - g.bounds.Min.X) / w) * float64(side))
	}
	row = 0
	if h > 0 {
		row = int(((p.Y - g.bounds.Min.Y) / h) * float64(side))
	}
	if col < 0 {
		col = 0
	}
	if col >= side {
		col = side - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= side {
		row = side - 1
	}
	return col, row
}

// Ordered returns all added point indices in boustrophedon cell order:
// bottom-to-top rows, alternating left-to-right and right-to-left.
func (g *BinGrid) Ordered() []int {
	var out []int
	for row := 0; row < g.cellsPerSide; row++ {
		if row%2 == 0 {
			for col := 0; col < g.cellsPerSide; col++ {
				out = append(out, g.cells[row*g.cellsPerSide+col]...)
			}
		} else {
			for col := g.cellsPerSide - 1; col >= 0; col-- {
				out = append(out, g.cells[row*g.cellsPerSide+col]...)
			}
		}
	}
	return out
}
