package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planarcdt/cdt/spatial"
	"github.com/planarcdt/cdt/types"
)

func TestHashGridFindNearWithinRadius(t *testing.T) {
	g := spatial.NewHashGrid(1.0)
	g.Add(0, types.Point{X: 0, Y: 0})
	g.Add(1, types.Point{X: 0.05, Y: -0.05})
	g.Add(2, types.Point{X: 10, Y: 10})

	near := g.FindNear(types.Point{X: 0, Y: 0}, 0.5)
	assert.ElementsMatch(t, []int{0, 1}, near)
}

func TestHashGridFindNearExcludesDistantPoints(t *testing.T) {
	g := spatial.NewHashGrid(1.0)
	g.Add(0, types.Point{X: 0, Y: 0})
	g.Add(1, types.Point{X: 10, Y: 10})

	near := g.FindNear(types.Point{X: 0, Y: 0}, 0.5)
	assert.Equal(t, []int{0}, near)
}

func TestHashGridZeroRadiusLooksUpExactCell(t *testing.T) {
	g := spatial.NewHashGrid(2.0)
	g.Add(5, types.Point{X: 1, Y: 1})

	near := g.FindNear(types.Point{X: 1.5, Y: 0.5}, 0)
	assert.Equal(t, []int{5}, near)
}
