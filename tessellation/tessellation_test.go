package tessellation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestCartesian(t *testing.T) {
	var (
		lower, upper = r2.Vec{X: -0.05}, r2.Vec{X: 0.05, Y: 1}
		cm           = NewCartesian(5, 100, lower, upper)
		dx, dy       = cm.CellSize()
	)
	{ // Counts and geometry
		require.Equal(t, 500, cm.GetPointNo())
		require.Equal(t, 6*100+5*101, len(cm.GetAllEdges()))
		assert.InDelta(t, 0.02, dx, 1.e-15)
		assert.InDelta(t, 0.01, dy, 1.e-15)
		assert.InDelta(t, 0.0002, cm.GetVolume(7), 1.e-18)
		p := cm.GetMeshPoint(cm.index(2, 3))
		assert.InDelta(t, 0., p.X, 1.e-15)
		assert.InDelta(t, 0.035, p.Y, 1.e-15)
		assert.Equal(t, p, cm.GetCellCM(cm.index(2, 3)))
	}
	{ // Every edge has at least one real cell and boundary edges have exactly one
		var nBoundary int
		for _, e := range cm.GetAllEdges() {
			a, b := IsCell(e.Neighbors[0], cm.GetPointNo()), IsCell(e.Neighbors[1], cm.GetPointNo())
			require.True(t, a || b)
			if a != b {
				nBoundary++
			}
		}
		assert.Equal(t, 2*100+2*5, nBoundary)
	}
	{ // Bottom edges have the missing side first, top edges last
		bottom := cm.GetEdge(6 * 100)
		assert.Equal(t, [2]int{-1, 0}, bottom.Neighbors)
		assert.InDelta(t, 0., bottom.Centroid().Y, 1.e-15)
		top := cm.GetEdge(len(cm.GetAllEdges()) - 1)
		assert.Equal(t, [2]int{499, -1}, top.Neighbors)
		assert.InDelta(t, 1., top.Centroid().Y, 1.e-15)
		left := cm.GetEdge(0)
		assert.Equal(t, [2]int{-1, 0}, left.Neighbors)
		assert.InDelta(t, dy, left.Length(), 1.e-15)
		assert.Equal(t, r2.Vec{X: 0, Y: dy}, left.Parallel())
	}
	{ // Face velocity
		assert.Equal(t, r2.Vec{}, cm.CalcFaceVelocity(r2.Vec{}, r2.Vec{}, r2.Vec{}, r2.Vec{X: 1}, r2.Vec{X: 0.5}))
		w := cm.CalcFaceVelocity(r2.Vec{X: 1}, r2.Vec{X: 1}, r2.Vec{}, r2.Vec{X: 1}, r2.Vec{X: 0.5, Y: 0.2})
		assert.Equal(t, r2.Vec{X: 1}, w)
		// Points approaching each other: the face at the midpoint moves with the mean
		w = cm.CalcFaceVelocity(r2.Vec{X: 1}, r2.Vec{X: -1}, r2.Vec{}, r2.Vec{X: 1}, r2.Vec{X: 0.5})
		assert.Equal(t, r2.Vec{}, w)
		// Off-center face picks up the correction
		w = cm.CalcFaceVelocity(r2.Vec{X: 1}, r2.Vec{X: -1}, r2.Vec{}, r2.Vec{X: 1}, r2.Vec{X: 0.75})
		assert.InDelta(t, 0.5, w.X, 1.e-15)
	}
	assert.Panics(t, func() { NewCartesian(0, 1, lower, upper) })
	assert.Panics(t, func() { NewCartesian(1, 1, upper, lower) })
}

func TestGeometry(t *testing.T) {
	var (
		cm = NewCartesian(2, 2, r2.Vec{X: 1}, r2.Vec{X: 3, Y: 2})
		e  = Edge{Vertices: [2]r2.Vec{{X: 1}, {X: 1, Y: 2}}}
	)
	{
		var pg PhysicalGeometry = SlabSymmetry{}
		assert.Equal(t, 2., pg.CalcArea(e))
		assert.Equal(t, 1., pg.CalcVolume(cm, 0))
	}
	{ // Revolving around the y axis
		pg := NewPhysicalGeometry("cylindrical")
		assert.InDelta(t, 2*math.Pi*1*2, pg.CalcArea(e), 1.e-13)
		assert.InDelta(t, 2*math.Pi*1.5*1, pg.CalcVolume(cm, 0), 1.e-13)
		assert.InDelta(t, 2*math.Pi*2.5*1, pg.CalcVolume(cm, 1), 1.e-13)
	}
	assert.Equal(t, SlabSymmetry{}, NewPhysicalGeometry(""))
	assert.Equal(t, SlabSymmetry{}, NewPhysicalGeometry("Planar"))
	assert.Panics(t, func() { NewPhysicalGeometry("spherical") })
	assert.Panics(t, func() { NewCylindricalSymmetry(r2.Vec{}, r2.Vec{}) })
	assert.True(t, IsCell(0, 1))
	assert.False(t, IsCell(1, 1))
	assert.False(t, IsCell(-1, 1))
}
