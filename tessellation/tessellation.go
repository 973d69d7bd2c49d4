package tessellation

import (
	"gonum.org/v1/gonum/spatial/r2"
)

/*
Edge is a mesh face. Neighbors holds the cell index on each side, an index outside [0, PointNo)
means there is no cell on that side and the edge lies on the domain boundary.
*/
type Edge struct {
	Neighbors [2]int
	Vertices  [2]r2.Vec
}

// Parallel is the direction along the edge, from the first vertex to the second
func (e Edge) Parallel() r2.Vec {
	return r2.Sub(e.Vertices[1], e.Vertices[0])
}

func (e Edge) Length() float64 {
	return r2.Norm(e.Parallel())
}

func (e Edge) Centroid() r2.Vec {
	return r2.Scale(0.5, r2.Add(e.Vertices[0], e.Vertices[1]))
}

// Tessellation is the mesh as seen by the flux calculation. Implementations must be safe for concurrent reads.
type Tessellation interface {
	GetPointNo() int
	GetEdge(i int) Edge
	GetAllEdges() []Edge
	GetMeshPoint(i int) r2.Vec
	GetCellCM(i int) r2.Vec
	GetVolume(i int) float64
	CalcFaceVelocity(wA, wB, cmA, cmB, centroid r2.Vec) r2.Vec
}

// PhysicalGeometry maps planar mesh measures to the physical ones (slab or axisymmetric)
type PhysicalGeometry interface {
	CalcArea(e Edge) float64
	CalcVolume(tess Tessellation, i int) float64
}

// IsCell reports whether index refers to a real cell of a mesh with pointNo cells
func IsCell(index, pointNo int) bool {
	return index >= 0 && index < pointNo
}
