package Gravity2D

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gravflux/tessellation"
	"github.com/notargets/gravflux/types"
)

// TopologyError is raised (as a panic value) for a face with no real cell on either side
type TopologyError struct {
	Neighbors [2]int
	PointNo   int
}

func (te *TopologyError) Error() string {
	return fmt.Sprintf("face has no real cell on either side: neighbors %v, valid range [0,%d)",
		te.Neighbors, te.PointNo)
}

/*
FaceClass is the classification of one face. For boundary faces Cell is the real cell index and
LeftReal reports whether it sits on the first (neighbor_a) side.
*/
type FaceClass struct {
	Kind     types.FaceKind
	Cell     int
	LeftReal bool
}

func checkBoundaryEdge(e tessellation.Edge, pointNo int) (isBoundary bool, cell int, leftReal bool) {
	var (
		a, b = tessellation.IsCell(e.Neighbors[0], pointNo), tessellation.IsCell(e.Neighbors[1], pointNo)
	)
	switch {
	case a && b:
		return false, 0, false
	case a:
		return true, e.Neighbors[0], true
	case b:
		return true, e.Neighbors[1], false
	}
	panic(&TopologyError{Neighbors: e.Neighbors, PointNo: pointNo})
}

// height is the elevation against gravity, down is the unit gravity direction
func height(x, down r2.Vec) float64 {
	return -r2.Dot(x, down)
}

// isAbove reports whether the mesh point lies strictly above both edge vertices
func isAbove(mp r2.Vec, e tessellation.Edge, down r2.Vec) bool {
	h := height(mp, down)
	return h > height(e.Vertices[0], down) && h > height(e.Vertices[1], down)
}

/*
Classify splits faces into interior, lower boundary (floor) and other boundary faces.
A boundary face is a floor when its real cell's mesh point is strictly above both vertices.
With zero gravity no face is a floor. Panics with a *TopologyError when neither side is real.
*/
func Classify(e tessellation.Edge, tess tessellation.Tessellation, down r2.Vec) (fc FaceClass) {
	isBoundary, cell, leftReal := checkBoundaryEdge(e, tess.GetPointNo())
	if !isBoundary {
		return FaceClass{Kind: types.FACE_Interior}
	}
	fc = FaceClass{Kind: types.FACE_OtherBoundary, Cell: cell, LeftReal: leftReal}
	if isAbove(tess.GetMeshPoint(cell), e, down) {
		fc.Kind = types.FACE_LowerBoundary
	}
	return
}

func downDirection(acceleration r2.Vec) r2.Vec {
	if r2.Norm(acceleration) == 0 {
		return r2.Vec{}
	}
	return r2.Unit(acceleration)
}
