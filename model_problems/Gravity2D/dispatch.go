package Gravity2D

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gravflux/hydro"
	"github.com/notargets/gravflux/tessellation"
	"github.com/notargets/gravflux/types"
	"github.com/notargets/gravflux/utils"
)

// faceFrame returns the normal (from side a toward side b) and the inward unit normal of a boundary face
func faceFrame(e tessellation.Edge, realPoint r2.Vec, leftReal bool) (n, inward, p r2.Vec) {
	p = e.Parallel()
	inward = utils.RemoveParallelComponent(r2.Sub(realPoint, e.Vertices[0]), p)
	if leftReal {
		n = r2.Scale(-1, inward)
	} else {
		n = inward
	}
	inward = r2.Unit(inward)
	return
}

/*
reflectRiemann solves a wall face against the mirrored state of its real cell. The ghost state is
pushed toward the real cell by support, which is zero for plain walls. Only momentum crosses a wall.
*/
func (gs *GravitySupport) reflectRiemann(tess tessellation.Tessellation, e tessellation.Edge, fc FaceClass,
	cells []types.ComputationalCell, eos hydro.EquationOfState, support float64) (flux types.Conserved) {
	var (
		inner        = eos.ToPrimitive(cells[fc.Cell])
		n, inward, p = faceFrame(e, tess.GetMeshPoint(fc.Cell), fc.LeftReal)
		ghost        = hydro.Reflect(inner, p)
		left, right  types.Primitive
	)
	ghost.Velocity = r2.Add(ghost.Velocity, r2.Scale(support, inward))
	if fc.LeftReal {
		left, right = inner, ghost
	} else {
		left, right = ghost, inner
	}
	flux = hydro.RotateSolveRotateBack(gs.rs, left, right, 0, n, p)
	flux.Mass, flux.Energy = 0, 0
	return
}

// supportFlux is the floor flux of the momentum support model, a pure upward momentum push on the real cell
func (gs *GravitySupport) supportFlux(fc FaceClass, support float64) (flux types.Conserved) {
	flux.Momentum = r2.Scale(support, gs.down)
	if !fc.LeftReal {
		flux = flux.Scale(-1)
	}
	return
}

func (gs *GravitySupport) regularRiemann(tess tessellation.Tessellation, e tessellation.Edge,
	pointVelocities []r2.Vec, cells []types.ComputationalCell, eos hydro.EquationOfState) (flux types.Conserved) {
	var (
		a, b     = e.Neighbors[0], e.Neighbors[1]
		cmA, cmB = tess.GetCellCM(a), tess.GetCellCM(b)
		centroid = e.Centroid()
		left     = eos.ToPrimitive(InterpolateToFace(cells[a], cmA, centroid, gs.Acceleration))
		right    = eos.ToPrimitive(InterpolateToFace(cells[b], cmB, centroid, gs.Acceleration))
		n        = r2.Sub(tess.GetMeshPoint(b), tess.GetMeshPoint(a))
		p        = e.Parallel()
		velocity float64
	)
	if pointVelocities != nil {
		velocity = utils.Projection(
			tess.CalcFaceVelocity(pointVelocities[a], pointVelocities[b], cmA, cmB, centroid), n)
	}
	flux = hydro.RotateSolveRotateBack(gs.rs, left, right, velocity, n, p)
	return
}

// calcHydroFlux dispatches one face to the flux treatment of its class
func (gs *GravitySupport) calcHydroFlux(tess tessellation.Tessellation, e tessellation.Edge,
	pointVelocities []r2.Vec, cells []types.ComputationalCell, eos hydro.EquationOfState,
	support float64) (flux types.Conserved, fc FaceClass) {
	fc = Classify(e, tess, gs.down)
	if !fc.Kind.IsBoundary() {
		flux = gs.regularRiemann(tess, e, pointVelocities, cells, eos)
		return
	}
	switch {
	case fc.Kind != types.FACE_LowerBoundary:
		flux = gs.reflectRiemann(tess, e, fc, cells, eos, 0)
	case gs.Model == SUPPORT_Momentum:
		flux = gs.supportFlux(fc, support)
	default:
		flux = gs.reflectRiemann(tess, e, fc, cells, eos, support)
	}
	return
}
