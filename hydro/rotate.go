package hydro

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gravflux/types"
	"github.com/notargets/gravflux/utils"
)

// Rotate expresses the state velocity in the (n, p) face frame
func Rotate(q types.Primitive, n, p r2.Vec) types.Primitive {
	q.Velocity = utils.RotateToFrame(q.Velocity, n, p)
	return q
}

// RotateBack returns a face frame flux to the ambient frame
func RotateBack(c types.Conserved, n, p r2.Vec) types.Conserved {
	c.Momentum = utils.RotateBack(c.Momentum, n, p)
	return c
}

// Reflect mirrors the velocity of q across the face tangent p
func Reflect(q types.Primitive, p r2.Vec) types.Primitive {
	q.Velocity = utils.Reflect(q.Velocity, p)
	return q
}

/*
RotateSolveRotateBack solves the Riemann problem of a face with normal n and tangent p.
n points from the left state toward the right state, neither needs to be normalized.
*/
func RotateSolveRotateBack(rs RiemannSolver, left, right types.Primitive, velocity float64, n, p r2.Vec) types.Conserved {
	return RotateBack(rs.Solve(Rotate(left, n, p), Rotate(right, n, p), velocity), n, p)
}
