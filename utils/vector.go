package utils

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Projection returns the length of v along the direction of n, n need not be normalized
func Projection(v, n r2.Vec) float64 {
	return r2.Dot(v, n) / r2.Norm(n)
}

// RemoveParallelComponent strips the part of v that lies along p
func RemoveParallelComponent(v, p r2.Vec) r2.Vec {
	return r2.Sub(v, r2.Scale(r2.Dot(v, p)/r2.Norm2(p), p))
}

/*
Reflect mirrors v across the axis: the component along axis is kept and the
perpendicular component changes sign.
*/
func Reflect(v, axis r2.Vec) r2.Vec {
	return r2.Sub(r2.Scale(2*r2.Dot(v, axis)/r2.Norm2(axis), axis), v)
}

// RotateToFrame expresses v in the (n, p) frame: X along n, Y along p.
func RotateToFrame(v, n, p r2.Vec) r2.Vec {
	return r2.Vec{X: Projection(v, n), Y: Projection(v, p)}
}

// RotateBack is the inverse of RotateToFrame when n and p are orthogonal
func RotateBack(v, n, p r2.Vec) r2.Vec {
	return r2.Add(r2.Scale(v.X/r2.Norm(n), n), r2.Scale(v.Y/r2.Norm(p), p))
}

// IsDegenerate reports a direction too short to normalize
func IsDegenerate(v r2.Vec) bool {
	return r2.Norm(v) < NODETOL || math.IsNaN(v.X) || math.IsNaN(v.Y)
}

func VecNear(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
