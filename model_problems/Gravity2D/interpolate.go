package Gravity2D

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gravflux/types"
)

/*
InterpolateToFace extrapolates a cell state from its center of mass to a face centroid assuming local
hydrostatic equilibrium: the pressure changes by rho * g.(centroid - cm), everything else is kept.
The input cell is not modified.
*/
func InterpolateToFace(cell types.ComputationalCell, cm, centroid, g r2.Vec) (res types.ComputationalCell) {
	res = cell
	res.Pressure += cell.Density * r2.Dot(g, r2.Sub(centroid, cm))
	return
}
