package Gravity2D

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gravflux/hydro"
	"github.com/notargets/gravflux/tessellation"
	"github.com/notargets/gravflux/types"
	"github.com/notargets/gravflux/utils"
)

/*
Calculate returns one flux record per face, in mesh face order. Fluxes are per unit face measure.
pointVelocities holds the mesh generating point velocities, nil for a static mesh.
time is accepted for interface compatibility with time dependent flux calculators and is not used.
Input problems are returned as errors, a face with no real cell on either side panics with a
*TopologyError.
*/
func (gs *GravitySupport) Calculate(tess tessellation.Tessellation, pointVelocities []r2.Vec,
	cells []types.ComputationalCell, extensives []types.Extensive, eos hydro.EquationOfState,
	time, dt float64) (fluxes []types.Extensive, err error) {
	var (
		pointNo = tess.GetPointNo()
		edges   = tess.GetAllEdges()
		names   []string
		support float64
	)
	if len(cells) != pointNo {
		err = fmt.Errorf("%w: have %d cells, mesh has %d points", ErrCellCount, len(cells), pointNo)
		return
	}
	if pointVelocities != nil && len(pointVelocities) != pointNo {
		err = fmt.Errorf("%w: have %d velocities, mesh has %d points",
			ErrPointVelocityCount, len(pointVelocities), pointNo)
		return
	}
	if names, err = checkTracers(cells); err != nil {
		return
	}
	if support, err = gs.calcSupport(extensives, dt); err != nil {
		return
	}
	fluxes = make([]types.Extensive, len(edges))
	pm := utils.NewPartitionMapCPU(gs.ProcLimit, len(edges))
	gs.Log.WithFields(logrus.Fields{
		"faces":           len(edges),
		"parallel_degree": pm.ParallelDegree,
		"support":         support,
	}).Debug("calculating face fluxes")
	pm.RunBuckets(func(bn, kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			e := edges[k]
			hf, _ := gs.calcHydroFlux(tess, e, pointVelocities, cells, eos, support)
			fluxes[k] = types.NewExtensive(hf, len(names))
			for _, name := range names {
				fluxes[k].Tracers[name] = calcTracerFlux(e, pointNo, cells, name, hf)
			}
		}
	})
	return
}
