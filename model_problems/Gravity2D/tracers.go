package Gravity2D

import (
	"fmt"

	"github.com/ctessum/atmos/advect"

	"github.com/notargets/gravflux/tessellation"
	"github.com/notargets/gravflux/types"
)

/*
calcTracerFlux is the upwind flux of one tracer through a face: the mass flux times the concentration
of the donor cell. A missing donor (boundary side) carries no tracer.
*/
func calcTracerFlux(e tessellation.Edge, pointNo int, cells []types.ComputationalCell, name string,
	hf types.Conserved) float64 {
	var (
		cA, cB float64
	)
	if a := e.Neighbors[0]; tessellation.IsCell(a, pointNo) {
		cA = cells[a].Tracers[name]
	}
	if b := e.Neighbors[1]; tessellation.IsCell(b, pointNo) {
		cB = cells[b].Tracers[name]
	}
	if hf.Mass == 0 {
		return 0
	}
	return advect.UpwindFlux(hf.Mass, cA, cB, 1)
}

// checkTracers verifies that every cell carries exactly the tracer names of the first cell
func checkTracers(cells []types.ComputationalCell) (names []string, err error) {
	if len(cells) == 0 {
		return
	}
	names = cells[0].TracerNames()
	for i, cell := range cells[1:] {
		if len(cell.Tracers) != len(names) {
			err = fmt.Errorf("%w: cell %d has %d tracers, cell 0 has %d",
				ErrTracerMismatch, i+1, len(cell.Tracers), len(names))
			return
		}
		for _, name := range names {
			if _, ok := cell.Tracers[name]; !ok {
				err = fmt.Errorf("%w: cell %d is missing tracer %q", ErrTracerMismatch, i+1, name)
				return
			}
		}
	}
	return
}
