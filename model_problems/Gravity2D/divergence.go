package Gravity2D

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gravflux/tessellation"
	"github.com/notargets/gravflux/types"
)

/*
FluxDivergence sums face fluxes into per cell rates of change. Row i of the incidence matrix holds
-area for faces that leave cell i (cell i on the first side) and +area for faces that enter it.
*/
type FluxDivergence struct {
	NCells, NFaces int
	incidence      *sparse.CSR
}

func NewFluxDivergence(tess tessellation.Tessellation, pg tessellation.PhysicalGeometry) (fd *FluxDivergence) {
	var (
		pointNo = tess.GetPointNo()
		edges   = tess.GetAllEdges()
		dok     = sparse.NewDOK(pointNo, len(edges))
	)
	for k, e := range edges {
		area := pg.CalcArea(e)
		if a := e.Neighbors[0]; tessellation.IsCell(a, pointNo) {
			dok.Set(a, k, -area)
		}
		if b := e.Neighbors[1]; tessellation.IsCell(b, pointNo) {
			dok.Set(b, k, area)
		}
	}
	fd = &FluxDivergence{
		NCells:    pointNo,
		NFaces:    len(edges),
		incidence: dok.ToCSR(),
	}
	return
}

func (fd *FluxDivergence) apply(faceValues []float64) (cellValues []float64) {
	var (
		x = mat.NewVecDense(fd.NFaces, faceValues)
		y = mat.NewVecDense(fd.NCells, nil)
	)
	y.MulVec(fd.incidence, x)
	cellValues = y.RawVector().Data
	return
}

// Rates returns the net flux into every cell, per unit time, for the hydro variables and the tracers of the first face
func (fd *FluxDivergence) Rates(fluxes []types.Extensive) (rates []types.Extensive) {
	if len(fluxes) != fd.NFaces {
		panic(fmt.Errorf("have %d face fluxes, mesh has %d faces", len(fluxes), fd.NFaces))
	}
	var (
		mass   = make([]float64, fd.NFaces)
		momX   = make([]float64, fd.NFaces)
		momY   = make([]float64, fd.NFaces)
		energy = make([]float64, fd.NFaces)
		names  []string
	)
	for k, f := range fluxes {
		h := f.Hydro()
		mass[k], momX[k], momY[k], energy[k] = h.Mass, h.Momentum.X, h.Momentum.Y, h.Energy
	}
	if fd.NFaces != 0 {
		for name := range fluxes[0].Tracers {
			names = append(names, name)
		}
	}
	rMass, rMomX, rMomY, rEnergy := fd.apply(mass), fd.apply(momX), fd.apply(momY), fd.apply(energy)
	rates = make([]types.Extensive, fd.NCells)
	for i := range rates {
		rates[i] = types.NewExtensive(types.Conserved{
			Mass:     rMass[i],
			Momentum: r2.Vec{X: rMomX[i], Y: rMomY[i]},
			Energy:   rEnergy[i],
		}, len(names))
	}
	tracer := make([]float64, fd.NFaces)
	for _, name := range names {
		for k, f := range fluxes {
			tracer[k] = f.Tracers[name]
		}
		for i, r := range fd.apply(tracer) {
			rates[i].Tracers[name] = r
		}
	}
	return
}

// CenterOfMass is the mass weighted mean of the cell centers of mass over the domain
func CenterOfMass(tess tessellation.Tessellation, pg tessellation.PhysicalGeometry,
	cells []types.ComputationalCell) (cm r2.Vec) {
	var (
		n      = len(cells)
		masses = make([]float64, n)
		xs, ys = make([]float64, n), make([]float64, n)
	)
	for i, cell := range cells {
		masses[i] = cell.Density * pg.CalcVolume(tess, i)
		c := tess.GetCellCM(i)
		xs[i], ys[i] = c.X, c.Y
	}
	total := floats.Sum(masses)
	if total == 0 {
		return
	}
	cm = r2.Vec{X: floats.Dot(masses, xs) / total, Y: floats.Dot(masses, ys) / total}
	return
}

// TotalMomentum sums the momentum of all cells
func TotalMomentum(tess tessellation.Tessellation, pg tessellation.PhysicalGeometry,
	cells []types.ComputationalCell) (mom r2.Vec) {
	for i, cell := range cells {
		mom = r2.Add(mom, r2.Scale(cell.Density*pg.CalcVolume(tess, i), cell.Velocity))
	}
	return
}
