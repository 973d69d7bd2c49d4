package Gravity2D

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gravflux/hydro"
	"github.com/notargets/gravflux/tessellation"
	"github.com/notargets/gravflux/types"
)

type InitType uint

const (
	UNIFORM InitType = iota
	HYDROSTATIC
)

var (
	InitNames = map[string]InitType{
		"uniform":     UNIFORM,
		"hydrostatic": HYDROSTATIC,
	}
	InitPrintNames = []string{"Uniform Fluid at Rest", "Hydrostatic Atmosphere"}
)

func (it InitType) Print() (txt string) {
	txt = InitPrintNames[it]
	return
}

func NewInitType(label string) (it InitType) {
	var (
		ok  bool
		err error
	)
	if len(label) == 0 {
		err = fmt.Errorf("empty init type, must be one of %v", InitNames)
		panic(err)
	}
	label = strings.ToLower(label)
	if it, ok = InitNames[label]; !ok {
		err = fmt.Errorf("unable to use init type named %s", label)
		panic(err)
	}
	return
}

/*
InitialCondition fills the cells of a mesh with a fluid at rest. Pressure is the uniform pressure, or
the reference pressure at the origin for a hydrostatic atmosphere, where p = Pressure + Density g.x at
each cell center of mass. Every cell gets a copy of Tracers.
*/
type InitialCondition struct {
	Type              InitType
	Density, Pressure float64
	Gravity           r2.Vec
	Tracers           map[string]float64
}

func NewInitialCondition(it InitType, gravity r2.Vec, tracers map[string]float64) (ic InitialCondition) {
	ic = InitialCondition{
		Type:     it,
		Density:  1,
		Pressure: 1,
		Gravity:  gravity,
		Tracers:  tracers,
	}
	return
}

// Cells returns ErrNonPositivePressure when the reference pressure cannot hold up the whole column
func (ic InitialCondition) Cells(tess tessellation.Tessellation) (cells []types.ComputationalCell, err error) {
	cells = make([]types.ComputationalCell, tess.GetPointNo())
	for i := range cells {
		cell := types.ComputationalCell{
			Density:  ic.Density,
			Pressure: ic.Pressure,
			Tracers:  make(map[string]float64, len(ic.Tracers)),
		}
		if ic.Type == HYDROSTATIC {
			cell.Pressure += ic.Density * r2.Dot(ic.Gravity, tess.GetCellCM(i))
		}
		for name, c := range ic.Tracers {
			cell.Tracers[name] = c
		}
		if cell.Pressure <= 0 {
			err = fmt.Errorf("%w: pressure %8.5f in cell %d", ErrNonPositivePressure, cell.Pressure, i)
			return nil, err
		}
		cells[i] = cell
	}
	return
}

// Extensives integrates the cell states over the physical cell volumes
func Extensives(tess tessellation.Tessellation, pg tessellation.PhysicalGeometry, eos hydro.EquationOfState,
	cells []types.ComputationalCell) (ex []types.Extensive) {
	ex = make([]types.Extensive, len(cells))
	for i, cell := range cells {
		var (
			vol  = pg.CalcVolume(tess, i)
			mass = cell.Density * vol
			v2   = r2.Dot(cell.Velocity, cell.Velocity)
		)
		ex[i] = types.NewExtensive(types.Conserved{
			Mass:     mass,
			Momentum: r2.Scale(mass, cell.Velocity),
			Energy:   mass * (eos.DP2E(cell.Density, cell.Pressure) + 0.5*v2),
		}, len(cell.Tracers))
		for name, c := range cell.Tracers {
			ex[i].Tracers[name] = mass * c
		}
	}
	return
}
