package types

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// ComputationalCell is the stored state of one mesh cell.
type ComputationalCell struct {
	Density  float64
	Pressure float64
	Velocity r2.Vec
	Tracers  map[string]float64
}

// Copy returns a cell with its own tracer map.
func (cc ComputationalCell) Copy() (c ComputationalCell) {
	c = cc
	if cc.Tracers != nil {
		c.Tracers = make(map[string]float64, len(cc.Tracers))
		for name, val := range cc.Tracers {
			c.Tracers[name] = val
		}
	}
	return
}

// TracerNames returns the tracer keys in sorted order
func (cc ComputationalCell) TracerNames() (names []string) {
	names = make([]string, 0, len(cc.Tracers))
	for name := range cc.Tracers {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

/*
Primitive is the per-face working state handed to the Riemann solver.
Energy is the specific internal energy, SoundSpeed is filled in by the equation of state.
*/
type Primitive struct {
	Density    float64
	Pressure   float64
	Velocity   r2.Vec
	Energy     float64
	SoundSpeed float64
}

// Conserved is the hydrodynamic part of a face flux
type Conserved struct {
	Mass     float64
	Momentum r2.Vec
	Energy   float64
}

func (c Conserved) Scale(f float64) Conserved {
	return Conserved{
		Mass:     f * c.Mass,
		Momentum: r2.Scale(f, c.Momentum),
		Energy:   f * c.Energy,
	}
}

// Extensive is the complete flux record of one face, including passive tracers.
type Extensive struct {
	Mass     float64
	Momentum r2.Vec
	Energy   float64
	Tracers  map[string]float64
}

func NewExtensive(hf Conserved, nTracers int) (ex Extensive) {
	ex = Extensive{
		Mass:     hf.Mass,
		Momentum: hf.Momentum,
		Energy:   hf.Energy,
		Tracers:  make(map[string]float64, nTracers),
	}
	return
}

func (ex Extensive) Hydro() Conserved {
	return Conserved{Mass: ex.Mass, Momentum: ex.Momentum, Energy: ex.Energy}
}
