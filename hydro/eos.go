package hydro

import (
	"fmt"
	"math"

	"github.com/notargets/gravflux/types"
)

// EquationOfState converts stored cell states into the primitive form used by Riemann solvers
type EquationOfState interface {
	ToPrimitive(cc types.ComputationalCell) types.Primitive
	DP2E(density, pressure float64) float64
	DP2C(density, pressure float64) float64
	DE2P(density, energy float64) float64
}

type IdealGas struct {
	Gamma float64
}

func NewIdealGas(Gamma float64) (ig IdealGas) {
	if Gamma <= 1 {
		panic(fmt.Errorf("adiabatic index must be greater than one, have %8.5f", Gamma))
	}
	ig = IdealGas{Gamma: Gamma}
	return
}

// DP2E is the specific internal energy
func (ig IdealGas) DP2E(density, pressure float64) float64 {
	return pressure / ((ig.Gamma - 1) * density)
}

func (ig IdealGas) DE2P(density, energy float64) float64 {
	return (ig.Gamma - 1) * density * energy
}

func (ig IdealGas) DP2C(density, pressure float64) float64 {
	return math.Sqrt(ig.Gamma * pressure / density)
}

func (ig IdealGas) ToPrimitive(cc types.ComputationalCell) (prim types.Primitive) {
	prim = types.Primitive{
		Density:    cc.Density,
		Pressure:   cc.Pressure,
		Velocity:   cc.Velocity,
		Energy:     ig.DP2E(cc.Density, cc.Pressure),
		SoundSpeed: ig.DP2C(cc.Density, cc.Pressure),
	}
	return
}
