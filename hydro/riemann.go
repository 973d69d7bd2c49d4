package hydro

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gravflux/types"
)

/*
RiemannSolver computes the flux through a face in the face frame: Velocity.X of each state is the
component along the face normal, Velocity.Y the tangential component. velocity is the normal speed
of the face itself. Implementations hold no mutable state and may be shared by concurrent callers.
*/
type RiemannSolver interface {
	Solve(left, right types.Primitive, velocity float64) types.Conserved
}

type FluxType uint

const (
	FLUX_LaxFriedrichs FluxType = iota
	FLUX_Roe
)

var (
	FluxNames = map[string]FluxType{
		"lax": FLUX_LaxFriedrichs,
		"roe": FLUX_Roe,
	}
	FluxPrintNames = []string{"Lax Friedrichs", "Roe"}
)

func (ft FluxType) Print() (txt string) {
	txt = FluxPrintNames[ft]
	return
}

func NewFluxType(label string) (ft FluxType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if ft, ok = FluxNames[label]; !ok {
		err = fmt.Errorf("unable to use flux named %s", label)
		panic(err)
	}
	return
}

func NewRiemannSolver(ft FluxType, Gamma float64) (rs RiemannSolver) {
	switch ft {
	case FLUX_LaxFriedrichs:
		rs = LaxFriedrichs{}
	case FLUX_Roe:
		rs = Roe{Gamma: Gamma}
	default:
		panic(fmt.Errorf("no Riemann solver for flux type %d", ft))
	}
	return
}

// normalFlux is the physical flux along the frame X axis
func normalFlux(q types.Primitive) (f [4]float64) {
	var (
		rho, u, v = q.Density, q.Velocity.X, q.Velocity.Y
		E         = rho * (q.Energy + 0.5*(u*u+v*v))
	)
	f = [4]float64{rho * u, rho*u*u + q.Pressure, rho * u * v, u * (E + q.Pressure)}
	return
}

func conservedState(q types.Primitive) (U [4]float64) {
	var (
		rho, u, v = q.Density, q.Velocity.X, q.Velocity.Y
	)
	U = [4]float64{rho, rho * u, rho * v, rho * (q.Energy + 0.5*(u*u+v*v))}
	return
}

/*
solveMovingFace shifts both states into the frame of a face moving at velocity along X, solves there,
and adds back the advective terms of the moving frame.
*/
func solveMovingFace(left, right types.Primitive, velocity float64,
	solve func(left, right types.Primitive) [4]float64) (res types.Conserved) {
	left.Velocity.X -= velocity
	right.Velocity.X -= velocity
	f := solve(left, right)
	res = types.Conserved{
		Mass:     f[0],
		Momentum: r2.Vec{X: f[1] + f[0]*velocity, Y: f[2]},
		Energy:   f[3] + f[1]*velocity + 0.5*f[0]*velocity*velocity,
	}
	return
}

// LaxFriedrichs is the local Lax-Friedrichs (Rusanov) flux
type LaxFriedrichs struct{}

func (LaxFriedrichs) Solve(left, right types.Primitive, velocity float64) types.Conserved {
	return solveMovingFace(left, right, velocity, func(qL, qR types.Primitive) (nf [4]float64) {
		maxVF := func(q types.Primitive) (vmax float64) {
			vmax = r2.Norm(q.Velocity) + q.SoundSpeed
			return
		}
		var (
			FxL, FxR = normalFlux(qL), normalFlux(qR)
			UL, UR   = conservedState(qL), conservedState(qR)
			maxV     = math.Max(maxVF(qL), maxVF(qR))
		)
		for n := 0; n < 4; n++ {
			nf[n] = 0.5*(FxL[n]+FxR[n]) + 0.5*maxV*(UL[n]-UR[n])
		}
		return
	})
}

// Roe is the Roe approximate Riemann solver for an ideal gas
type Roe struct {
	Gamma float64
}

func (rs Roe) Solve(left, right types.Primitive, velocity float64) types.Conserved {
	return solveMovingFace(left, right, velocity, func(qL, qR types.Primitive) (nf [4]float64) {
		var (
			rhoL, uL, vL, pL = qL.Density, qL.Velocity.X, qL.Velocity.Y, qL.Pressure
			rhoR, uR, vR, pR = qR.Density, qR.Velocity.X, qR.Velocity.Y, qR.Pressure
			GM1              = rs.Gamma - 1
			FxL, FxR         = normalFlux(qL), normalFlux(qR)
		)
		// Enthalpy
		hL := qL.Energy + pL/rhoL + 0.5*(uL*uL+vL*vL)
		hR := qR.Energy + pR/rhoR + 0.5*(uR*uR+vR*vR)
		// Compute Roe average variables
		rhoLs, rhoRs := math.Sqrt(rhoL), math.Sqrt(rhoR)
		rhoLsRs := rhoLs + rhoRs

		rho := rhoLs * rhoRs
		u := (rhoLs*uL + rhoRs*uR) / rhoLsRs
		v := (rhoLs*vL + rhoRs*vR) / rhoLsRs
		h := (rhoLs*hL + rhoRs*hR) / rhoLsRs
		c2 := GM1 * (h - 0.5*(u*u+v*v))
		c := math.Sqrt(c2)
		// Wave strengths scaled by the characteristic speeds
		dW1 := -0.5*(rho*(uR-uL))/c + 0.5*(pR-pL)/c2
		dW2 := (rhoR - rhoL) - (pR-pL)/c2
		dW3 := rho * (vR - vL)
		dW4 := 0.5*(rho*(uR-uL))/c + 0.5*(pR-pL)/c2
		dW1 = math.Abs(u-c) * dW1
		dW2 = math.Abs(u) * dW2
		dW3 = math.Abs(u) * dW3
		dW4 = math.Abs(u+c) * dW4
		for n := 0; n < 4; n++ {
			nf[n] = 0.5 * (FxL[n] + FxR[n]) // Ave of normal component of flux
		}
		nf[0] -= 0.5 * (dW1 + dW2 + dW4)
		nf[1] -= 0.5 * (dW1*(u-c) + dW2*u + dW4*(u+c))
		nf[2] -= 0.5 * (dW1*v + dW2*v + dW3 + dW4*v)
		nf[3] -= 0.5 * (dW1*(h-u*c) + 0.5*dW2*(u*u+v*v) + dW3*v + dW4*(h+u*c))
		return
	})
}
