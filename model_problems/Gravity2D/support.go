package Gravity2D

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gravflux/hydro"
	"github.com/notargets/gravflux/tessellation"
	"github.com/notargets/gravflux/types"
)

var (
	ErrNoLowerBoundary     = errors.New("mesh has no lower boundary area to normalize the support")
	ErrInvalidTimeStep     = errors.New("time step is not valid for the support model")
	ErrCellCount           = errors.New("number of cells does not match the mesh")
	ErrPointVelocityCount  = errors.New("number of point velocities does not match the mesh")
	ErrTracerMismatch      = errors.New("cells do not share the same tracer names")
	ErrNonPositivePressure = errors.New("initial pressure is not positive, raise the reference pressure")
)

type SupportModel uint8

const (
	// SUPPORT_Gravity boosts the floor ghost state by |g| dt
	SUPPORT_Gravity SupportModel = iota
	// SUPPORT_Momentum spreads the net downward momentum over the floor area per unit time
	SUPPORT_Momentum
)

var (
	SupportNames = map[string]SupportModel{
		"gravity":  SUPPORT_Gravity,
		"momentum": SUPPORT_Momentum,
	}
	SupportPrintNames = []string{"Gravity Boost |g|*dt", "Downward Momentum / Floor Area / dt"}
)

func (sm SupportModel) Print() (txt string) {
	txt = SupportPrintNames[sm]
	return
}

func NewSupportModel(label string) (sm SupportModel) {
	var (
		ok bool
	)
	if len(label) == 0 {
		return SUPPORT_Gravity
	}
	label = strings.ToLower(label)
	if sm, ok = SupportNames[label]; !ok {
		panic(fmt.Errorf("unable to use support model named %s", label))
	}
	return
}

type Options struct {
	Model     SupportModel
	ProcLimit int // Number of go routines, zero uses all CPUs
	Log       logrus.FieldLogger
}

/*
GravitySupport computes face fluxes for a fluid under uniform gravity. Interior faces see
hydrostatically corrected states, the floor of the domain is a reflecting wall that holds the fluid
up, every other boundary face is a plain reflecting wall.
The lower boundary area is fixed at construction, the mesh boundary must not change afterwards.
*/
type GravitySupport struct {
	Acceleration r2.Vec
	Model        SupportModel
	ProcLimit    int
	Log          logrus.FieldLogger
	down         r2.Vec
	bottomArea   float64
	rs           hydro.RiemannSolver
}

func NewGravitySupport(tess tessellation.Tessellation, pg tessellation.PhysicalGeometry,
	acceleration r2.Vec, rs hydro.RiemannSolver, opts Options) (gs *GravitySupport) {
	gs = &GravitySupport{
		Acceleration: acceleration,
		Model:        opts.Model,
		ProcLimit:    opts.ProcLimit,
		Log:          opts.Log,
		down:         downDirection(acceleration),
		rs:           rs,
	}
	if gs.Log == nil {
		gs.Log = logrus.StandardLogger()
	}
	var counts [types.NumFaceKinds]int
	gs.bottomArea, counts = calcBottomArea(tess, pg, gs.down)
	fields := logrus.Fields{
		"bottom_area": gs.bottomArea,
		"model":       gs.Model.Print(),
	}
	for fk, count := range counts {
		fields[types.FaceKind(fk).String()] = count
	}
	gs.Log.WithFields(fields).Debug("gravity support initialized")
	return
}

// BottomArea is the summed measure of all lower boundary faces
func (gs *GravitySupport) BottomArea() float64 {
	return gs.bottomArea
}

// Down is the unit direction of gravity, zero when there is no gravity
func (gs *GravitySupport) Down() r2.Vec {
	return gs.down
}

// calcBottomArea classifies every face once, which also rejects malformed topology up front
func calcBottomArea(tess tessellation.Tessellation, pg tessellation.PhysicalGeometry,
	down r2.Vec) (area float64, counts [types.NumFaceKinds]int) {
	var (
		edges = tess.GetAllEdges()
		areas = make([]float64, 0, len(edges))
	)
	for _, e := range edges {
		fc := Classify(e, tess, down)
		counts[fc.Kind]++
		if fc.Kind == types.FACE_LowerBoundary {
			areas = append(areas, pg.CalcArea(e))
		}
	}
	area = floats.Sum(areas)
	return
}

func calcTotalDownwardMomentum(extensives []types.Extensive, down r2.Vec) float64 {
	var (
		mom = make([]float64, len(extensives))
	)
	for i, ex := range extensives {
		mom[i] = r2.Dot(ex.Momentum, down)
	}
	return floats.Sum(mom)
}

// calcSupport returns the floor support for one step of length dt under the selected model
func (gs *GravitySupport) calcSupport(extensives []types.Extensive, dt float64) (support float64, err error) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		err = fmt.Errorf("%w: dt = %v", ErrInvalidTimeStep, dt)
		return
	}
	switch gs.Model {
	case SUPPORT_Momentum:
		if dt == 0 {
			err = fmt.Errorf("%w: momentum support divides by dt = 0", ErrInvalidTimeStep)
			return
		}
		if gs.bottomArea == 0 {
			err = ErrNoLowerBoundary
			return
		}
		support = math.Max(0, calcTotalDownwardMomentum(extensives, gs.down)/gs.bottomArea/dt)
	default:
		support = r2.Norm(gs.Acceleration) * dt
	}
	return
}
