package Gravity2D

import (
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gravflux/hydro"
	"github.com/notargets/gravflux/tessellation"
	"github.com/notargets/gravflux/types"
)

var (
	gamma = 5. / 3.
	eos   = hydro.NewIdealGas(gamma)
)

func newSupport(tess tessellation.Tessellation, pg tessellation.PhysicalGeometry, g r2.Vec,
	ft hydro.FluxType, opts Options) *GravitySupport {
	return NewGravitySupport(tess, pg, g, hydro.NewRiemannSolver(ft, gamma), opts)
}

func TestGravitySupport(t *testing.T) {
	var (
		tess = newColumn()
		g    = r2.Vec{Y: -10}
	)
	{ // Construction logs the face census at debug level
		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
		gs := newSupport(tess, tessellation.SlabSymmetry{}, g, hydro.FLUX_Roe, Options{Log: logger})
		require.NotNil(t, hook.LastEntry())
		entry := hook.LastEntry()
		assert.Equal(t, "gravity support initialized", entry.Message)
		assert.Equal(t, 895, entry.Data["Interior"])
		assert.Equal(t, 5, entry.Data["Lower Boundary"])
		assert.Equal(t, 205, entry.Data["Other Boundary"])
		assert.InDelta(t, 0.1, gs.BottomArea(), 1.e-15)
		assert.Equal(t, r2.Vec{Y: -1}, gs.Down())
	}
	{ // Default logger
		gs := newSupport(tess, tessellation.SlabSymmetry{}, g, hydro.FLUX_Roe, Options{})
		assert.Equal(t, logrus.StandardLogger(), gs.Log)
	}
	{ // Cylindrical floor sums the revolved face areas
		pg := tessellation.NewPhysicalGeometry("cylindrical")
		gs := newSupport(tess, pg, g, hydro.FLUX_Roe, Options{})
		var expected float64
		for i := 0; i < 5; i++ {
			expected += pg.CalcArea(tess.GetEdge(6*100 + i))
		}
		assert.InDelta(t, expected, gs.BottomArea(), 1.e-15)
		assert.True(t, gs.BottomArea() > 0)
	}
	{ // No gravity, no floor
		gs := newSupport(tess, tessellation.SlabSymmetry{}, r2.Vec{}, hydro.FLUX_Roe, Options{})
		assert.Equal(t, 0., gs.BottomArea())
		assert.Equal(t, r2.Vec{}, gs.Down())
	}
}

func TestSupportModels(t *testing.T) {
	var (
		tess = newColumn()
		g    = r2.Vec{Y: -10}
		pg   = tessellation.SlabSymmetry{}
	)
	assert.Equal(t, SUPPORT_Gravity, NewSupportModel(""))
	assert.Equal(t, SUPPORT_Momentum, NewSupportModel("Momentum"))
	assert.Panics(t, func() { NewSupportModel("levitation") })
	assert.Equal(t, "Gravity Boost |g|*dt", SUPPORT_Gravity.Print())
	{ // Gravity model scales with |g| dt
		gs := newSupport(tess, pg, g, hydro.FLUX_Roe, Options{})
		s, err := gs.calcSupport(nil, 0.01)
		require.NoError(t, err)
		assert.InDelta(t, 0.1, s, 1.e-15)
		s, err = gs.calcSupport(nil, 0)
		require.NoError(t, err)
		assert.Equal(t, 0., s)
		_, err = gs.calcSupport(nil, -1)
		assert.True(t, errors.Is(err, ErrInvalidTimeStep))
		_, err = gs.calcSupport(nil, math.NaN())
		assert.True(t, errors.Is(err, ErrInvalidTimeStep))
	}
	{ // Momentum model spreads the downward momentum over the floor
		gs := newSupport(tess, pg, g, hydro.FLUX_Roe, Options{Model: SUPPORT_Momentum})
		ex := []types.Extensive{
			{Momentum: r2.Vec{X: 3, Y: -0.2}},
			{Momentum: r2.Vec{Y: -0.3}},
		}
		s, err := gs.calcSupport(ex, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, 0.5/0.1/0.5, s, 1.e-13)
		// Rising fluid needs no support
		ex[0].Momentum.Y, ex[1].Momentum.Y = 0.2, 0.3
		s, err = gs.calcSupport(ex, 0.5)
		require.NoError(t, err)
		assert.Equal(t, 0., s)
		_, err = gs.calcSupport(ex, 0)
		assert.True(t, errors.Is(err, ErrInvalidTimeStep))
	}
	{ // Momentum model without a floor
		gs := newSupport(tess, pg, r2.Vec{}, hydro.FLUX_Roe, Options{Model: SUPPORT_Momentum})
		_, err := gs.calcSupport(nil, 0.5)
		assert.True(t, errors.Is(err, ErrNoLowerBoundary))
	}
}
