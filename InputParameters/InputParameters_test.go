package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputParameters2D(t *testing.T) {
	{ // Defaults describe the reference column
		ip := NewInputParameters2D()
		assert.Equal(t, 5, ip.Mesh.Nx)
		assert.Equal(t, 100, ip.Mesh.Ny)
		assert.Equal(t, [2]float64{0, -10}, ip.Gravity)
		assert.InDelta(t, 5./3., ip.Gamma, 1.e-15)
	}
	{ // YAML overrides only what it names
		fileInput := []byte(`
Title: Test Case
FluxType: Lax
Gravity: [0, -9.8]
Dt: 0.005
SupportModel: momentum
InitType: Hydrostatic # Can be Uniform or Hydrostatic
Pressure: 20
Mesh:
  Nx: 10
  Ny: 40
Tracers:
  dye: 0.5
  ink: 1
`)
		ip := NewInputParameters2D()
		require.NoError(t, ip.Parse(fileInput))
		assert.Equal(t, "Test Case", ip.Title)
		assert.Equal(t, "Lax", ip.FluxType)
		assert.Equal(t, [2]float64{0, -9.8}, ip.Gravity)
		assert.Equal(t, 0.005, ip.Dt)
		assert.Equal(t, "momentum", ip.SupportModel)
		assert.Equal(t, 20., ip.Pressure)
		assert.Equal(t, 10, ip.Mesh.Nx)
		assert.Equal(t, 40, ip.Mesh.Ny)
		assert.Equal(t, [2]float64{0.05, 1}, ip.Mesh.Upper)
		assert.Equal(t, 0.5, ip.Tracers["dye"])
		assert.Equal(t, "slab", ip.Geometry)
		ip.Print()
	}
	{ // Malformed input
		ip := NewInputParameters2D()
		assert.Error(t, ip.Parse([]byte("Mesh: [1, 2")))
	}
}
