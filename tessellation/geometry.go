package tessellation

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gravflux/utils"
)

// SlabSymmetry treats the mesh as a slice of unit depth
type SlabSymmetry struct{}

func (SlabSymmetry) CalcArea(e Edge) float64 {
	return e.Length()
}

func (SlabSymmetry) CalcVolume(tess Tessellation, i int) float64 {
	return tess.GetVolume(i)
}

/*
CylindricalSymmetry revolves the mesh around the axis through Origin along Direction.
Measures follow Pappus' theorem: planar measure times the circumference traced by its centroid.
*/
type CylindricalSymmetry struct {
	Origin, Direction r2.Vec
}

func NewCylindricalSymmetry(origin, direction r2.Vec) (cs CylindricalSymmetry) {
	if utils.IsDegenerate(direction) {
		panic(fmt.Errorf("cylindrical symmetry axis direction must be non zero, have %v", direction))
	}
	cs = CylindricalSymmetry{Origin: origin, Direction: direction}
	return
}

func (cs CylindricalSymmetry) radius(x r2.Vec) float64 {
	return r2.Norm(utils.RemoveParallelComponent(r2.Sub(x, cs.Origin), cs.Direction))
}

func (cs CylindricalSymmetry) CalcArea(e Edge) float64 {
	return 2 * math.Pi * cs.radius(e.Centroid()) * e.Length()
}

func (cs CylindricalSymmetry) CalcVolume(tess Tessellation, i int) float64 {
	return 2 * math.Pi * cs.radius(tess.GetCellCM(i)) * tess.GetVolume(i)
}

var (
	GeometryNames = map[string]string{
		"slab":        "slab",
		"planar":      "slab",
		"cylindrical": "cylindrical",
		"axisym":      "cylindrical",
	}
)

// NewPhysicalGeometry selects a geometry by name, cylindrical geometries revolve around the y axis
func NewPhysicalGeometry(label string) (pg PhysicalGeometry) {
	var (
		name string
		ok   bool
	)
	if len(label) == 0 {
		return SlabSymmetry{}
	}
	if name, ok = GeometryNames[strings.ToLower(label)]; !ok {
		panic(fmt.Errorf("unable to use geometry named %s", label))
	}
	switch name {
	case "cylindrical":
		pg = NewCylindricalSymmetry(r2.Vec{}, r2.Vec{Y: 1})
	default:
		pg = SlabSymmetry{}
	}
	return
}
