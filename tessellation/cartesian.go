package tessellation

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

/*
Cartesian is a rectangular Nx by Ny mesh. Cell (i, j) has index i + Nx*j, its mesh point and
center of mass are the cell center. Vertical edges come first, row by row, then horizontal edges.
Neighbors are ordered (left, right) and (below, above), the missing side of a boundary edge is -1.
*/
type Cartesian struct {
	Nx, Ny       int
	Lower, Upper r2.Vec
	dx, dy       float64
	points       []r2.Vec
	edges        []Edge
}

func NewCartesian(Nx, Ny int, lower, upper r2.Vec) (cm *Cartesian) {
	if Nx < 1 || Ny < 1 {
		panic(fmt.Errorf("cartesian mesh needs at least one cell in each direction, have %d x %d", Nx, Ny))
	}
	if upper.X <= lower.X || upper.Y <= lower.Y {
		panic(fmt.Errorf("cartesian mesh bounds are inverted: lower %v, upper %v", lower, upper))
	}
	cm = &Cartesian{
		Nx:    Nx,
		Ny:    Ny,
		Lower: lower,
		Upper: upper,
		dx:    (upper.X - lower.X) / float64(Nx),
		dy:    (upper.Y - lower.Y) / float64(Ny),
	}
	cm.points = make([]r2.Vec, Nx*Ny)
	for j := 0; j < Ny; j++ {
		for i := 0; i < Nx; i++ {
			cm.points[cm.index(i, j)] = r2.Vec{
				X: lower.X + (float64(i)+0.5)*cm.dx,
				Y: lower.Y + (float64(j)+0.5)*cm.dy,
			}
		}
	}
	cm.edges = make([]Edge, 0, (Nx+1)*Ny+Nx*(Ny+1))
	for j := 0; j < Ny; j++ {
		for i := 0; i <= Nx; i++ {
			cm.edges = append(cm.edges, Edge{
				Neighbors: [2]int{cm.cellOrNone(i-1, j), cm.cellOrNone(i, j)},
				Vertices:  [2]r2.Vec{cm.vertex(i, j), cm.vertex(i, j+1)},
			})
		}
	}
	for j := 0; j <= Ny; j++ {
		for i := 0; i < Nx; i++ {
			cm.edges = append(cm.edges, Edge{
				Neighbors: [2]int{cm.cellOrNone(i, j-1), cm.cellOrNone(i, j)},
				Vertices:  [2]r2.Vec{cm.vertex(i, j), cm.vertex(i+1, j)},
			})
		}
	}
	return
}

func (cm *Cartesian) index(i, j int) int { return i + cm.Nx*j }

func (cm *Cartesian) cellOrNone(i, j int) int {
	if i < 0 || j < 0 || i >= cm.Nx || j >= cm.Ny {
		return -1
	}
	return cm.index(i, j)
}

func (cm *Cartesian) vertex(i, j int) r2.Vec {
	return r2.Vec{X: cm.Lower.X + float64(i)*cm.dx, Y: cm.Lower.Y + float64(j)*cm.dy}
}

func (cm *Cartesian) GetPointNo() int            { return len(cm.points) }
func (cm *Cartesian) GetEdge(i int) Edge         { return cm.edges[i] }
func (cm *Cartesian) GetAllEdges() []Edge        { return cm.edges }
func (cm *Cartesian) GetMeshPoint(i int) r2.Vec  { return cm.points[i] }
func (cm *Cartesian) GetCellCM(i int) r2.Vec     { return cm.points[i] }
func (cm *Cartesian) GetVolume(i int) float64    { return cm.dx * cm.dy }
func (cm *Cartesian) CellSize() (dx, dy float64) { return cm.dx, cm.dy }

/*
CalcFaceVelocity averages the two point velocities and adds the correction that keeps the face
attached to the perpendicular bisector when the points move at different speeds.
*/
func (cm *Cartesian) CalcFaceVelocity(wA, wB, cmA, cmB, centroid r2.Vec) (w r2.Vec) {
	var (
		d  = r2.Sub(cmB, cmA)
		d2 = r2.Norm2(d)
	)
	w = r2.Scale(0.5, r2.Add(wA, wB))
	if d2 == 0 {
		return
	}
	mid := r2.Scale(0.5, r2.Add(cmA, cmB))
	w = r2.Add(w, r2.Scale(r2.Dot(r2.Sub(wA, wB), r2.Sub(centroid, mid))/d2, d))
	return
}
