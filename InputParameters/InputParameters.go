package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

type MeshParameters struct {
	Nx    int        `json:"Nx"`
	Ny    int        `json:"Ny"`
	Lower [2]float64 `json:"Lower"`
	Upper [2]float64 `json:"Upper"`
}

// Parameters obtained from the YAML input file
type InputParameters2D struct {
	Title        string             `json:"Title"`
	FluxType     string             `json:"FluxType"`
	Gamma        float64            `json:"Gamma"`
	Gravity      [2]float64         `json:"Gravity"`
	Dt           float64            `json:"Dt"`
	Time         float64            `json:"Time"`
	SupportModel string             `json:"SupportModel"` // "gravity" or "momentum"
	InitType     string             `json:"InitType"`     // "uniform" or "hydrostatic"
	Density      float64            `json:"Density"`
	Pressure     float64            `json:"Pressure"` // Reference pressure at the origin for hydrostatic runs
	Velocity     [2]float64         `json:"Velocity"` // Initial fluid velocity
	Mesh         MeshParameters     `json:"Mesh"`
	Geometry     string             `json:"Geometry"` // "slab" or "cylindrical"
	ProcLimit    int                `json:"ProcLimit"`
	Tracers      map[string]float64 `json:"Tracers"`
}

// NewInputParameters2D returns the column of fluid on a floor, 5 by 100 cells of size 0.02 by 0.01
func NewInputParameters2D() (ip *InputParameters2D) {
	ip = &InputParameters2D{
		Title:        "Gravity Supported Column",
		FluxType:     "Roe",
		Gamma:        5. / 3.,
		Gravity:      [2]float64{0, -10},
		Dt:           0.01,
		SupportModel: "gravity",
		InitType:     "uniform",
		Density:      1,
		Pressure:     1,
		Mesh: MeshParameters{
			Nx:    5,
			Ny:    100,
			Lower: [2]float64{-0.05, 0},
			Upper: [2]float64{0.05, 1},
		},
		Geometry: "slab",
	}
	return
}

// Parse overlays the YAML input on the receiver, keys absent from the input keep their values
func (ip *InputParameters2D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters2D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Flux Type\n", ip.FluxType)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("%v\t\t= Gravity\n", ip.Gravity)
	fmt.Printf("%8.5f\t\t= Dt\n", ip.Dt)
	fmt.Printf("%8.5f\t\t= Time\n", ip.Time)
	fmt.Printf("[%s]\t\t= Support Model\n", ip.SupportModel)
	fmt.Printf("[%s]\t= InitType\n", ip.InitType)
	fmt.Printf("%8.5f, %8.5f\t= Density, Pressure\n", ip.Density, ip.Pressure)
	fmt.Printf("%v\t\t= Velocity\n", ip.Velocity)
	fmt.Printf("[%d x %d] %v to %v\t= Mesh\n", ip.Mesh.Nx, ip.Mesh.Ny, ip.Mesh.Lower, ip.Mesh.Upper)
	fmt.Printf("[%s]\t\t\t= Geometry\n", ip.Geometry)
	fmt.Printf("[%d]\t\t\t\t= Proc Limit\n", ip.ProcLimit)
	keys := make([]string, len(ip.Tracers))
	i := 0
	for k := range ip.Tracers {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Tracers[%s] = %v\n", key, ip.Tracers[key])
	}
}
