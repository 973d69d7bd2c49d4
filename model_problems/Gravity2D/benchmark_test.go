//go:build linux

package Gravity2D

import (
	"testing"

	perf "github.com/hodgesds/perf-utils"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gravflux/hydro"
	"github.com/notargets/gravflux/tessellation"
)

func BenchmarkCalculate(b *testing.B) {
	var (
		tess = tessellation.NewCartesian(50, 200, r2.Vec{}, r2.Vec{X: 0.5, Y: 2})
		g    = r2.Vec{Y: -10}
		pg   = tessellation.SlabSymmetry{}
		ic   = NewInitialCondition(HYDROSTATIC, g, map[string]float64{"dye": 1})
		gs   = newSupport(tess, pg, g, hydro.FLUX_Roe, Options{})
	)
	ic.Pressure = 30
	cells, err := ic.Cells(tess)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := gs.Calculate(tess, nil, cells, nil, eos, 0, 0.01); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
	// Instruction count of one serial pass, when the kernel exposes perf events
	serial := newSupport(tess, pg, g, hydro.FLUX_Roe, Options{ProcLimit: 1})
	pv, err := perf.CPUInstructions(func() error {
		_, err := serial.Calculate(tess, nil, cells, nil, eos, 0, 0.01)
		return err
	})
	if err != nil {
		b.Logf("perf events unavailable: %v", err)
		return
	}
	b.ReportMetric(float64(pv.Value)/float64(len(tess.GetAllEdges())), "instructions/face")
}
