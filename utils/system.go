package utils

import (
	"fmt"
	"math"
	"runtime"

	"gonum.org/v1/gonum/spatial/r2"
)

func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
}

// IsNan also reports infinities, both poison a finite volume update
func IsNan(A any) bool {
	bad := func(f float64) bool { return math.IsNaN(f) || math.IsInf(f, 0) }
	switch v := A.(type) {
	case float64:
		return bad(v)
	case float32:
		return bad(float64(v))
	case []float64:
		for _, f := range v {
			if bad(f) {
				return true
			}
		}
	case r2.Vec:
		return bad(v.X) || bad(v.Y)
	case []r2.Vec:
		for _, vec := range v {
			if bad(vec.X) || bad(vec.Y) {
				return true
			}
		}
	}
	return false
}
