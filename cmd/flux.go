/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gravflux/InputParameters"
	"github.com/notargets/gravflux/hydro"
	"github.com/notargets/gravflux/model_problems/Gravity2D"
	"github.com/notargets/gravflux/tessellation"
	"github.com/notargets/gravflux/types"
	"github.com/notargets/gravflux/utils"
)

// FluxRun is one flux evaluation over a Cartesian mesh, assembled from the input parameters
type FluxRun struct {
	IP         *InputParameters.InputParameters2D
	Tess       *tessellation.Cartesian
	PG         tessellation.PhysicalGeometry
	Gravity    r2.Vec
	EOS        hydro.IdealGas
	Support    *Gravity2D.GravitySupport
	Cells      []types.ComputationalCell
	Extensives []types.Extensive
	Divergence *Gravity2D.FluxDivergence
	Log        logrus.FieldLogger
}

type Summary struct {
	Faces, Cells    int
	BottomArea      float64
	CenterOfMass    r2.Vec
	TotalMomentum   r2.Vec
	NetMassRate     float64
	NetMomentumRate r2.Vec
	NetEnergyRate   float64
	HasNaN          bool
}

/*
NewFluxRun panics on unknown flux, support, geometry or init names like the rest of the name lookups.
An initial state the input cannot produce, such as a hydrostatic column whose reference pressure does
not reach the top, is returned as an error.
*/
func NewFluxRun(ip *InputParameters.InputParameters2D, log logrus.FieldLogger) (fr *FluxRun, err error) {
	var (
		m  = ip.Mesh
		ft = hydro.NewFluxType(ip.FluxType)
	)
	if log == nil {
		log = logrus.StandardLogger()
	}
	fr = &FluxRun{
		IP:      ip,
		Log:     log,
		Tess:    tessellation.NewCartesian(m.Nx, m.Ny, r2.Vec{X: m.Lower[0], Y: m.Lower[1]}, r2.Vec{X: m.Upper[0], Y: m.Upper[1]}),
		PG:      tessellation.NewPhysicalGeometry(ip.Geometry),
		Gravity: r2.Vec{X: ip.Gravity[0], Y: ip.Gravity[1]},
		EOS:     hydro.NewIdealGas(ip.Gamma),
	}
	fr.Support = Gravity2D.NewGravitySupport(fr.Tess, fr.PG, fr.Gravity,
		hydro.NewRiemannSolver(ft, ip.Gamma), Gravity2D.Options{
			Model:     Gravity2D.NewSupportModel(ip.SupportModel),
			ProcLimit: ip.ProcLimit,
			Log:       log,
		})
	ic := Gravity2D.NewInitialCondition(Gravity2D.NewInitType(ip.InitType), fr.Gravity, ip.Tracers)
	ic.Density, ic.Pressure = ip.Density, ip.Pressure
	if fr.Cells, err = ic.Cells(fr.Tess); err != nil {
		return nil, err
	}
	for i := range fr.Cells {
		fr.Cells[i].Velocity = r2.Vec{X: ip.Velocity[0], Y: ip.Velocity[1]}
	}
	fr.Extensives = Gravity2D.Extensives(fr.Tess, fr.PG, fr.EOS, fr.Cells)
	fr.Divergence = Gravity2D.NewFluxDivergence(fr.Tess, fr.PG)
	return
}

// Run computes one pass of face fluxes and the domain totals they imply
func (fr *FluxRun) Run() (s Summary, fluxes []types.Extensive, err error) {
	if fluxes, err = fr.Support.Calculate(fr.Tess, nil, fr.Cells, fr.Extensives, fr.EOS,
		fr.IP.Time, fr.IP.Dt); err != nil {
		return
	}
	var (
		rates  = fr.Divergence.Rates(fluxes)
		mass   = make([]float64, len(rates))
		momX   = make([]float64, len(rates))
		momY   = make([]float64, len(rates))
		energy = make([]float64, len(rates))
	)
	for i, r := range rates {
		mass[i], momX[i], momY[i], energy[i] = r.Mass, r.Momentum.X, r.Momentum.Y, r.Energy
	}
	s = Summary{
		Faces:           len(fluxes),
		Cells:           len(fr.Cells),
		BottomArea:      fr.Support.BottomArea(),
		CenterOfMass:    Gravity2D.CenterOfMass(fr.Tess, fr.PG, fr.Cells),
		TotalMomentum:   Gravity2D.TotalMomentum(fr.Tess, fr.PG, fr.Cells),
		NetMassRate:     floats.Sum(mass),
		NetMomentumRate: r2.Vec{X: floats.Sum(momX), Y: floats.Sum(momY)},
		NetEnergyRate:   floats.Sum(energy),
	}
	s.HasNaN = utils.IsNan(mass) || utils.IsNan(momX) || utils.IsNan(momY) || utils.IsNan(energy)
	fr.Log.WithField("memory", utils.GetMemUsage()).Debug("flux pass complete")
	return
}

func (s Summary) Print() {
	fmt.Printf("[%d]\t\t\t\t= Cells\n", s.Cells)
	fmt.Printf("[%d]\t\t\t\t= Faces\n", s.Faces)
	fmt.Printf("%8.5f\t\t= Bottom Area\n", s.BottomArea)
	fmt.Printf("%8.5f, %8.5f\t= Center of Mass\n", s.CenterOfMass.X, s.CenterOfMass.Y)
	fmt.Printf("%8.5f, %8.5f\t= Total Momentum\n", s.TotalMomentum.X, s.TotalMomentum.Y)
	fmt.Printf("%12.5e\t\t= Net Mass Rate\n", s.NetMassRate)
	fmt.Printf("%12.5e, %12.5e\t= Net Momentum Rate\n", s.NetMomentumRate.X, s.NetMomentumRate.Y)
	fmt.Printf("%12.5e\t\t= Net Energy Rate\n", s.NetEnergyRate)
	if s.HasNaN {
		fmt.Printf("warning: non finite fluxes found\n")
	}
}

// FluxCmd represents the flux command
var FluxCmd = &cobra.Command{
	Use:   "flux",
	Short: "Compute one pass of gravity supported face fluxes and print the domain totals",
	Long: `Compute one pass of gravity supported face fluxes over a Cartesian column and print the domain
totals. Without an input file the reference column is used: 5 by 100 cells on [-0.05,0.05]x[0,1],
gamma 5/3, gravity (0,-10), dt 0.01.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip = NewInputParameters(Cfg.GetString("inputConditionsFile"))
		)
		if pl := Cfg.GetInt("procLimit"); pl > 0 {
			ip.ProcLimit = pl
		}
		if Cfg.GetBool("profile") {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
		}
		ip.Print()
		fr, err := NewFluxRun(ip, logrus.StandardLogger())
		if err != nil {
			return
		}
		s, _, err := fr.Run()
		if err != nil {
			return
		}
		s.Print()
		return
	},
}

// NewInputParameters starts from the reference column and overlays the named YAML file, if any
func NewInputParameters(icFile string) (ip *InputParameters.InputParameters2D) {
	var (
		err  error
		data []byte
	)
	ip = InputParameters.NewInputParameters2D()
	if len(icFile) == 0 {
		return
	}
	if icFile, err = homedir.Expand(icFile); err != nil {
		panic(err)
	}
	if data, err = os.ReadFile(icFile); err != nil {
		panic(err)
	}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(FluxCmd)
	FluxCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Gravity\n\t- Dt\n\t- Mesh")
	FluxCmd.Flags().BoolP("profile", "p", false, "write a CPU profile to the working directory")
	FluxCmd.Flags().IntP("procLimit", "n", 0, "maximum number of go routines, zero uses all CPUs")
	Cfg.BindPFlag("inputConditionsFile", FluxCmd.Flags().Lookup("inputConditionsFile"))
	Cfg.BindPFlag("profile", FluxCmd.Flags().Lookup("profile"))
	Cfg.BindPFlag("procLimit", FluxCmd.Flags().Lookup("procLimit"))
}
