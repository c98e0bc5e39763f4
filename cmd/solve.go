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

	"github.com/notargets/fem1d/FEM1D"
	"github.com/notargets/fem1d/InputParameters"
	"github.com/notargets/fem1d/model_problems/Poisson1D"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Assemble and solve the 1D model problem",
	Long: `
Assembles and solves the Poisson model problem -u'' = f on (0,L) with a
Neumann condition at x=0 and a Dirichlet condition at x=L, then reports the
nodal error against the closed form solution.

fem1d solve -k 10 -n 2`,
	Run: func(cmd *cobra.Command, args []string) {
		m1d := &Model1D{}
		m1d.K, _ = cmd.Flags().GetInt("k")
		m1d.N, _ = cmd.Flags().GetInt("n")
		m1d.C, _ = cmd.Flags().GetFloat64("neumannFlux")
		m1d.D, _ = cmd.Flags().GetFloat64("dirichletValue")
		m1d.L, _ = cmd.Flags().GetFloat64("length")
		m1d.Case, _ = cmd.Flags().GetInt("case")
		m1d.Quadrature, _ = cmd.Flags().GetString("quadrature")
		m1d.Storage, _ = cmd.Flags().GetString("storage")
		m1d.Samples, _ = cmd.Flags().GetInt("samples")
		m1d.Verbose, _ = cmd.Flags().GetBool("verbose")
		m1d.ParamFile, _ = cmd.Flags().GetString("inputParametersFile")
		m1d.Profile, _ = cmd.Flags().GetBool("profile")
		if m1d.Profile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		RunSolve(m1d)
	},
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().IntP("k", "k", 10, "Number of elements in model")
	SolveCmd.Flags().IntP("n", "n", 1, "polynomial degree")
	SolveCmd.Flags().IntP("case", "c", 0, "Case to run: 0 = QuadraticSource, 1 = ConstantSource")
	SolveCmd.Flags().Float64("neumannFlux", 5, "Neumann condition u'(0)")
	SolveCmd.Flags().Float64("dirichletValue", 2, "Dirichlet condition u(L)")
	SolveCmd.Flags().Float64("length", 4, "Domain length L")
	SolveCmd.Flags().StringP("quadrature", "q", "GaussLegendre", "quadrature rule: GaussLegendre or NewtonCotes")
	SolveCmd.Flags().StringP("storage", "s", "Dense", "global matrix storage: Dense or Sparse")
	SolveCmd.Flags().Int("samples", 10, "solution samples per element")
	SolveCmd.Flags().BoolP("verbose", "v", false, "print sampled solution values")
	SolveCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file of input parameters, overrides flags")
	SolveCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}

type Model1D struct {
	K, N       int // Number of elements, Polynomial Degree
	C, D, L    float64
	Case       int
	Quadrature string
	Storage    string
	Samples    int
	Verbose    bool
	ParamFile  string
	Profile    bool
}

func RunSolve(m1d *Model1D) {
	if len(m1d.ParamFile) != 0 {
		data, err := os.ReadFile(m1d.ParamFile)
		if err != nil {
			panic(err)
		}
		ip := &InputParameters.InputParameters1D{}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
		ip.Print()
		m1d.K = ip.NumElements
		m1d.N = ip.PolynomialOrder
		m1d.L = ip.DomainLength
		if len(ip.Quadrature) != 0 {
			m1d.Quadrature = ip.Quadrature
		}
		if len(ip.Storage) != 0 {
			m1d.Storage = ip.Storage
		}
		if ip.SamplesPerElement != 0 {
			m1d.Samples = ip.SamplesPerElement
		}
		if v, ok := ip.BCs["NeumannFlux"]; ok {
			m1d.C = v
		}
		if v, ok := ip.BCs["DirichletValue"]; ok {
			m1d.D = v
		}
		if len(ip.Case) != 0 {
			switch ip.Case {
			case "ConstantSource":
				m1d.Case = int(Poisson1D.ConstantSource)
			default:
				m1d.Case = int(Poisson1D.QuadraticSource)
			}
		}
	}
	qt, err := FEM1D.NewQuadratureType(m1d.Quadrature)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	st, err := FEM1D.NewStorageType(m1d.Storage)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	c := Poisson1D.NewPoisson(m1d.C, m1d.D, m1d.L, m1d.N, m1d.K,
		Poisson1D.CaseType(m1d.Case), qt, st)
	if err = c.Run(m1d.Verbose, m1d.Samples); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
}
