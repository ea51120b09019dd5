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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/positroncascade/lid-driven-cavity-problem/InputParameters"
	"github.com/positroncascade/lid-driven-cavity-problem/StaggeredGrid"
	"github.com/positroncascade/lid-driven-cavity-problem/model_problems/LidDrivenCavity"
	"github.com/positroncascade/lid-driven-cavity-problem/utils"
)

type ModelResidual struct {
	ICFile         string
	ParallelDegree int // Overrides the input file when non zero
	Debug          bool
	Verbose        bool
	Profile        bool
}

// ResidualCmd represents the residual command
var ResidualCmd = &cobra.Command{
	Use:   "residual",
	Short: "Evaluate the cavity residual once and report its norms",
	Long:  `Builds the staggered meshes from an input file, evaluates the residual at the initial state and prints norms per equation`,
	Run: func(cmd *cobra.Command, args []string) {
		mr := &ModelResidual{
			ICFile:         viper.GetString("inputConditionsFile"),
			ParallelDegree: viper.GetInt("parallelDegree"),
			Debug:          viper.GetBool("debug"),
			Verbose:        viper.GetBool("verbose"),
			Profile:        viper.GetBool("profile"),
		}
		if mr.Profile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		ip, err := processInput(mr)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if _, err = RunResidual(mr, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func processInput(mr *ModelResidual) (ip *InputParameters.InputParametersCavity, err error) {
	ip = InputParameters.NewInputParametersCavity()
	if len(mr.ICFile) == 0 {
		if mr.Verbose {
			exampleFile := `
########################################
Title: "Test Case"
Nx: 32
Ny: 32
Rho: 1.
Mi: 0.01
Dt: 0.01
LidVelocity: 1.
InitType: Previous # Can be "Zero" or "Random"
########################################
`
			fmt.Printf("No input file (-I, --inputConditionsFile), using defaults. Example File:%s\n", exampleFile)
		}
		return
	}
	var data []byte
	if data, err = os.ReadFile(mr.ICFile); err != nil {
		return nil, err
	}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", mr.ICFile, err)
	}
	return
}

func init() {
	rootCmd.AddCommand(ResidualCmd)
	ResidualCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Nx, Ny\n\t- Rho, Mi, Dt\n\t- LidVelocity")
	ResidualCmd.Flags().IntP("parallelDegree", "p", 0, "number of go routines per equation, overrides the input file")
	ResidualCmd.Flags().Bool("debug", false, "check that every residual slot is assigned")
	ResidualCmd.Flags().BoolP("verbose", "v", false, "print case parameters and memory use")
	ResidualCmd.Flags().Bool("profile", false, "write a CPU profile to the current directory")
	if err := viper.BindPFlags(ResidualCmd.Flags()); err != nil {
		panic(err)
	}
}

func RunResidual(mr *ModelResidual, ip *InputParameters.InputParametersCavity) (rp *LidDrivenCavity.Report, err error) {
	var (
		g  *StaggeredGrid.Graph
		rf *LidDrivenCavity.ResidualFunction
		it LidDrivenCavity.InitType
		X  []float64
		R  []float64
	)
	if g, err = ip.NewGraph(); err != nil {
		return
	}
	np := ip.ParallelDegree
	if mr.ParallelDegree != 0 {
		np = mr.ParallelDegree
	}
	rf, err = LidDrivenCavity.NewResidualFunction(g,
		LidDrivenCavity.WithParallelDegree(np),
		LidDrivenCavity.WithDebug(mr.Debug || ip.Debug))
	if err != nil {
		return
	}
	if it, err = LidDrivenCavity.NewInitType(ip.InitType); err != nil {
		return
	}
	if X, err = LidDrivenCavity.NewState(g, rf.Layout(), it, ip.Seed); err != nil {
		return
	}
	if mr.Verbose {
		ip.Print()
		g.Print()
		fmt.Printf("Initial state: %s, %d unknowns\n", it.Print(), len(X))
	}
	if R, err = rf.Evaluate(X); err != nil {
		return
	}
	if rp, err = rf.Layout().NewReport(R); err != nil {
		return
	}
	rp.Print()
	if mr.Verbose {
		fmt.Println(utils.GetMemUsage())
	}
	return
}
