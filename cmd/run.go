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

	"github.com/cfdlab/shocktube/Euler1D"
	"github.com/cfdlab/shocktube/InputParameters"
	"github.com/cfdlab/shocktube/snapshot"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <parameter_file>",
	Short: "Run a shock tube simulation from a parameter file",
	Long: `
Runs the 1D Euler solver with parameters read from the given file,
either key=value text or YAML. A missing file falls back to the
built in Sod problem defaults with a warning. Snapshots are written
as CSV files under the configured output directory.

shocktube run params.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		ip, err := InputParameters.ReadParameterFile(args[0])
		if err != nil {
			return err
		}
		applyOverrides(cmd, ip)
		ip.Print()
		return RunShockTube(ip)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Float64("CFL", 0, "override the CFL number from the parameter file")
	runCmd.Flags().Float64("finalTime", 0, "override the target end time for the sim")
	runCmd.Flags().IntP("nx", "n", 0, "override the number of cells in the mesh")
	runCmd.Flags().StringP("outputDir", "o", "", "override the snapshot output directory")
	runCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of the run")
}

func applyOverrides(cmd *cobra.Command, ip *InputParameters.Parameters) {
	if cmd.Flags().Changed("CFL") {
		ip.CFL, _ = cmd.Flags().GetFloat64("CFL")
	}
	if cmd.Flags().Changed("finalTime") {
		ip.TFinal, _ = cmd.Flags().GetFloat64("finalTime")
	}
	if cmd.Flags().Changed("nx") {
		ip.Nx, _ = cmd.Flags().GetInt("nx")
	}
	if cmd.Flags().Changed("outputDir") {
		ip.OutputDir, _ = cmd.Flags().GetString("outputDir")
	}
}

// RunShockTube creates the output directory, builds the solver and drives
// it to completion, emitting CSV snapshots along the way. A bad output
// directory is fatal; a failed snapshot write is logged and skipped
// inside the solver loop.
func RunShockTube(ip *InputParameters.Parameters) error {
	if err := os.MkdirAll(ip.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", ip.OutputDir, err)
	}
	c := Euler1D.NewShockTube(ip)
	c.Run(func(step int, time float64, g *Euler1D.Grid) error {
		return snapshot.WriteCSV(ip.OutputDir, step, g, ip.Gamma)
	})
	return nil
}
