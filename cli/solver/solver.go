// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package solver

import (
	"github.com/spf13/cobra"
)

var (
	SolverCLI = &cobra.Command{
		Use:   "solver-config",
		Short: "Solver configuration related commands",
	}
)

func init() {
	SolverCLI.AddCommand(testSolverConfigCMD)
}
