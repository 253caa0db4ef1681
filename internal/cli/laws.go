// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/gridgen"
)

var lawFormulas = map[gridgen.Law]string{
	gridgen.Uniform:             "y = eta·h",
	gridgen.SymmetricTangent:    "y = h·½(1 + tanh(β(2eta−1))/tanh β)",
	gridgen.TopClusteredTangent: "y = h·tanh(β·eta)/tanh β",
}

func newLawsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "laws",
		Short: "List the wall clustering laws",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			printTitle(w, "Clustering laws")
			for _, l := range gridgen.Laws() {
				printKeyValue(w, l.String(), lawFormulas[l])
			}
		},
	}
}
