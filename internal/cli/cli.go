// SPDX-License-Identifier: MIT

// Package cli implements the lvmesh command-line interface.
//
// # Commands
//
//   - generate: build a block from a TOML file and/or flags, then export
//     CSV coordinates and a PNG drawing
//   - init: write the default configuration file
//   - laws: list the clustering laws
//
// All commands accept --verbose (-v) for debug logging. The logger travels
// through context.Context.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version, set via SetVersion
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the values reported by --version. main passes values
// injected with -ldflags.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	date = d
}

// Execute runs the command tree under ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd assembles the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "lvmesh",
		Short:         "lvmesh generates structured curvilinear channel meshes",
		Long:          `lvmesh builds a wall-clustered structured 2D grid over a variable-height channel, derives its quadrilateral cells and exports coordinates and drawings.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lvmesh %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newLawsCmd())

	return root
}
