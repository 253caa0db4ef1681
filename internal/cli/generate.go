// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvmesh/config"
	"github.com/katalvlaran/lvmesh/export"
	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/render"
)

// generateOpts holds the generate flags. Only flags set on the command
// line override the configuration file.
type generateOpts struct {
	configPath string
	cfg        config.Config
}

func newGenerateCmd() *cobra.Command {
	opts := generateOpts{cfg: config.Default()}
	c := &opts.cfg

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a mesh and write its coordinates and drawing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts.configPath, cmd.Flags(), opts.cfg)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	f.IntVar(&c.Grid.Nx, "nx", c.Grid.Nx, "points along x")
	f.IntVar(&c.Grid.Ny, "ny", c.Grid.Ny, "points along y")
	f.Float64Var(&c.Grid.LengthX, "length", c.Grid.LengthX, "channel length")
	f.StringVar(&c.Grid.Law, "law", c.Grid.Law, "clustering law (see 'lvmesh laws')")
	f.Float64Var(&c.Grid.Beta, "beta", c.Grid.Beta, "clustering strength")
	f.StringVar(&c.Grid.Precision, "precision", c.Grid.Precision, "coordinate precision: float64, float32")
	f.StringVar(&c.Contour.Expr, "contour", c.Contour.Expr, "channel height h(x)")
	f.StringVar(&c.Output.CSV, "csv", c.Output.CSV, "coordinate CSV path (empty to skip)")
	f.StringVar(&c.Output.PNG, "png", c.Output.PNG, "PNG path (empty to skip)")
	f.StringVar(&c.Output.Draw, "draw", c.Output.Draw, "PNG content: cells, points")
	f.IntVar(&c.Output.Width, "width", c.Output.Width, "PNG width in pixels")
	f.IntVar(&c.Output.Height, "height", c.Output.Height, "PNG height in pixels")

	return cmd
}

// flagFields maps each override flag onto its configuration field.
var flagFields = map[string]func(dst *config.Config, src config.Config){
	"nx":        func(d *config.Config, s config.Config) { d.Grid.Nx = s.Grid.Nx },
	"ny":        func(d *config.Config, s config.Config) { d.Grid.Ny = s.Grid.Ny },
	"length":    func(d *config.Config, s config.Config) { d.Grid.LengthX = s.Grid.LengthX },
	"law":       func(d *config.Config, s config.Config) { d.Grid.Law = s.Grid.Law },
	"beta":      func(d *config.Config, s config.Config) { d.Grid.Beta = s.Grid.Beta },
	"precision": func(d *config.Config, s config.Config) { d.Grid.Precision = s.Grid.Precision },
	"contour":   func(d *config.Config, s config.Config) { d.Contour.Expr = s.Contour.Expr },
	"csv":       func(d *config.Config, s config.Config) { d.Output.CSV = s.Output.CSV },
	"png":       func(d *config.Config, s config.Config) { d.Output.PNG = s.Output.PNG },
	"draw":      func(d *config.Config, s config.Config) { d.Output.Draw = s.Output.Draw },
	"width":     func(d *config.Config, s config.Config) { d.Output.Width = s.Output.Width },
	"height":    func(d *config.Config, s config.Config) { d.Output.Height = s.Output.Height },
}

// resolveConfig loads path (or Default) and applies the flags that were set.
func resolveConfig(path string, flags *pflag.FlagSet, fromFlags config.Config) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	flags.Visit(func(f *pflag.Flag) {
		if apply, ok := flagFields[f.Name]; ok {
			apply(&cfg, fromFlags)
		}
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runGenerate(ctx context.Context, cfg config.Config, out io.Writer) error {
	if cfg.Grid.Precision == config.PrecisionFloat32 {
		return generate[float32](ctx, cfg, out)
	}
	return generate[float64](ctx, cfg, out)
}

func generate[F geometry.Float](ctx context.Context, cfg config.Config, out io.Writer) error {
	logger := loggerFromContext(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	bc, err := cfg.BlockConfig(0)
	if err != nil {
		return err
	}
	logger.Debug("generating",
		"nx", cfg.Grid.Nx, "ny", cfg.Grid.Ny, "length", cfg.Grid.LengthX,
		"law", bc.Law, "beta", cfg.Grid.Beta, "precision", cfg.Grid.Precision)

	prog := newProgress(logger)
	block, err := mesh.NewBlock[F](bc)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d vertices, %d cells", block.Vertices().Len(), block.Cells().Len()))

	var written []string
	if cfg.Output.CSV != "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		prog = newProgress(logger)
		if err := export.ExportCSV(block.Vertices(), cfg.Output.CSV); err != nil {
			return err
		}
		prog.done("Exported coordinates")
		written = append(written, cfg.Output.CSV)
	}
	if cfg.Output.PNG != "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		prog = newProgress(logger)
		size := render.WithSize(cfg.Output.Width, cfg.Output.Height)
		if cfg.Output.Draw == config.DrawPoints {
			err = render.SavePoints(block.Vertices(), cfg.Output.PNG, size)
		} else {
			err = render.SaveCells(block.Vertices(), block.Cells(), cfg.Output.PNG, size)
		}
		if err != nil {
			return err
		}
		prog.done("Rendered " + cfg.Output.Draw)
		written = append(written, cfg.Output.PNG)
	}

	printSuccess(out, "Generated %d×%d %s mesh (%d cells)", cfg.Grid.Nx, cfg.Grid.Ny, bc.Law, block.Cells().Len())
	for _, p := range written {
		printFile(out, p)
	}
	return nil
}
