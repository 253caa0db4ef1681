// SPDX-License-Identifier: MIT

// Package config is the TOML run configuration of the lvmesh command.
//
// A file only needs the keys it overrides; everything else keeps the
// values of Default. Unknown keys are rejected.
//
//	[grid]
//	nx = 400
//	ny = 200
//	length_x = 2.0
//	law = "top-clustered-tangent"
//	beta = 2.0
//	precision = "float64"
//
//	[contour]
//	expr = "1 - x**2/10"
//
//	[output]
//	csv = ""
//	png = "mesh.png"
//	draw = "cells"
//	width = 2560
//	height = 1440
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/gridgen"
	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/render"
)

// ErrInvalidConfig wraps every load and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Precision names.
const (
	PrecisionFloat64 = "float64"
	PrecisionFloat32 = "float32"
)

// Draw modes.
const (
	DrawCells  = "cells"
	DrawPoints = "points"
)

// Config is a complete run description.
type Config struct {
	Grid    Grid    `toml:"grid"`
	Contour Contour `toml:"contour"`
	Output  Output  `toml:"output"`
}

// Grid selects lattice shape and clustering.
type Grid struct {
	Nx        int     `toml:"nx"`
	Ny        int     `toml:"ny"`
	LengthX   float64 `toml:"length_x"`
	Law       string  `toml:"law"`
	Beta      float64 `toml:"beta"`
	Precision string  `toml:"precision"`
}

// Contour holds the channel height expression in x.
type Contour struct {
	Expr string `toml:"expr"`
}

// Output selects the artefacts to write. Empty paths disable an artefact.
type Output struct {
	CSV    string `toml:"csv"`
	PNG    string `toml:"png"`
	Draw   string `toml:"draw"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Default returns the reference intake run: a 400×200 top-clustered grid
// over length 2 under h(x) = 1 − x²/10.
func Default() Config {
	return Config{
		Grid: Grid{
			Nx:        400,
			Ny:        200,
			LengthX:   2.0,
			Law:       gridgen.TopClusteredTangent.String(),
			Beta:      gridgen.DefaultBeta,
			Precision: PrecisionFloat64,
		},
		Contour: Contour{Expr: "1 - x**2/10"},
		Output: Output{
			PNG:    "mesh.png",
			Draw:   DrawCells,
			Width:  render.DefaultWidth,
			Height: render.DefaultHeight,
		},
	}
}

// Load reads the file at path over Default and validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML from r over Default and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}

// Validate reports every field outside its domain. Each joined error
// wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig))
	}

	if c.Grid.Nx < geometry.MinAxisPoints || c.Grid.Ny < geometry.MinAxisPoints {
		bad("grid.nx=%d, grid.ny=%d: each must be ≥ %d", c.Grid.Nx, c.Grid.Ny, geometry.MinAxisPoints)
	}
	if math.IsNaN(c.Grid.LengthX) || math.IsInf(c.Grid.LengthX, 0) || c.Grid.LengthX <= 0 {
		bad("grid.length_x=%g: must be finite and > 0", c.Grid.LengthX)
	}
	if _, err := gridgen.ParseLaw(c.Grid.Law); err != nil {
		bad("grid.law=%q: want one of %s", c.Grid.Law, lawList())
	}
	if math.IsNaN(c.Grid.Beta) || math.IsInf(c.Grid.Beta, 0) || c.Grid.Beta == 0 {
		bad("grid.beta=%g: must be finite and non-zero", c.Grid.Beta)
	}
	switch c.Grid.Precision {
	case PrecisionFloat64, PrecisionFloat32:
	default:
		bad("grid.precision=%q: want %s or %s", c.Grid.Precision, PrecisionFloat64, PrecisionFloat32)
	}
	if _, err := gridgen.ParseContour(c.Contour.Expr); err != nil {
		bad("contour.expr: %v", err)
	}
	switch c.Output.Draw {
	case DrawCells, DrawPoints:
	default:
		bad("output.draw=%q: want %s or %s", c.Output.Draw, DrawCells, DrawPoints)
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		bad("output.width=%d, output.height=%d: must be > 0", c.Output.Width, c.Output.Height)
	}

	return errors.Join(errs...)
}

// BlockConfig converts c into the generator input of block id.
func (c Config) BlockConfig(id int) (mesh.BlockConfig, error) {
	law, err := gridgen.ParseLaw(c.Grid.Law)
	if err != nil {
		return mesh.BlockConfig{}, fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	contour, err := gridgen.ParseContour(c.Contour.Expr)
	if err != nil {
		return mesh.BlockConfig{}, fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	beta := c.Grid.Beta

	return mesh.BlockConfig{
		ID:      id,
		Nx:      c.Grid.Nx,
		Ny:      c.Grid.Ny,
		LengthX: c.Grid.LengthX,
		Law:     law,
		Beta:    &beta,
		Contour: contour,
	}, nil
}

func lawList() string {
	names := make([]string, 0, len(gridgen.Laws()))
	for _, l := range gridgen.Laws() {
		names = append(names, l.String())
	}
	return strings.Join(names, ", ")
}
