// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unsafe"

	"github.com/katalvlaran/lvmesh/geometry"
)

// ErrNilContainer indicates a nil *geometry.Vertices.
var ErrNilContainer = errors.New("export: nil container")

const (
	methodWriteCSV  = "WriteCSV"
	methodExportCSV = "ExportCSV"
)

// Header returns the CSV header for a container of the given dimensionality.
func Header(dims int) []string {
	if dims == 3 {
		return []string{"id", "x", "y", "z"}
	}
	return []string{"id", "x", "y"}
}

// WriteCSV writes vs to w.
func WriteCSV[F geometry.Float](vs *geometry.Vertices[F], w io.Writer) error {
	if vs == nil {
		return fmt.Errorf("%s: %w", methodWriteCSV, ErrNilContainer)
	}
	var zero F
	bitSize := int(unsafe.Sizeof(zero)) * 8
	format := func(v F) string { return strconv.FormatFloat(float64(v), 'g', -1, bitSize) }

	cw := csv.NewWriter(w)
	if err := cw.Write(Header(vs.Dims())); err != nil {
		return fmt.Errorf("%s: header: %w", methodWriteCSV, err)
	}
	var werr error
	record := make([]string, 0, 4)
	vs.Each(func(v geometry.Vertex[F]) bool {
		record = append(record[:0], strconv.Itoa(v.ID()), format(v.X()), format(v.Y()))
		if !vs.Is2D() {
			record = append(record, format(v.Z()))
		}
		if werr = cw.Write(record); werr != nil {
			werr = fmt.Errorf("%s: vertex %d: %w", methodWriteCSV, v.ID(), werr)
			return false
		}
		return true
	})
	if werr != nil {
		return werr
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteCSV, err)
	}

	return nil
}

// ExportCSV writes vs to the file at path, creating or truncating it.
func ExportCSV[F geometry.Float](vs *geometry.Vertices[F], path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w", methodExportCSV, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: %w", methodExportCSV, cerr)
		}
	}()

	return WriteCSV(vs, f)
}
