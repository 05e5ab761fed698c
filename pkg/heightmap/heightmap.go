// Package heightmap produces the thickness grid that drives lithophane
// construction. An image is converted to grayscale, resampled to the
// target physical resolution, optionally smoothed, and mapped linearly
// from brightness to material thickness.
package heightmap

import "github.com/pkg/errors"

// Heightmap is a rows×cols grid of thickness values in millimeters,
// row-major, together with the physical size of one cell. It is
// immutable once built.
type Heightmap struct {
	rows, cols int
	values     []float64

	// ScaleX and ScaleY are the cell pitch in mm along the column and
	// row axes respectively.
	ScaleX float64
	ScaleY float64
}

// FromGrid builds a Heightmap from a row-major 2D slice of thickness
// values. All rows must have equal length. Used by callers that already
// have thickness data, and by tests.
func FromGrid(grid [][]float64, scaleX, scaleY float64) (*Heightmap, error) {
	rows := len(grid)
	if rows == 0 {
		return nil, errors.New("heightmap: empty grid")
	}
	cols := len(grid[0])
	values := make([]float64, 0, rows*cols)
	for i, row := range grid {
		if len(row) != cols {
			return nil, errors.Errorf("heightmap: row %d has %d values, want %d", i, len(row), cols)
		}
		values = append(values, row...)
	}
	hm := &Heightmap{
		rows:   rows,
		cols:   cols,
		values: values,
		ScaleX: scaleX,
		ScaleY: scaleY,
	}
	if err := hm.Validate(); err != nil {
		return nil, err
	}
	return hm, nil
}

// Rows returns the number of rows.
func (h *Heightmap) Rows() int { return h.rows }

// Cols returns the number of columns.
func (h *Heightmap) Cols() int { return h.cols }

// At returns the thickness in mm at (row, col).
func (h *Heightmap) At(row, col int) float64 {
	return h.values[row*h.cols+col]
}

// Validate checks the invariants triangulation depends on: at least one
// grid cell, positive cell pitch, and non-negative thickness values.
// It runs before any geometry is generated.
func (h *Heightmap) Validate() error {
	if h.rows < 2 || h.cols < 2 {
		return errors.Errorf("heightmap: grid is %dx%d, need at least 2x2", h.rows, h.cols)
	}
	if h.ScaleX <= 0 || h.ScaleY <= 0 {
		return errors.Errorf("heightmap: cell pitch %gx%g mm, must be positive", h.ScaleX, h.ScaleY)
	}
	for i, v := range h.values {
		if v < 0 {
			return errors.Errorf("heightmap: negative thickness %g at row %d col %d", v, i/h.cols, i%h.cols)
		}
	}
	return nil
}

// ModelWidth returns the physical width of the lattice footprint in mm.
func (h *Heightmap) ModelWidth() float64 {
	return float64(h.cols-1) * h.ScaleX
}

// ModelHeight returns the physical height of the lattice footprint in mm.
func (h *Heightmap) ModelHeight() float64 {
	return float64(h.rows-1) * h.ScaleY
}
