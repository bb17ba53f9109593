package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Zeros creates a rows×cols matrix filled with zeros. Panics if either
// dimension is less than 1; dimensions come from validated configuration,
// so a bad value here is programmer error.
func Zeros(rows, cols int) *Matrix {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("matrix: Zeros requires positive dimensions, got %d×%d", rows, cols))
	}
	return &Matrix{d: mat.NewDense(rows, cols, nil)}
}

// FromSlice creates a rows×cols matrix from row-major data. The slice is
// copied, so the caller keeps ownership of data.
func FromSlice(data []float64, rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("matrix: invalid dimensions %d×%d (must be positive)", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("matrix: data length %d does not match %d×%d", len(data), rows, cols)
	}
	cp := make([]float64, len(data))
	copy(cp, data)
	return &Matrix{d: mat.NewDense(rows, cols, cp)}, nil
}

// FromDense wraps an existing gonum matrix. The matrix shares storage with
// d; use Clone for an independent copy.
func FromDense(d *mat.Dense) (*Matrix, error) {
	r, c := d.Dims()
	if r < 1 || c < 1 {
		return nil, fmt.Errorf("matrix: invalid dimensions %d×%d (must be positive)", r, c)
	}
	return &Matrix{d: d}, nil
}
