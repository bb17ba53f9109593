// Package matrix implements the dense 2-D float64 matrix type used
// throughout the classifier core.
//
// A Matrix is a thin wrapper around gonum's mat.Dense that pins the
// representation to exactly two dimensions (batch, feature) and adds the
// small set of operations the forward pass needs: matrix multiplication,
// row-broadcast addition, pointwise application, and finiteness scanning.
package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense 2-D float64 matrix with at least one row and one column.
type Matrix struct {
	d *mat.Dense
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	r, _ := m.d.Dims()
	return r
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	_, c := m.d.Dims()
	return c
}

// Dims returns the (rows, cols) pair.
func (m *Matrix) Dims() (int, int) {
	return m.d.Dims()
}

// At returns the element at (i, j). Panics if out of range.
func (m *Matrix) At(i, j int) float64 {
	return m.d.At(i, j)
}

// Set assigns the element at (i, j). Panics if out of range.
func (m *Matrix) Set(i, j int, v float64) {
	m.d.Set(i, j, v)
}

// Data returns the backing slice in row-major order. Mutating it mutates
// the matrix.
func (m *Matrix) Data() []float64 {
	return m.d.RawMatrix().Data
}

// Row returns a view of row i backed by the matrix's storage. The view is
// valid until the matrix is mutated; callers that only read may hold it
// freely.
func (m *Matrix) Row(i int) []float64 {
	return m.d.RawRowView(i)
}

// Dense exposes the underlying gonum matrix for callers that want to use
// gonum directly (display, statistics). The returned value shares storage
// with m.
func (m *Matrix) Dense() *mat.Dense {
	return m.d
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{d: mat.DenseCopyOf(m.d)}
}

// Equal reports whether m and o have identical shape and bit-identical
// elements.
func (m *Matrix) Equal(o *Matrix) bool {
	return mat.Equal(m.d, o.d)
}

// MatMul returns the matrix product m · o as a fresh matrix. The inner
// dimensions must agree; gonum panics otherwise, so callers validate shapes
// first.
func (m *Matrix) MatMul(o *Matrix) *Matrix {
	r, _ := m.d.Dims()
	_, c := o.d.Dims()
	out := mat.NewDense(r, c, nil)
	out.Mul(m.d, o.d)
	return &Matrix{d: out}
}

// AddRow adds the 1×C row vector to every row of m, in place. Panics if row
// is not 1×Cols.
func (m *Matrix) AddRow(row *Matrix) {
	rr, rc := row.d.Dims()
	_, c := m.d.Dims()
	if rr != 1 || rc != c {
		panic("matrix: AddRow requires a 1-row vector matching the receiver's width")
	}
	v := row.d.RawRowView(0)
	for i := 0; i < m.Rows(); i++ {
		dst := m.d.RawRowView(i)
		for j := range dst {
			dst[j] += v[j]
		}
	}
}

// Apply returns a fresh matrix with f applied to every element of m.
func (m *Matrix) Apply(f func(float64) float64) *Matrix {
	out := mat.NewDense(m.Rows(), m.Cols(), nil)
	out.Apply(func(_, _ int, v float64) float64 { return f(v) }, m.d)
	return &Matrix{d: out}
}

// NonFinite scans m in row-major order and reports the position of the
// first NaN or infinity. found is false when every element is finite.
func (m *Matrix) NonFinite() (row, col int, found bool) {
	r, c := m.d.Dims()
	for i := 0; i < r; i++ {
		rv := m.d.RawRowView(i)
		for j := 0; j < c; j++ {
			if math.IsNaN(rv[j]) || math.IsInf(rv[j], 0) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// RowRange returns a copy of rows [from, to) as a fresh (to-from)×Cols
// matrix. Panics if the range is empty or out of bounds.
func (m *Matrix) RowRange(from, to int) *Matrix {
	r, c := m.d.Dims()
	if from < 0 || to > r || from >= to {
		panic("matrix: RowRange out of bounds")
	}
	out := mat.NewDense(to-from, c, nil)
	for i := from; i < to; i++ {
		copy(out.RawRowView(i-from), m.d.RawRowView(i))
	}
	return &Matrix{d: out}
}
