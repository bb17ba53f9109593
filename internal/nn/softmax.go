package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cmplx-xyttmt/deep-learning-v2-pytorch/internal/matrix"
	"github.com/cmplx-xyttmt/deep-learning-v2-pytorch/internal/parallel"
)

// Softmax converts raw class scores into per-row probability
// distributions:
//
//	P[i,j] = exp(x[i,j] - m_i) / Σ_k exp(x[i,k] - m_i),  m_i = max_k x[i,k]
//
// The per-row maximum is subtracted before exponentiating. Without it,
// scores above ~709 overflow exp and strongly negative rows underflow to an
// all-zero sum; with it, the largest exponent is always exp(0) = 1 and the
// mathematical result is unchanged. A row of equal scores therefore comes
// out exactly uniform at 1/C.
//
// Rows are independent, so normalization fans out across the batch using
// the parallel package.
type Softmax struct {
	par parallel.Config
}

// NewSoftmax creates a normalizer with the host's default parallelism.
func NewSoftmax() *Softmax {
	return &Softmax{par: parallel.DefaultConfig()}
}

// NewSoftmaxWithConfig creates a normalizer with explicit parallelism
// settings. parallel.Sequential() pins it to the calling goroutine.
func NewSoftmaxWithConfig(cfg parallel.Config) *Softmax {
	return &Softmax{par: cfg}
}

// Normalize returns a fresh matrix whose rows are probability
// distributions over the columns of scores. The input is validated for
// finiteness before any row is normalized and is never mutated; a NaN or
// infinite entry yields a DataValidityError and no result, never NaN rows.
func (s *Softmax) Normalize(scores *matrix.Matrix) (*matrix.Matrix, error) {
	if row, col, found := scores.NonFinite(); found {
		return nil, &DataValidityError{
			Op:    "Softmax.Normalize",
			Row:   row,
			Col:   col,
			Value: scores.At(row, col),
		}
	}

	rows, cols := scores.Dims()
	out := matrix.Zeros(rows, cols)

	parallel.For(rows, func(i int) {
		src := scores.Row(i)
		dst := out.Row(i)

		m := floats.Max(src)
		for j, v := range src {
			dst[j] = math.Exp(v - m)
		}
		// The max term contributes exp(0) = 1, so the sum is at least 1
		// and the division is always well defined.
		floats.Scale(1/floats.Sum(dst), dst)
	}, s.par)

	return out, nil
}
