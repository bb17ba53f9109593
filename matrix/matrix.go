// Copyright 2026 The deep-learning-v2-pytorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cmplx-xyttmt/deep-learning-v2-pytorch/internal/matrix"
)

// Matrix is a dense 2-D float64 matrix, the carrier for batches, scores and
// probability distributions.
type Matrix = matrix.Matrix

// Zeros creates a rows×cols matrix filled with zeros.
//
// Example:
//
//	batch := matrix.Zeros(32, 784)
func Zeros(rows, cols int) *Matrix {
	return matrix.Zeros(rows, cols)
}

// FromSlice creates a rows×cols matrix from row-major data, copying the
// slice.
//
// Example:
//
//	scores, err := matrix.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
func FromSlice(data []float64, rows, cols int) (*Matrix, error) {
	return matrix.FromSlice(data, rows, cols)
}

// FromDense wraps an existing gonum matrix, sharing its storage.
func FromDense(d *mat.Dense) (*Matrix, error) {
	return matrix.FromDense(d)
}
