// Copyright 2026 The deep-learning-v2-pytorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for the 2-D float64 matrices the
// classifier core computes over.
//
// A Matrix always has at least one row and one column and is backed by a
// gonum mat.Dense, so gonum's printing and statistics helpers work on the
// value returned by Dense().
//
// Example:
//
//	batch, err := matrix.FromSlice(features, n, 784)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(mat.Formatted(batch.Dense()))
package matrix
