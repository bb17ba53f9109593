package nn

import (
	"fmt"

	"github.com/cmplx-xyttmt/deep-learning-v2-pytorch/internal/matrix"
)

// Affine implements one learnable affine map:
//
//	y = x · W + b
//
// where x is (batch, inFeatures), W is (inFeatures, outFeatures) and b is a
// row vector of length outFeatures broadcast across the batch.
//
// Parameters are owned by the layer and are read-only as far as the forward
// pass is concerned. An external trainer may rewrite them through Weight()
// and Bias(), but never concurrently with a forward call.
type Affine struct {
	inFeatures  int
	outFeatures int
	weight      *matrix.Matrix // (inFeatures, outFeatures)
	bias        *matrix.Matrix // (1, outFeatures)
}

// NewAffine creates an affine layer with the given widths, filling
// parameters with the supplied policy. A nil init defaults to Glorot(1);
// callers wanting different draws pass their own seed.
func NewAffine(inFeatures, outFeatures int, init Initializer) (*Affine, error) {
	if inFeatures < 1 || outFeatures < 1 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf(
			"affine layer widths must be positive, got %d→%d", inFeatures, outFeatures)}
	}
	if init == nil {
		init = Glorot(1)
	}

	weight := matrix.Zeros(inFeatures, outFeatures)
	bias := matrix.Zeros(1, outFeatures)
	if err := init.initialize(weight, bias); err != nil {
		return nil, err
	}

	return &Affine{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
	}, nil
}

// Forward computes x · W + b for a (batch, inFeatures) input and returns a
// fresh (batch, outFeatures) matrix. The input is never mutated. Returns a
// ShapeMismatchError when the input width disagrees with the layer's.
func (l *Affine) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	if input.Cols() != l.inFeatures {
		return nil, &ShapeMismatchError{Op: "Affine.Forward", Want: l.inFeatures, Got: input.Cols()}
	}

	out := input.MatMul(l.weight)
	out.AddRow(l.bias)
	return out, nil
}

// InFeatures returns the layer's declared input width.
func (l *Affine) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the layer's output width.
func (l *Affine) OutFeatures() int {
	return l.outFeatures
}

// Weight returns the (inFeatures, outFeatures) weight matrix. The returned
// matrix shares storage with the layer; only an external trainer should
// write through it, and never during a forward call.
func (l *Affine) Weight() *matrix.Matrix {
	return l.weight
}

// Bias returns the 1×outFeatures bias row vector, shared with the layer
// under the same rule as Weight.
func (l *Affine) Bias() *matrix.Matrix {
	return l.bias
}
