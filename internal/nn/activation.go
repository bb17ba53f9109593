// Package nn implements the feed-forward classifier inference core: affine
// layers, pointwise activations, stage composition, and softmax
// normalization.
//
// The building blocks mirror the usual layer-stack shape:
//
//	net, err := nn.NewFeedForward(nn.Config{
//	    InputWidth: 784,
//	    Stages: []nn.Stage{
//	        {Width: 128, Activation: nn.ReLU},
//	        {Width: 10, Activation: nn.Identity},
//	    },
//	    Init: nn.Glorot(42),
//	})
//	scores, err := net.Forward(batch)          // (N, 784) → (N, 10)
//	probs, err := nn.NewSoftmax().Normalize(scores)
//
// Everything is a pure transform: forward evaluation reads parameters and
// input, mutates neither, and is deterministic. Training (gradients,
// optimizers) is an external concern; the only rule the core imposes on a
// trainer is that no parameter write may overlap a forward call on the same
// network.
package nn

import (
	"fmt"
	"math"

	"github.com/cmplx-xyttmt/deep-learning-v2-pytorch/internal/matrix"
)

// ActivationKind identifies one of the supported pointwise nonlinearities.
type ActivationKind int

const (
	// Identity leaves its input unchanged. Note that a hidden stage using
	// Identity adds no representational power: a chain of affine maps with
	// identity between them collapses to a single affine map.
	Identity ActivationKind = iota

	// Sigmoid applies σ(x) = 1 / (1 + exp(-x)), squashing to (0, 1).
	Sigmoid

	// ReLU applies f(x) = max(0, x).
	ReLU
)

// String returns the conventional lower-case name of the kind.
func (k ActivationKind) String() string {
	switch k {
	case Identity:
		return "identity"
	case Sigmoid:
		return "sigmoid"
	case ReLU:
		return "relu"
	default:
		return fmt.Sprintf("ActivationKind(%d)", int(k))
	}
}

func (k ActivationKind) valid() bool {
	return k == Identity || k == Sigmoid || k == ReLU
}

// Activation is a stateless pointwise transform, one of the ActivationKind
// variants. The zero value is Identity.
type Activation struct {
	kind ActivationKind
}

// NewActivation returns the activation for kind. Panics on an unknown kind;
// network construction validates kinds before reaching here.
func NewActivation(kind ActivationKind) Activation {
	if !kind.valid() {
		panic("nn: unknown activation kind " + kind.String())
	}
	return Activation{kind: kind}
}

// Kind returns the activation's variant tag.
func (a Activation) Kind() ActivationKind {
	return a.kind
}

// Apply returns a fresh matrix with the activation applied elementwise.
// Defined for all finite inputs; the input is never mutated.
func (a Activation) Apply(in *matrix.Matrix) *matrix.Matrix {
	switch a.kind {
	case Sigmoid:
		return in.Apply(sigmoid)
	case ReLU:
		return in.Apply(relu)
	default:
		return in.Clone()
	}
}

// sigmoid computes 1/(1+exp(-x)) without overflowing for large |x|: the
// exponential is always taken of a non-positive argument.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

func relu(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}
