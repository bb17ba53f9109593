// Copyright 2026 The deep-learning-v2-pytorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/cmplx-xyttmt/deep-learning-v2-pytorch/internal/matrix"
	"github.com/cmplx-xyttmt/deep-learning-v2-pytorch/internal/nn"
	"github.com/cmplx-xyttmt/deep-learning-v2-pytorch/internal/parallel"
)

// Type aliases for the public API.

// ActivationKind identifies a pointwise nonlinearity.
type ActivationKind = nn.ActivationKind

// Activation kinds.
const (
	Identity ActivationKind = nn.Identity
	Sigmoid  ActivationKind = nn.Sigmoid
	ReLU     ActivationKind = nn.ReLU
)

// Activation is a stateless pointwise transform.
type Activation = nn.Activation

// Affine is one learnable affine map y = x·W + b.
type Affine = nn.Affine

// Stage describes one (affine, activation) pair of a network.
type Stage = nn.Stage

// Config specifies a feed-forward network.
type Config = nn.Config

// FeedForward is an ordered composition of affine stages and activations.
type FeedForward = nn.FeedForward

// Softmax converts raw scores into per-row probability distributions.
type Softmax = nn.Softmax

// Initializer is a parameter-fill policy applied at construction time.
type Initializer = nn.Initializer

// ParallelConfig controls how the normalizer fans work out across rows.
type ParallelConfig = parallel.Config

// Error types. All construction and evaluation failures are one of these;
// match with errors.As.
type (
	// ConfigurationError reports an inconsistent construction request.
	ConfigurationError = nn.ConfigurationError
	// ShapeMismatchError reports a batch whose feature width disagrees
	// with the network's declared input width.
	ShapeMismatchError = nn.ShapeMismatchError
	// DataValidityError reports non-finite input to the normalizer.
	DataValidityError = nn.DataValidityError
)

// NewActivation returns the activation for kind.
func NewActivation(kind ActivationKind) Activation {
	return nn.NewActivation(kind)
}

// NewAffine creates an affine layer; a nil init defaults to Glorot(1).
func NewAffine(inFeatures, outFeatures int, init Initializer) (*Affine, error) {
	return nn.NewAffine(inFeatures, outFeatures, init)
}

// NewFeedForward constructs a network from cfg, validating width chaining.
//
// Example:
//
//	net, err := nn.NewFeedForward(nn.Config{
//	    InputWidth: 784,
//	    Stages: []nn.Stage{
//	        {Width: 128, Activation: nn.ReLU},
//	        {Width: 10, Activation: nn.Identity},
//	    },
//	    Init: nn.Glorot(42),
//	})
func NewFeedForward(cfg Config) (*FeedForward, error) {
	return nn.NewFeedForward(cfg)
}

// NewSoftmax creates a normalizer with the host's default parallelism.
func NewSoftmax() *Softmax {
	return nn.NewSoftmax()
}

// NewSoftmaxWithConfig creates a normalizer with explicit parallelism
// settings.
func NewSoftmaxWithConfig(cfg ParallelConfig) *Softmax {
	return nn.NewSoftmaxWithConfig(cfg)
}

// SequentialConfig returns the parallelism config that pins normalization
// to the calling goroutine.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}

// Zero returns the all-zeros initialization policy.
func Zero() Initializer {
	return nn.Zero()
}

// Normal returns the seeded N(0, stddev²) weight policy with zero biases.
func Normal(seed uint64, stddev float64) Initializer {
	return nn.Normal(seed, stddev)
}

// Glorot returns the seeded Xavier/Glorot uniform weight policy with zero
// biases.
func Glorot(seed uint64) Initializer {
	return nn.Glorot(seed)
}

// Fixed returns the policy that copies caller-supplied weight and bias
// values, for reproducible tests and externally trained parameters.
func Fixed(weight, bias *matrix.Matrix) Initializer {
	return nn.Fixed(weight, bias)
}
