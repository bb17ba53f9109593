// Copyright 2026 The deep-learning-v2-pytorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for the feed-forward classifier
// inference core.
//
// The package composes three pieces:
//   - Affine: one learnable map y = x·W + b
//   - Activation: a pointwise nonlinearity (identity, sigmoid, relu)
//   - FeedForward: an ordered chain of (affine, activation) stages
//
// plus Softmax, which turns the final raw scores into per-row probability
// distributions using max-subtracted exponentiation for numerical
// stability.
//
// Forward evaluation is a pure function: it mutates neither its input nor
// the network's parameters, and identical parameters and input produce
// bit-identical output. All randomness lives in the Initializer policies
// (Zero, Normal, Glorot, Fixed) applied once at construction.
//
// Example:
//
//	net, err := nn.NewFeedForward(nn.Config{
//	    InputWidth: 784,
//	    Stages: []nn.Stage{
//	        {Width: 128, Activation: nn.Sigmoid},
//	        {Width: 64, Activation: nn.Sigmoid},
//	        {Width: 10, Activation: nn.Identity},
//	    },
//	    Init: nn.Glorot(42),
//	})
//	if err != nil {
//	    return err
//	}
//	scores, err := net.Forward(batch) // (N, 784) → (N, 10)
//	if err != nil {
//	    return err
//	}
//	probs, err := nn.NewSoftmax().Normalize(scores)
package nn
