package nn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmplx-xyttmt/deep-learning-v2-pytorch/internal/matrix"
)

func TestNewFeedForwardValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty stage list", Config{InputWidth: 4}},
		{"zero input width", Config{InputWidth: 0, Stages: []Stage{{Width: 2, Activation: Identity}}}},
		{"zero stage width", Config{InputWidth: 4, Stages: []Stage{{Width: 0, Activation: ReLU}}}},
		{"negative stage width", Config{
			InputWidth: 4,
			Stages:     []Stage{{Width: 3, Activation: ReLU}, {Width: -1, Activation: Identity}},
		}},
		{"unknown activation", Config{
			InputWidth: 4,
			Stages:     []Stage{{Width: 3, Activation: ActivationKind(42)}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFeedForward(tt.cfg)
			require.Error(t, err)
			var cfgErr *ConfigurationError
			assert.True(t, errors.As(err, &cfgErr), "want ConfigurationError, got %T", err)
		})
	}
}

func TestFeedForwardWidthChaining(t *testing.T) {
	net, err := NewFeedForward(Config{
		InputWidth: 6,
		Stages: []Stage{
			{Width: 5, Activation: ReLU},
			{Width: 4, Activation: Sigmoid},
			{Width: 3, Activation: Identity},
		},
		Init: Glorot(11),
	})
	require.NoError(t, err)

	assert.Equal(t, 6, net.InputWidth())
	assert.Equal(t, 3, net.OutputWidth())
	assert.Equal(t, 3, net.NumStages())

	// Each stage's input width is the previous stage's output width.
	widths := []struct{ in, out int }{{6, 5}, {5, 4}, {4, 3}}
	for i, w := range widths {
		affine, _ := net.StageAt(i)
		assert.Equal(t, w.in, affine.InFeatures())
		assert.Equal(t, w.out, affine.OutFeatures())
	}
}

func TestFeedForwardShapeInvariant(t *testing.T) {
	net, err := NewFeedForward(Config{
		InputWidth: 8,
		Stages: []Stage{
			{Width: 5, Activation: ReLU},
			{Width: 3, Activation: Identity},
		},
	})
	require.NoError(t, err)

	for _, batchSize := range []int{1, 2, 16} {
		out, err := net.Forward(matrix.Zeros(batchSize, 8))
		require.NoError(t, err)
		assert.Equal(t, batchSize, out.Rows())
		assert.Equal(t, 3, out.Cols())
	}
}

func TestFeedForwardRejectsWrongWidth(t *testing.T) {
	net, err := NewFeedForward(Config{
		InputWidth: 8,
		Stages:     []Stage{{Width: 3, Activation: Identity}},
	})
	require.NoError(t, err)

	_, err = net.Forward(matrix.Zeros(2, 9))
	require.Error(t, err)

	var shapeErr *ShapeMismatchError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, 8, shapeErr.Want)
	assert.Equal(t, 9, shapeErr.Got)
}

func TestFeedForwardDeterminism(t *testing.T) {
	net, err := NewFeedForward(Config{
		InputWidth: 12,
		Stages: []Stage{
			{Width: 7, Activation: Sigmoid},
			{Width: 4, Activation: Identity},
		},
		Init: Normal(21, 0.05),
	})
	require.NoError(t, err)

	in := matrix.Zeros(6, 12)
	for i := 0; i < 6; i++ {
		for j := 0; j < 12; j++ {
			in.Set(i, j, float64(i*12+j)/10-3)
		}
	}

	a, err := net.Forward(in)
	require.NoError(t, err)
	b, err := net.Forward(in)
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "forward must be bit-for-bit reproducible")
}

func TestFeedForwardDoesNotMutateBatch(t *testing.T) {
	net, err := NewFeedForward(Config{
		InputWidth: 4,
		Stages:     []Stage{{Width: 2, Activation: ReLU}},
		Init:       Glorot(3),
	})
	require.NoError(t, err)

	in, err := matrix.FromSlice([]float64{1, -2, 3, -4, 5, -6, 7, -8}, 2, 4)
	require.NoError(t, err)
	snapshot := in.Clone()

	_, err = net.Forward(in)
	require.NoError(t, err)
	assert.True(t, snapshot.Equal(in))
}

func TestLayerLookup(t *testing.T) {
	net, err := NewFeedForward(Config{
		InputWidth: 6,
		Stages: []Stage{
			{Width: 5, Activation: ReLU},
			{Width: 2, Activation: Identity},
		},
	})
	require.NoError(t, err)

	fc2, ok := net.Layer("fc2")
	require.True(t, ok)
	assert.Equal(t, 5, fc2.InFeatures())
	assert.Equal(t, 2, fc2.OutFeatures())

	_, ok = net.Layer("fc3")
	assert.False(t, ok)

	assert.Panics(t, func() { net.StageAt(2) })
}

func TestStageInitOverride(t *testing.T) {
	w, err := matrix.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	b, err := matrix.FromSlice([]float64{5, 6}, 1, 2)
	require.NoError(t, err)

	net, err := NewFeedForward(Config{
		InputWidth: 2,
		Stages: []Stage{
			{Width: 2, Activation: Identity, Init: Fixed(w, b)},
			{Width: 3, Activation: Identity},
		},
		Init: Zero(),
	})
	require.NoError(t, err)

	fc1, ok := net.Layer("fc1")
	require.True(t, ok)
	assert.True(t, w.Equal(fc1.Weight()), "per-stage init must override the config default")

	fc2, ok := net.Layer("fc2")
	require.True(t, ok)
	for _, v := range fc2.Weight().Data() {
		assert.Equal(t, 0.0, v)
	}
}

// A zero-initialized 784→256→10 network scores every class at exactly zero
// regardless of input, and softmax then yields uniform 0.1 rows.
func TestZeroNetworkEndToEnd(t *testing.T) {
	net, err := NewFeedForward(Config{
		InputWidth: 784,
		Stages: []Stage{
			{Width: 256, Activation: Sigmoid},
			{Width: 10, Activation: Identity},
		},
		Init: Zero(),
	})
	require.NoError(t, err)

	in := matrix.Zeros(3, 784)
	for i := 0; i < 3; i++ {
		for j := 0; j < 784; j++ {
			in.Set(i, j, float64((i+j)%7)/6)
		}
	}

	scores, err := net.Forward(in)
	require.NoError(t, err)
	require.Equal(t, 3, scores.Rows())
	require.Equal(t, 10, scores.Cols())
	for _, v := range scores.Data() {
		require.Equal(t, 0.0, v)
	}

	probs, err := NewSoftmax().Normalize(scores)
	require.NoError(t, err)
	for _, v := range probs.Data() {
		assert.Equal(t, 0.1, v)
	}
}
