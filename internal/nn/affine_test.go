package nn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmplx-xyttmt/deep-learning-v2-pytorch/internal/matrix"
)

func fixedAffine(t *testing.T, weight []float64, bias []float64, in, out int) *Affine {
	t.Helper()
	w, err := matrix.FromSlice(weight, in, out)
	require.NoError(t, err)
	b, err := matrix.FromSlice(bias, 1, out)
	require.NoError(t, err)
	layer, err := NewAffine(in, out, Fixed(w, b))
	require.NoError(t, err)
	return layer
}

func TestAffineForward(t *testing.T) {
	// W = [[1 2] [3 4] [5 6]], b = [10 20]
	layer := fixedAffine(t, []float64{1, 2, 3, 4, 5, 6}, []float64{10, 20}, 3, 2)

	in, err := matrix.FromSlice([]float64{1, 1, 1, 0, 2, 0}, 2, 3)
	require.NoError(t, err)

	out, err := layer.Forward(in)
	require.NoError(t, err)
	require.Equal(t, 2, out.Rows())
	require.Equal(t, 2, out.Cols())

	// Row 0: [1+3+5, 2+4+6] + [10, 20] = [19, 32]
	// Row 1: [6, 8] + [10, 20] = [16, 28]
	assert.Equal(t, 19.0, out.At(0, 0))
	assert.Equal(t, 32.0, out.At(0, 1))
	assert.Equal(t, 16.0, out.At(1, 0))
	assert.Equal(t, 28.0, out.At(1, 1))
}

func TestAffineForwardShapeMismatch(t *testing.T) {
	layer, err := NewAffine(4, 2, Zero())
	require.NoError(t, err)

	in := matrix.Zeros(3, 5)
	_, err = layer.Forward(in)
	require.Error(t, err)

	var shapeErr *ShapeMismatchError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, 4, shapeErr.Want)
	assert.Equal(t, 5, shapeErr.Got)
}

func TestAffineForwardDoesNotMutateInput(t *testing.T) {
	layer, err := NewAffine(3, 2, Glorot(7))
	require.NoError(t, err)

	in, err := matrix.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	snapshot := in.Clone()

	_, err = layer.Forward(in)
	require.NoError(t, err)
	assert.True(t, snapshot.Equal(in))
}

func TestAffineForwardDeterministic(t *testing.T) {
	layer, err := NewAffine(8, 4, Normal(3, 0.1))
	require.NoError(t, err)

	in := matrix.Zeros(5, 8)
	for i, v := range []float64{0.3, -1.2, 4, 0, 2.5} {
		in.Set(i, i, v)
	}

	a, err := layer.Forward(in)
	require.NoError(t, err)
	b, err := layer.Forward(in)
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "identical parameters and input must give bit-identical output")
}

func TestNewAffineInvalidWidths(t *testing.T) {
	var cfgErr *ConfigurationError

	_, err := NewAffine(0, 2, nil)
	require.Error(t, err)
	assert.True(t, errors.As(err, &cfgErr))

	_, err = NewAffine(2, -1, nil)
	require.Error(t, err)
	assert.True(t, errors.As(err, &cfgErr))
}

func TestAffineAccessors(t *testing.T) {
	layer, err := NewAffine(3, 2, Zero())
	require.NoError(t, err)

	assert.Equal(t, 3, layer.InFeatures())
	assert.Equal(t, 2, layer.OutFeatures())

	wr, wc := layer.Weight().Dims()
	assert.Equal(t, 3, wr)
	assert.Equal(t, 2, wc)
	br, bc := layer.Bias().Dims()
	assert.Equal(t, 1, br)
	assert.Equal(t, 2, bc)
}
