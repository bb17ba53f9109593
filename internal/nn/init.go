package nn

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cmplx-xyttmt/deep-learning-v2-pytorch/internal/matrix"
)

// Initializer is a policy for filling an affine layer's parameters at
// construction time. All randomness in the core is confined here: a given
// policy with a given seed always produces the same parameters, and the
// forward pass itself draws no randomness.
type Initializer interface {
	// initialize fills weight (F_in × F_out) and bias (1 × F_out) in place.
	initialize(weight, bias *matrix.Matrix) error
}

// Zero returns the policy that fills weights and biases with zeros.
// Useful for deterministic tests; a zero-weight network scores every class
// identically.
func Zero() Initializer {
	return zeroInit{}
}

// Normal returns the policy that draws weights from N(0, stddev²) using the
// given seed and zero-fills biases.
func Normal(seed uint64, stddev float64) Initializer {
	return normalInit{seed: seed, stddev: stddev}
}

// Glorot returns the Xavier/Glorot uniform policy: weights drawn from
// U(-b, b) with b = sqrt(6 / (fanIn + fanOut)), biases zero-filled. This
// keeps activation variance roughly constant across stages.
func Glorot(seed uint64) Initializer {
	return glorotInit{seed: seed}
}

// Fixed returns the policy that copies caller-supplied parameter values.
// The shapes must match the layer being constructed exactly; a mismatch is
// a ConfigurationError. Intended for reproducible tests and for loading
// externally trained parameters.
func Fixed(weight, bias *matrix.Matrix) Initializer {
	return fixedInit{weight: weight, bias: bias}
}

type zeroInit struct{}

func (zeroInit) initialize(_, _ *matrix.Matrix) error {
	// Fresh matrices are already zero-filled.
	return nil
}

type normalInit struct {
	seed   uint64
	stddev float64
}

func (n normalInit) initialize(weight, _ *matrix.Matrix) error {
	if n.stddev < 0 || math.IsNaN(n.stddev) || math.IsInf(n.stddev, 0) {
		return &ConfigurationError{Reason: fmt.Sprintf("Normal initializer: invalid stddev %v", n.stddev)}
	}
	dist := distuv.Normal{Mu: 0, Sigma: n.stddev, Src: rand.NewSource(n.seed)}
	data := weight.Data()
	for i := range data {
		data[i] = dist.Rand()
	}
	return nil
}

type glorotInit struct {
	seed uint64
}

func (g glorotInit) initialize(weight, _ *matrix.Matrix) error {
	fanIn, fanOut := weight.Dims()
	bound := math.Sqrt(6 / float64(fanIn+fanOut))
	dist := distuv.Uniform{Min: -bound, Max: bound, Src: rand.NewSource(g.seed)}
	data := weight.Data()
	for i := range data {
		data[i] = dist.Rand()
	}
	return nil
}

type fixedInit struct {
	weight *matrix.Matrix
	bias   *matrix.Matrix
}

func (f fixedInit) initialize(weight, bias *matrix.Matrix) error {
	if f.weight == nil || f.bias == nil {
		return &ConfigurationError{Reason: "Fixed initializer: weight and bias must both be supplied"}
	}
	wr, wc := weight.Dims()
	fr, fc := f.weight.Dims()
	if fr != wr || fc != wc {
		return &ConfigurationError{Reason: fmt.Sprintf(
			"Fixed initializer: weight is %d×%d, layer needs %d×%d", fr, fc, wr, wc)}
	}
	br, bc := bias.Dims()
	gr, gc := f.bias.Dims()
	if gr != br || gc != bc {
		return &ConfigurationError{Reason: fmt.Sprintf(
			"Fixed initializer: bias is %d×%d, layer needs %d×%d", gr, gc, br, bc)}
	}
	copy(weight.Data(), f.weight.Data())
	copy(bias.Data(), f.bias.Data())
	return nil
}
