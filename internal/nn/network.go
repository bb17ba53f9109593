package nn

import (
	"fmt"

	"github.com/cmplx-xyttmt/deep-learning-v2-pytorch/internal/matrix"
)

// Stage describes one (affine, activation) pair of a feed-forward network.
type Stage struct {
	// Width is the stage's output width. The stage's input width is the
	// previous stage's Width (or Config.InputWidth for the first stage),
	// so widths always chain consistently by construction.
	Width int

	// Activation is applied elementwise after the affine map. The output
	// stage conventionally uses Identity, since softmax normalization is a
	// separate component.
	Activation ActivationKind

	// Init overrides Config.Init for this stage when non-nil.
	Init Initializer
}

// Config specifies a feed-forward network.
type Config struct {
	// InputWidth is the feature width F the network accepts.
	InputWidth int

	// Stages are applied in order; the last stage's Width is the number of
	// classes C. Must be non-empty.
	Stages []Stage

	// Init fills the parameters of every stage that does not carry its own
	// initializer. Nil defaults to Glorot(1).
	Init Initializer
}

type stage struct {
	affine     *Affine
	activation Activation
}

// FeedForward is an ordered composition of affine stages with pointwise
// activations. It validates width chaining once at construction; Forward is
// a pure, deterministic function of (parameters, input).
type FeedForward struct {
	inputWidth  int
	outputWidth int
	stages      []stage
	layerIndex  map[string]int // "fc1".."fcN" → stage index
}

// NewFeedForward constructs a network from cfg. Returns a
// ConfigurationError when the stage list is empty or any width is not
// positive.
func NewFeedForward(cfg Config) (*FeedForward, error) {
	if len(cfg.Stages) == 0 {
		return nil, &ConfigurationError{Reason: "stage list is empty"}
	}
	if cfg.InputWidth < 1 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("input width must be positive, got %d", cfg.InputWidth)}
	}

	stages := make([]stage, 0, len(cfg.Stages))
	layerIndex := make(map[string]int, len(cfg.Stages))
	in := cfg.InputWidth

	for i, st := range cfg.Stages {
		if st.Width < 1 {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("stage %d width must be positive, got %d", i, st.Width)}
		}
		if !st.Activation.valid() {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("stage %d has unknown activation kind %d", i, int(st.Activation))}
		}

		init := st.Init
		if init == nil {
			init = cfg.Init
		}
		affine, err := NewAffine(in, st.Width, init)
		if err != nil {
			return nil, err
		}

		stages = append(stages, stage{affine: affine, activation: NewActivation(st.Activation)})
		layerIndex[fmt.Sprintf("fc%d", i+1)] = i
		in = st.Width
	}

	return &FeedForward{
		inputWidth:  cfg.InputWidth,
		outputWidth: in,
		stages:      stages,
		layerIndex:  layerIndex,
	}, nil
}

// Forward runs the batch through every stage in order and returns the raw
// (batch, C) score matrix. The input is never mutated. Returns a
// ShapeMismatchError when the batch's feature width disagrees with the
// network's declared input width.
func (n *FeedForward) Forward(batch *matrix.Matrix) (*matrix.Matrix, error) {
	if batch.Cols() != n.inputWidth {
		return nil, &ShapeMismatchError{Op: "FeedForward.Forward", Want: n.inputWidth, Got: batch.Cols()}
	}

	x := batch
	for _, s := range n.stages {
		y, err := s.affine.Forward(x)
		if err != nil {
			// Width chaining was validated at construction; an error here
			// is a bug, not a caller mistake.
			return nil, err
		}
		x = s.activation.Apply(y)
	}
	return x, nil
}

// InputWidth returns the feature width F the network accepts.
func (n *FeedForward) InputWidth() int {
	return n.inputWidth
}

// OutputWidth returns the number of classes C the network scores.
func (n *FeedForward) OutputWidth() int {
	return n.outputWidth
}

// NumStages returns the number of (affine, activation) stages.
func (n *FeedForward) NumStages() int {
	return len(n.stages)
}

// StageAt returns stage i's affine layer and activation. Panics if i is out
// of bounds.
func (n *FeedForward) StageAt(i int) (*Affine, Activation) {
	if i < 0 || i >= len(n.stages) {
		panic("nn: FeedForward.StageAt: index out of bounds")
	}
	return n.stages[i].affine, n.stages[i].activation
}

// Layer returns the affine layer with the given name. Layers are named
// "fc1" through "fcN" in stage order.
func (n *FeedForward) Layer(name string) (*Affine, bool) {
	i, ok := n.layerIndex[name]
	if !ok {
		return nil, false
	}
	return n.stages[i].affine, true
}
