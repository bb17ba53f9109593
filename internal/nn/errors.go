package nn

import "fmt"

// ConfigurationError reports an inconsistent construction request: an empty
// stage list, a non-positive width, or initializer values whose shape does
// not match the layer. It is returned at construction time only; a network
// that constructed successfully never produces it.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "nn: invalid configuration: " + e.Reason
}

// ShapeMismatchError reports a forward call whose input width disagrees
// with the layer or network's declared input width.
type ShapeMismatchError struct {
	Op   string // Operation that rejected the input, e.g. "FeedForward.Forward".
	Want int    // Declared input width.
	Got  int    // Width of the supplied batch.
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("nn: %s: input has %d features, network expects %d", e.Op, e.Got, e.Want)
}

// DataValidityError reports a non-finite value (NaN or ±Inf) found where
// the contract requires finite data. Row and Col locate the first
// offending element in row-major order.
type DataValidityError struct {
	Op    string
	Row   int
	Col   int
	Value float64
}

func (e *DataValidityError) Error() string {
	return fmt.Sprintf("nn: %s: non-finite value %v at (%d, %d)", e.Op, e.Value, e.Row, e.Col)
}
