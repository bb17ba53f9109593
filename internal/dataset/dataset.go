package dataset

import (
	"github.com/pkg/errors"

	"github.com/cmplx-xyttmt/deep-learning-v2-pytorch/internal/matrix"
)

// Set is a labelled example collection: one feature row per example and
// one class index per row.
type Set struct {
	Features *matrix.Matrix // (N, F)
	Labels   []int          // length N
}

// Load reads an IDX image/label file pair and cross-checks the counts.
func Load(imagesPath, labelsPath string) (*Set, error) {
	features, err := ReadImages(imagesPath)
	if err != nil {
		return nil, err
	}
	labels, err := ReadLabels(labelsPath)
	if err != nil {
		return nil, err
	}
	if features.Rows() != len(labels) {
		return nil, errors.Errorf("dataset: %d images but %d labels", features.Rows(), len(labels))
	}
	return &Set{Features: features, Labels: labels}, nil
}

// Len returns the number of examples.
func (s *Set) Len() int {
	return len(s.Labels)
}

// Batch is a contiguous slice of a Set with its own feature storage.
type Batch struct {
	Features *matrix.Matrix
	Labels   []int
}

// Batches partitions the set into batches of the given size in order. The
// final batch may be shorter; every example appears in exactly one batch.
func (s *Set) Batches(size int) ([]Batch, error) {
	if size < 1 {
		return nil, errors.Errorf("dataset: batch size must be positive, got %d", size)
	}

	n := s.Len()
	batches := make([]Batch, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		batches = append(batches, Batch{
			Features: s.Features.RowRange(start, end),
			Labels:   s.Labels[start:end],
		})
	}
	return batches, nil
}
