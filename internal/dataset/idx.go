// Package dataset reads MNIST-style IDX files and slices them into
// fixed-width batches for the classifier core. It is the batch-producing
// collaborator: the nn package never touches files, it only sees the
// (batch, feature) matrices produced here.
package dataset

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/cmplx-xyttmt/deep-learning-v2-pytorch/internal/matrix"
)

// IDX magic numbers: 0x00000803 for unsigned-byte rank-3 image files,
// 0x00000801 for rank-1 label files.
const (
	imageMagic = 2051
	labelMagic = 2049
)

// ReadImages reads an IDX image file and returns an (N, rows*cols) matrix
// with pixel values scaled from [0, 255] to [0.0, 1.0]. Each image is
// flattened row-major into one feature vector.
func ReadImages(path string) (*matrix.Matrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open idx image file")
	}
	defer file.Close()

	var header struct {
		Magic uint32
		Count uint32
		Rows  uint32
		Cols  uint32
	}
	if err := binary.Read(file, binary.BigEndian, &header); err != nil {
		return nil, errors.Wrapf(err, "read idx image header from %s", path)
	}
	if header.Magic != imageMagic {
		return nil, errors.Errorf("%s: bad idx image magic %d, want %d", path, header.Magic, imageMagic)
	}
	if header.Count == 0 || header.Rows == 0 || header.Cols == 0 {
		return nil, errors.Errorf("%s: empty idx image file (%d images of %d×%d)",
			path, header.Count, header.Rows, header.Cols)
	}

	n := int(header.Count)
	width := int(header.Rows) * int(header.Cols)
	pixels := make([]byte, n*width)
	if _, err := io.ReadFull(file, pixels); err != nil {
		return nil, errors.Wrapf(err, "read %d images from %s", n, path)
	}

	data := make([]float64, len(pixels))
	for i, p := range pixels {
		data[i] = float64(p) / 255.0
	}
	return matrix.FromSlice(data, n, width)
}

// ReadLabels reads an IDX label file and returns one class index per
// example.
func ReadLabels(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open idx label file")
	}
	defer file.Close()

	var header struct {
		Magic uint32
		Count uint32
	}
	if err := binary.Read(file, binary.BigEndian, &header); err != nil {
		return nil, errors.Wrapf(err, "read idx label header from %s", path)
	}
	if header.Magic != labelMagic {
		return nil, errors.Errorf("%s: bad idx label magic %d, want %d", path, header.Magic, labelMagic)
	}

	raw := make([]byte, header.Count)
	if _, err := io.ReadFull(file, raw); err != nil {
		return nil, errors.Wrapf(err, "read %d labels from %s", header.Count, path)
	}

	labels := make([]int, len(raw))
	for i, b := range raw {
		labels[i] = int(b)
	}
	return labels, nil
}
