package compressing

import (
	"dario.cat/mergo"
)

// CompressOptions describes how a compression should be performed.
type CompressOptions struct {
	// Algorithm to compress with, by default DefaultAlgorithm.
	Algorithm Algorithm
}

// Validate validates the fields and sets the default values.
func (o *CompressOptions) Validate() error {
	if err := mergo.Merge(o, &CompressOptions{Algorithm: DefaultAlgorithm}); err != nil {
		return err
	}

	return o.Algorithm.Validate()
}

// DecompressOptions describes how a decompression should be performed.
type DecompressOptions struct {
	// Algorithm the input was compressed with, by default DefaultAlgorithm.
	Algorithm Algorithm
}

// Validate validates the fields and sets the default values.
func (o *DecompressOptions) Validate() error {
	if err := mergo.Merge(o, &DecompressOptions{Algorithm: DefaultAlgorithm}); err != nil {
		return err
	}

	return o.Algorithm.Validate()
}

// FileOptions describes how a file should be compressed or decompressed.
type FileOptions struct {
	// Algorithm to use, by default DefaultAlgorithm.
	Algorithm Algorithm
	// Truncate the output file if it already exists. When false, an existing
	// output is overwritten from its start and keeps any trailing bytes
	// beyond the new content.
	Truncate bool
	// Verify runs the inverse transform on the output and checks it gives
	// back the input.
	Verify bool
}

// Validate validates the fields and sets the default values.
func (o *FileOptions) Validate() error {
	if err := mergo.Merge(o, &FileOptions{Algorithm: DefaultAlgorithm}); err != nil {
		return err
	}

	return o.Algorithm.Validate()
}
