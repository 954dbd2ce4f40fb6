package compressing

import (
	"context"
	"errors"
	"io"

	"github.com/go-git/go-billy/v5"

	"github.com/go-git/go-compressing/plumbing/format/huffman"
	"github.com/go-git/go-compressing/utils/ioutil"
)

// Analysis describes the byte distribution of an input and the size a plain
// huffman code would reach on it.
type Analysis struct {
	Frequencies *huffman.Frequencies
	// Table is nil for an empty input.
	Table *huffman.Table
	// Size is the size of the input in bytes.
	Size uint64
	// Symbols is the number of distinct bytes in the input.
	Symbols int
	// EncodedBits is the size of the input coded with Table.
	EncodedBits uint64
}

// EncodedSize returns EncodedBits rounded up to whole bytes.
func (a *Analysis) EncodedSize() uint64 {
	return (a.EncodedBits + 7) / 8
}

// SpaceSaved is Stats.SpaceSaved for a huffman coded output.
func (a *Analysis) SpaceSaved() float64 {
	s := &Stats{Read: int64(a.Size), Written: int64(a.EncodedSize())}
	return s.SpaceSaved()
}

// Analyze reads r until io.EOF and returns its Analysis.
func Analyze(ctx context.Context, r io.Reader) (*Analysis, error) {
	f, err := huffman.CountFrequencies(ioutil.NewContextReader(ctx, r))
	if err != nil {
		return nil, err
	}

	a := &Analysis{Frequencies: f, Size: f.Total(), Symbols: f.Symbols()}

	t, err := huffman.BuildTree(f)
	if errors.Is(err, huffman.ErrNoSymbols) {
		return a, nil
	}

	if err != nil {
		return nil, err
	}

	if a.Table, err = t.Codes(); err != nil {
		return nil, err
	}

	a.EncodedBits = a.Table.EncodedBits(f)
	return a, nil
}

// AnalyzeFile returns the Analysis of the file at path on fs.
func AnalyzeFile(ctx context.Context, fs billy.Filesystem, path string) (a *Analysis, err error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}

	defer ioutil.CheckClose(f, &err)

	return Analyze(ctx, f)
}
