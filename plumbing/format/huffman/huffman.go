// Package huffman builds prefix code tables from byte frequencies.
//
// It is used to report how well a plain prefix code would do on an input,
// which gives a reference point for the size of an lzw code stream.
package huffman

import (
	"errors"
	"io"

	"github.com/go-git/go-compressing/utils/sync"
)

var (
	// ErrNoSymbols is returned when building a tree from an input with no
	// symbols at all.
	ErrNoSymbols = errors.New("huffman: no symbols")
	// ErrCodeTooLong is returned when a code does not fit in 64 bits.
	ErrCodeTooLong = errors.New("huffman: code too long")
)

// Frequencies holds the number of occurrences of every byte value.
type Frequencies [256]uint64

// CountFrequencies reads r until io.EOF and counts its bytes.
func CountFrequencies(r io.Reader) (*Frequencies, error) {
	br := sync.GetBufioReader(r)
	defer sync.PutBufioReader(br)

	f := &Frequencies{}
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return f, nil
		}

		if err != nil {
			return nil, err
		}

		f[b]++
	}
}

// Symbols returns the number of distinct byte values seen.
func (f *Frequencies) Symbols() int {
	var n int
	for _, c := range f {
		if c != 0 {
			n++
		}
	}

	return n
}

// Total returns the number of bytes seen.
func (f *Frequencies) Total() uint64 {
	var n uint64
	for _, c := range f {
		n += c
	}

	return n
}

// Kind tells a leaf from an internal node.
type Kind int8

const (
	Leaf Kind = iota
	Internal
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Node is a node of a Tree. Symbol is only meaningful for leaves, Left and
// Right only for internal nodes; both are indexes into Tree.Nodes.
type Node struct {
	Kind   Kind
	Freq   uint64
	Symbol byte
	Left   int
	Right  int
}

// Tree is a huffman tree. Nodes are stored in a single slice and reference
// each other by index; Root is the index of the root node.
type Tree struct {
	Nodes []Node
	Root  int
}

// BuildTree builds the huffman tree of f. Nodes with the lowest frequency are
// merged first; on equal frequencies, the subtree holding the smallest symbol
// goes first. The first of the two merged nodes becomes the left child.
func BuildTree(f *Frequencies) (*Tree, error) {
	t := &Tree{}
	h := newNodeHeap()
	for s, c := range f {
		if c == 0 {
			continue
		}

		t.Nodes = append(t.Nodes, Node{Kind: Leaf, Freq: c, Symbol: byte(s)})
		h.Push(heapItem{index: len(t.Nodes) - 1, freq: c, min: byte(s)})
	}

	if h.Size() == 0 {
		return nil, ErrNoSymbols
	}

	for h.Size() > 1 {
		left, _ := h.Pop()
		right, _ := h.Pop()

		t.Nodes = append(t.Nodes, Node{
			Kind:  Internal,
			Freq:  left.freq + right.freq,
			Left:  left.index,
			Right: right.index,
		})

		lowest := left.min
		if right.min < lowest {
			lowest = right.min
		}

		h.Push(heapItem{index: len(t.Nodes) - 1, freq: left.freq + right.freq, min: lowest})
	}

	root, _ := h.Pop()
	t.Root = root.index
	return t, nil
}
