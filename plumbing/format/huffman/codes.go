package huffman

import (
	"strings"
)

// Code is a prefix code of up to 64 bits. The first bit of the code is the
// most significant of the Len low bits of Bits.
type Code struct {
	Bits uint64
	Len  int
}

// String returns the code as a string of '0' and '1'.
func (c Code) String() string {
	var sb strings.Builder
	for i := c.Len - 1; i >= 0; i-- {
		if c.Bits>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Table maps every symbol of a tree to its code. Symbols not in the tree have
// a zero-length code.
type Table [256]Code

// Codes walks the tree and returns the code of every leaf: a left branch is
// a 0 bit, a right branch a 1 bit. A tree made of a single leaf gives its
// symbol the one bit code 0.
func (t *Tree) Codes() (*Table, error) {
	table := &Table{}

	root := t.Nodes[t.Root]
	if root.Kind == Leaf {
		table[root.Symbol] = Code{Len: 1}
		return table, nil
	}

	type frame struct {
		node int
		code Code
	}

	stack := []frame{{node: t.Root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.Nodes[f.node]
		if n.Kind == Leaf {
			table[n.Symbol] = f.code
			continue
		}

		if f.code.Len == 64 {
			return nil, ErrCodeTooLong
		}

		next := f.code.Len + 1
		stack = append(stack,
			frame{node: n.Right, code: Code{Bits: f.code.Bits<<1 | 1, Len: next}},
			frame{node: n.Left, code: Code{Bits: f.code.Bits << 1, Len: next}},
		)
	}

	return table, nil
}

// EncodedBits returns the number of bits needed to write the input counted
// in f with this table.
func (t *Table) EncodedBits(f *Frequencies) uint64 {
	var bits uint64
	for s, c := range f {
		bits += c * uint64(t[s].Len)
	}

	return bits
}
