package lzw_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/go-git/go-compressing/utils/binary"
)

// coded returns the code stream made of codes.
func coded(codes ...uint16) []byte {
	buf := bytes.NewBuffer(nil)
	for _, c := range codes {
		binary.WriteUint16(buf, c)
	}

	return buf.Bytes()
}

// latin1 returns the ISO-8859-1 bytes of s, one byte per character.
func latin1(t testing.TB, s string) []byte {
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

// random returns n bytes from a fixed seed, so every run sees the same input.
func random(n int) []byte {
	b := make([]byte, n)
	rand.New(rand.NewSource(42)).Read(b)
	return b
}

type vector struct {
	name    string
	decoded []byte
	encoded []byte
}

func vectors(t testing.TB) []vector {
	return []vector{
		{
			name:    "empty",
			decoded: nil,
			encoded: nil,
		},
		{
			name:    "basic seq 1",
			decoded: []byte("ABBABBBABBA"),
			encoded: coded(65, 66, 66, 256, 257, 259, 65),
		},
		{
			name:    "basic seq 2",
			decoded: []byte("ABABA"),
			encoded: coded(65, 66, 256, 65),
		},
		{
			name:    "self referential",
			decoded: []byte("ABABABA"),
			encoded: coded(65, 66, 256, 258),
		},
		{
			name:    "self referential first",
			decoded: []byte("AAA"),
			encoded: coded(65, 256),
		},
		{
			name:    "latin1",
			decoded: latin1(t, "olá, mundo! como vai?"),
			encoded: coded(111, 108, 225, 44, 32, 109, 117, 110, 100, 111,
				33, 32, 99, 111, 109, 111, 32, 118, 97, 105, 63),
		},
	}
}
