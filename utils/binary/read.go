// Package binary implements sintax-sugar functions on top of the standard
// library binary package
package binary

import (
	"encoding/binary"
	"io"
)

// ReadUint8 reads a single byte from r. If r implements io.ByteReader the byte
// is read through it, avoiding a temporary buffer.
func ReadUint8(r io.Reader) (uint8, error) {
	if br, ok := r.(io.ByteReader); ok {
		return br.ReadByte()
	}

	var v [1]byte
	if _, err := io.ReadFull(r, v[:]); err != nil {
		return 0, err
	}

	return v[0], nil
}

// ReadUint16 reads 2 bytes and returns them as a BigEndian uint16. The error
// is io.EOF only if no bytes were read. If an EOF happens after reading the
// first byte, ReadUint16 returns io.ErrUnexpectedEOF.
func ReadUint16(r io.Reader) (uint16, error) {
	var v [2]byte
	if _, err := io.ReadFull(r, v[:]); err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(v[:]), nil
}
