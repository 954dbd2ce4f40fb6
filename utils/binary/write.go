package binary

import (
	"encoding/binary"
	"io"
)

// WriteUint16 writes the binary representation of a uint16 into w, in BigEndian
// order
func WriteUint16(w io.Writer, value uint16) error {
	var v [2]byte
	binary.BigEndian.PutUint16(v[:], value)
	_, err := w.Write(v[:])
	return err
}
