// Package lzw implements a streaming Lempel-Ziv-Welch codec.
//
// The compressed form is a flat sequence of 16-bit big-endian codes, back to
// back, with no header, framing or terminator: the code stream ends where the
// underlying stream ends. Codes 0-255 stand for the single byte with the same
// value. Every other code is assigned, in order starting at 256, to the
// sequences the encoder adds to its dictionary while reading its input; the
// decoder rebuilds the same dictionary one code behind the encoder.
//
// Dictionaries live for a single stream and never reset or evict entries.
// Once all 65536 codes are assigned, encoding fails with ErrDictionaryFull.
package lzw

import (
	"errors"
	"fmt"
)

// Code is a dictionary code, as written to the code stream.
type Code uint16

const (
	// CodeSize is the size in bytes of a code in the code stream.
	CodeSize = 2
	// LiteralCodes is the number of single byte entries every dictionary
	// starts with.
	LiteralCodes = 256
	// FirstCode is the code assigned to the first sequence added to a
	// dictionary.
	FirstCode Code = LiteralCodes
	// MaxCodes is the capacity of a dictionary, literal entries included.
	MaxCodes = 1 << (8 * CodeSize)
)

var (
	// ErrDictionaryFull is returned when a new sequence has to be added to a
	// dictionary that already holds MaxCodes entries.
	ErrDictionaryFull = errors.New("lzw: dictionary full")
	// ErrInvalidCode is returned by the decoder when the code stream refers
	// to a code that is neither in the dictionary nor the next one to be
	// assigned. The concrete error is an *InvalidCodeError.
	ErrInvalidCode = errors.New("lzw: invalid code")
	// ErrClosed is returned when writing to a closed Writer or reading from a
	// closed Reader.
	ErrClosed = errors.New("lzw: closed")
)

// InvalidCodeError describes a code stream that cannot have been produced by
// the encoder.
type InvalidCodeError struct {
	// Code is the offending code.
	Code Code
	// Next is the code the decoder would have assigned next.
	Next int
	// Index is the position of Code in the code stream, starting at 0.
	Index int64
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("lzw: invalid code %d at index %d, next code is %d",
		e.Code, e.Index, e.Next)
}

// Is makes errors.Is(err, ErrInvalidCode) match any *InvalidCodeError.
func (e *InvalidCodeError) Is(target error) bool {
	return target == ErrInvalidCode
}
