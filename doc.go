// Package compressing is a streaming compression library built around a
// 16-bit LZW codec.
//
// The codecs themselves live in plumbing/format; this package wires them to
// files, contexts and statistics, and offers verification of every output by
// running the inverse transform on it.
package compressing
