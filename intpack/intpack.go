// Package intpack implements the zig-zag mapping and the bit-packed,
// byte-padded integer encoding used by Lilliput's Integer wire type
// (spec §4.2.1).
//
// Zig-zag encoding maps a signed 64-bit value onto an unsigned one so that
// small-magnitude values (positive or negative) stay compact:
//
//	n -> (n << 1) XOR (n >> 63)   (two's-complement arithmetic shift)
//
// The inverse recovers n from the zig-zag code z:
//
//	n = (z >> 1) XOR -(z & 1)
//
// "Bit-packed, byte-padded" means: compute the minimum bit width needed to
// hold the (possibly zig-zagged) magnitude, round up to a whole number of
// bytes, and write the value right-aligned in those bytes, high-order byte
// first (network order, via netorder).
package intpack

import "github.com/lilliput-fmt/lilliput/netorder"

// ZigZagEncode maps a signed 64-bit value to its zig-zag unsigned form.
func ZigZagEncode(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

// ZigZagDecode recovers the signed value from its zig-zag unsigned form.
func ZigZagDecode(z uint64) int64 {
	return int64(z>>1) ^ -int64(z&1)
}

// MinWidth returns the minimum number of bytes (1-8) needed to hold the
// unsigned magnitude v right-aligned with no leading zero byte.
func MinWidth(v uint64) int {
	return netorder.MinByteWidth(v)
}

// PutUnsigned packs v into dst[:width] big-endian, right-aligned.
func PutUnsigned(dst []byte, v uint64, width int) {
	netorder.PutUint(dst, v, width)
}

// GetUnsigned unpacks a big-endian unsigned value from src[:width].
func GetUnsigned(src []byte, width int) uint64 {
	return netorder.Uint(src, width)
}
