// Package netorder provides the network-byte-order bit-packing and
// byte-padding primitives shared by the integer, length, and float codecs.
//
// Lilliput's spec explicitly excludes endianness negotiation (§1 Non-goals):
// every multi-byte field is big-endian, full stop, so unlike a pluggable
// byte-order abstraction this package exposes no configurability at all —
// see DESIGN.md for the rationale.
package netorder

// MinByteWidth returns the minimum number of bytes needed to hold an
// unsigned value right-aligned with no leading zero byte, with a floor of
// 1 (the zero value still needs one byte).
func MinByteWidth(v uint64) int {
	w := 1
	for v >>= 8; v != 0; v >>= 8 {
		w++
	}

	return w
}

// PutUint packs v into the low 'width' bytes of dst (big-endian, left-zero
// padded within those bytes since v is right-aligned). dst must have
// length >= width. width must be in [1, 8].
func PutUint(dst []byte, v uint64, width int) {
	for i := width - 1; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}

// Uint unpacks a big-endian unsigned value from the first 'width' bytes of
// src. width must be in [1, 8] and src must have at least that many bytes.
func Uint(src []byte, width int) uint64 {
	var v uint64
	for i := 0; i < width; i++ {
		v = v<<8 | uint64(src[i])
	}

	return v
}

// AppendUint appends v packed into 'width' big-endian bytes to dst and
// returns the grown slice.
func AppendUint(dst []byte, v uint64, width int) []byte {
	start := len(dst)
	dst = append(dst, make([]byte, width)...)
	PutUint(dst[start:], v, width)

	return dst
}
