package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lilliput-fmt/lilliput/wire"
)

// classify mirrors the priority-ordered header dispatch codec.kindOf uses,
// so the mask/tag table can be checked in isolation from the decoder.
func classify(h byte) string {
	switch {
	case h&wire.IntegerMask == wire.IntegerTag:
		return "integer"
	case h&wire.StringMask == wire.StringTag:
		return "string"
	case h&wire.SequenceMask == wire.SequenceTag:
		return "sequence"
	case h&wire.MapMask == wire.MapTag:
		return "map"
	case h&wire.FloatMask == wire.FloatTag:
		return "float"
	case h&wire.BytesMask == wire.BytesTag:
		return "bytes"
	case h&wire.BoolMask == wire.BoolTag:
		return "bool"
	case h == wire.UnitByte:
		return "unit"
	case h == wire.NullByte:
		return "null"
	default:
		return "invalid"
	}
}

// TestHeaderDispatchEveryByte classifies all 256 possible header bytes and
// confirms every one resolves to exactly one type, with no byte falling
// through to "invalid" - the priority-ordered mask table must be exhaustive.
func TestHeaderDispatchEveryByte(t *testing.T) {
	counts := map[string]int{}
	for h := 0; h < 256; h++ {
		counts[classify(byte(h))]++
	}

	require.Equal(t, 0, counts["invalid"])
	require.Equal(t, 128, counts["integer"]) // top bit alone claims half the space
	require.Equal(t, 1, counts["unit"])
	require.Equal(t, 1, counts["null"])
}

func TestIntegerCompactHeaderShape(t *testing.T) {
	// 11 S VVVVV, S=1 (signed), VVVVV=1 -> 0xE1
	h := byte(wire.IntegerTag) | wire.IntegerCompactBit | wire.IntegerSignedBit | 0x01
	require.Equal(t, byte(0xE1), h)
	require.Equal(t, "integer", classify(h))
	require.NotEqual(t, byte(0), h&wire.IntegerCompactBit)
}

func TestStringCompactHeaderShape(t *testing.T) {
	// compact: 010 LLLLL, length=2 ("hi") -> 0x42
	h := byte(wire.StringTag) | 0x02
	require.Equal(t, byte(0x42), h)
	require.Equal(t, "string", classify(h))
	require.Equal(t, byte(0), h&wire.StringExtendedBit)
}

func TestMapCompactHeaderShape(t *testing.T) {
	// compact: 0001 1 YYY, count=1 -> 0x19
	h := byte(wire.MapTag) | wire.MapCompactBit | 0x01
	require.Equal(t, byte(0x19), h)
	require.Equal(t, "map", classify(h))
}

func TestSequenceCompactHeaderShape(t *testing.T) {
	h := byte(wire.SequenceTag) | wire.SequenceCompactBit | 0x03
	require.Equal(t, "sequence", classify(h))
}

func TestBytesHasNoCompactVariant(t *testing.T) {
	// every Bytes header only ever carries a 2-bit width field
	for w := byte(0); w <= wire.BytesWidthMask; w++ {
		h := byte(wire.BytesTag) | w
		require.Equal(t, "bytes", classify(h))
	}
}

func TestFloatWidthMaskCoversAllEightWidths(t *testing.T) {
	for w := byte(0); w < 8; w++ {
		h := byte(wire.FloatTag) | w
		require.Equal(t, "float", classify(h))
	}
}

func TestBoolValueMask(t *testing.T) {
	require.Equal(t, "bool", classify(byte(wire.BoolTag)))
	require.Equal(t, "bool", classify(byte(wire.BoolTag)|wire.BoolValueMask))
}
