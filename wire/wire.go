// Package wire holds the Lilliput header-byte grammar: the bit layout for
// every type's header, the masks used to dispatch on a header byte, and
// the compact/extended variant thresholds. It carries no encode/decode
// logic — codec owns that — only the constants the grammar is built from.
//
// Header byte dispatch (MSB first, spec §6.2):
//
//	byte & 0x80 == 0x80  -> Integer
//	byte & 0xC0 == 0x40  -> String
//	byte & 0xE0 == 0x20  -> Sequence
//	byte & 0xF0 == 0x10  -> Map
//	byte & 0xF8 == 0x08  -> Float
//	byte & 0xFC == 0x04  -> Bytes
//	byte & 0xFE == 0x02  -> Bool
//	byte        == 0x01  -> Unit
//	byte        == 0x00  -> Null
package wire

// Type tags dispatch, in priority order (Integer checked first since it
// claims the high bit alone).
const (
	IntegerTag  = 0x80
	IntegerMask = 0x80

	StringTag  = 0x40
	StringMask = 0xC0

	SequenceTag  = 0x20
	SequenceMask = 0xE0

	MapTag  = 0x10
	MapMask = 0xF0

	FloatTag  = 0x08
	FloatMask = 0xF8

	BytesTag  = 0x04
	BytesMask = 0xFC

	BoolTag  = 0x02
	BoolMask = 0xFE

	UnitByte = 0x01
	NullByte = 0x00
)

// Integer header: 1 X Y ZZZZZ. X=1 compact, X=0 extended. Y=signedness.
//
// Compact:  11 S VVVVV  (bit6=1 compact, bit5=S, bits4-0=VVVVV)
// Extended: 10 S 00 WWW (bit6=0 extended, bit5=S, bits4-3 reserved=0, bits2-0=WWW)
const (
	IntegerCompactBit = 0x40 // bit6: X, compact flag
	IntegerSignedBit  = 0x20 // bit5: Y, signedness
	IntegerValueMask  = 0x1F // low 5 bits: compact value (VVVVV)

	IntegerCompactMax       = 31 // VVVVV range for unsigned compact
	IntegerCompactZigzagMax = 31

	// Extended: reserved bits at 0x10 and 0x08 must be zero in strict mode.
	IntegerExtReservedMask = 0x18
	IntegerExtWidthMask    = 0x07
)

// String header: the detailed layout in spec §4.2.2 inverts the top-level
// summary table's "X=1 compact" convention: compact is `010 LLLLL` (bit5=0)
// and extended is `01100 WWW` (bit5=1, with bits4-3 forced to the reserved
// zero pattern baked into that fixed prefix). Two worked examples
// (String("hi") -> 0x42, and the String("a") key inside the Map example)
// both decode under this polarity, not the inverted one the summary table
// states, so the detailed bit patterns win; see DESIGN.md.
//
// Compact:  010 LLLLL    (bit5=0, bits4-0=LLLLL, length 0-31)
// Extended: 01100 WWW    (bit5=1, bits4-3=00 reserved, bits2-0=WWW)
const (
	StringExtendedBit     = 0x20 // bit5: set means extended, clear means compact
	StringCompactMax      = 31
	StringCompactMask     = 0x1F
	StringExtReservedMask = 0x18
	StringExtWidthMask    = 0x07
)

// Sequence header: 001 X YYYY. X=1 compact (YYYY = count 0-15), X=0
// extended (WWW = width-1 in low 3 bits).
const (
	SequenceCompactBit   = 0x10
	SequenceCompactMax   = 15
	SequenceCompactMask  = 0x0F
	SequenceExtWidthMask = 0x07
)

// Map header: 0001 X YYY. X=1 compact (YYY = count 0-7), X=0 extended
// (WWW = width-1 in low 3 bits). This matches both the top-level summary
// table and §4.2.4's own bit patterns; the worked example in §8 scenario 7
// (0x11) does not decode under either and is treated as a transcription
// error in the spec text — the correct compact header for a 1-pair map is
// 0x19 (00011001), which is what this package and its tests use.
const (
	MapCompactBit   = 0x08
	MapCompactMax   = 7
	MapCompactMask  = 0x07
	MapExtWidthMask = 0x07
)

// Float header: 00001 WWW. WWW = byte-width minus 1.
const (
	FloatWidthMask = 0x07
)

// Bytes header: 000001 XX. XX = length-width-in-bytes minus 1 (1-4 bytes);
// the length value stored is an exponent e, payload length is 2^e.
const (
	BytesWidthMask = 0x03
)

// Bool header: 0000001 X.
const (
	BoolValueMask = 0x01
)

// MaxIntegerExtWidth, MaxLengthExtWidth4 and MaxLengthExtWidth8 are the
// maximum byte widths of the variable-width length and integer extension
// fields (Integer extended allows up to 8 bytes; String
// and Sequence/Map length fields use 3-bit width fields allowing up to 8;
// Bytes' length-exponent field uses a 2-bit width field allowing up to 4).
const (
	MaxIntegerExtWidth = 8
	MaxLengthExtWidth4 = 4 // Bytes length-exponent width field (2 bits)
	MaxLengthExtWidth8 = 8 // String, Sequence, Map length-width field (3 bits)
)
