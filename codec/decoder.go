package codec

import (
	"math"
	"unicode/utf8"

	"github.com/lilliput-fmt/lilliput/floatpack"
	"github.com/lilliput-fmt/lilliput/internal/options"
	"github.com/lilliput-fmt/lilliput/intpack"
	"github.com/lilliput-fmt/lilliput/iosink"
	"github.com/lilliput-fmt/lilliput/lerrs"
	"github.com/lilliput-fmt/lilliput/netorder"
	"github.com/lilliput-fmt/lilliput/value"
	"github.com/lilliput-fmt/lilliput/wire"
)

// Decoder is a pull-style reader over a ByteSource: PeekType inspects the
// next value's kind without consuming it, DecodePrimitive consumes one
// complete scalar value, DecodeSequenceHeader/DecodeMapHeader consume one
// container header and its length field, and DecodeValue is the convenience form that recurses through an
// entire Sequence or Map (spec §4.5).
type Decoder struct {
	src    iosink.ByteSource
	cfg    DecoderConfig
	peeked *byte
	depth  int
}

// NewDecoder creates a Decoder reading from src, configured by opts.
func NewDecoder(src iosink.ByteSource, opts ...DecoderOption) (*Decoder, error) {
	cfg := NewDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Decoder{src: src, cfg: *cfg}, nil
}

func (d *Decoder) nextByte() (byte, error) {
	if d.peeked != nil {
		b := *d.peeked
		d.peeked = nil

		return b, nil
	}

	return d.src.ReadU8()
}

func kindOf(h byte) (value.Kind, error) {
	switch {
	case h&wire.IntegerMask == wire.IntegerTag:
		return value.KindInteger, nil
	case h&wire.StringMask == wire.StringTag:
		return value.KindString, nil
	case h&wire.SequenceMask == wire.SequenceTag:
		return value.KindSequence, nil
	case h&wire.MapMask == wire.MapTag:
		return value.KindMap, nil
	case h&wire.FloatMask == wire.FloatTag:
		return value.KindFloat, nil
	case h&wire.BytesMask == wire.BytesTag:
		return value.KindBytes, nil
	case h&wire.BoolMask == wire.BoolTag:
		return value.KindBool, nil
	case h == wire.UnitByte:
		return value.KindUnit, nil
	case h == wire.NullByte:
		return value.KindNull, nil
	default:
		return 0, lerrs.Wrap(lerrs.ErrInvalidHeader, "dispatch", nil)
	}
}

// PeekType reports the Kind of the next value without consuming its
// header byte.
func (d *Decoder) PeekType() (value.Kind, error) {
	if d.peeked == nil {
		b, err := d.src.ReadU8()
		if err != nil {
			return 0, err
		}
		d.peeked = &b
	}

	return kindOf(*d.peeked)
}

func (d *Decoder) readWidthValue(width int) (uint64, error) {
	buf := make([]byte, width)
	if err := d.src.ReadExact(buf); err != nil {
		return 0, err
	}

	return netorder.Uint(buf, width), nil
}

// checkContainerLen rejects lengths beyond the configured MaxContainerLen,
// and unconditionally rejects anything that would not fit in an int on this
// platform: make([]T, n) reinterprets a too-large uint64 as a negative int
// and panics rather than returning an error, so that bound is enforced
// regardless of MaxContainerLen.
func (d *Decoder) checkContainerLen(n uint64, context string) error {
	if n > d.cfg.MaxContainerLen || n > math.MaxInt {
		return lerrs.Wrap(lerrs.ErrIntegerOverflow, context, nil)
	}

	return nil
}

// DecodeSequenceHeader consumes a Sequence header and returns the number
// of elements the caller must decode next. It returns
// lerrs.ErrInvalidHeader if the next value is not a Sequence.
func (d *Decoder) DecodeSequenceHeader() (uint64, error) {
	header, err := d.nextByte()
	if err != nil {
		return 0, err
	}
	if header&wire.SequenceMask != wire.SequenceTag {
		return 0, lerrs.Wrap(lerrs.ErrInvalidHeader, "decode_sequence_header: not a sequence", nil)
	}

	return d.readContainerLen(header, wire.SequenceCompactBit, wire.SequenceCompactMask, wire.SequenceExtWidthMask, "decode_sequence_header")
}

// DecodeMapHeader consumes a Map header and returns the number of (key,
// value) pairs the caller must decode next. It returns
// lerrs.ErrInvalidHeader if the next value is not a Map.
func (d *Decoder) DecodeMapHeader() (uint64, error) {
	header, err := d.nextByte()
	if err != nil {
		return 0, err
	}
	if header&wire.MapMask != wire.MapTag {
		return 0, lerrs.Wrap(lerrs.ErrInvalidHeader, "decode_map_header: not a map", nil)
	}

	return d.readContainerLen(header, wire.MapCompactBit, wire.MapCompactMask, wire.MapExtWidthMask, "decode_map_header")
}

func (d *Decoder) readContainerLen(header, compactBit, compactMask, extWidthMask byte, context string) (uint64, error) {
	var n uint64
	if header&compactBit != 0 {
		n = uint64(header & compactMask)
	} else {
		width := int(header&extWidthMask) + 1
		v, err := d.readWidthValue(width)
		if err != nil {
			return 0, err
		}
		n = v
	}

	if err := d.checkContainerLen(n, context); err != nil {
		return 0, err
	}

	return n, nil
}

// DecodePrimitive decodes the next value, which must not be a Sequence or
// Map; use DecodeSequenceHeader/DecodeMapHeader for those. It is the
// scalar half of the pull-style API, for callers that want to walk
// containers manually instead of using DecodeValue's recursion.
func (d *Decoder) DecodePrimitive() (value.Value, error) {
	header, err := d.nextByte()
	if err != nil {
		return value.Value{}, err
	}

	kind, err := kindOf(header)
	if err != nil {
		return value.Value{}, err
	}

	if kind == value.KindSequence || kind == value.KindMap {
		return value.Value{}, lerrs.Wrap(lerrs.ErrInvalidHeader, "decode_primitive: container header", nil)
	}

	return d.decodeScalarBody(header, kind)
}

func (d *Decoder) decodeScalarBody(header byte, kind value.Kind) (value.Value, error) {
	switch kind {
	case value.KindNull:
		return value.Null(), nil
	case value.KindUnit:
		return value.Unit(), nil
	case value.KindBool:
		return value.Bool(header&wire.BoolValueMask != 0), nil
	case value.KindInteger:
		return d.decodeInteger(header)
	case value.KindFloat:
		return d.decodeFloat(header)
	case value.KindString:
		return d.decodeString(header)
	case value.KindBytes:
		return d.decodeBytes(header)
	default:
		return value.Value{}, lerrs.Wrap(lerrs.ErrInvalidHeader, "decode_scalar: unreachable kind", nil)
	}
}

func (d *Decoder) decodeInteger(header byte) (value.Value, error) {
	compact := header&wire.IntegerCompactBit != 0
	signed := header&wire.IntegerSignedBit != 0

	var magnitude uint64
	if compact {
		magnitude = uint64(header & wire.IntegerValueMask)
	} else {
		if d.cfg.StrictReservedBits && header&wire.IntegerExtReservedMask != 0 {
			return value.Value{}, lerrs.Wrap(lerrs.ErrInvalidHeader, "decode_integer: reserved bits set", nil)
		}

		width := int(header&wire.IntegerExtWidthMask) + 1
		v, err := d.readWidthValue(width)
		if err != nil {
			return value.Value{}, err
		}
		magnitude = v
	}

	if signed {
		return value.Int(intpack.ZigZagDecode(magnitude)), nil
	}

	return value.Uint(magnitude), nil
}

func (d *Decoder) decodeFloat(header byte) (value.Value, error) {
	width := int(header&wire.FloatWidthMask) + 1

	raw, err := d.readWidthValue(width)
	if err != nil {
		return value.Value{}, err
	}

	return value.Float(floatpack.UnpackFloat64(raw, width)), nil
}

func (d *Decoder) decodeString(header byte) (value.Value, error) {
	var length uint64
	if header&wire.StringExtendedBit == 0 {
		length = uint64(header & wire.StringCompactMask)
	} else {
		if d.cfg.StrictReservedBits && header&wire.StringExtReservedMask != 0 {
			return value.Value{}, lerrs.Wrap(lerrs.ErrInvalidHeader, "decode_string: reserved bits set", nil)
		}

		width := int(header&wire.StringExtWidthMask) + 1
		v, err := d.readWidthValue(width)
		if err != nil {
			return value.Value{}, err
		}
		length = v
	}

	if err := d.checkContainerLen(length, "decode_string"); err != nil {
		return value.Value{}, err
	}

	payload := make([]byte, length)
	if err := d.src.ReadExact(payload); err != nil {
		return value.Value{}, err
	}

	if d.cfg.ValidateUTF8OnDecode && !utf8.Valid(payload) {
		return value.Value{}, lerrs.Wrap(lerrs.ErrInvalidUTF8, "decode_string", nil)
	}

	return value.String(string(payload)), nil
}

func (d *Decoder) decodeBytes(header byte) (value.Value, error) {
	width := int(header&wire.BytesWidthMask) + 1

	exp, err := d.readWidthValue(width)
	if err != nil {
		return value.Value{}, err
	}
	if exp >= 64 {
		return value.Value{}, lerrs.Wrap(lerrs.ErrIntegerOverflow, "decode_bytes: exponent too large", nil)
	}

	length := uint64(1) << exp
	if err := d.checkContainerLen(length, "decode_bytes"); err != nil {
		return value.Value{}, err
	}

	payload := make([]byte, length)
	if err := d.src.ReadExact(payload); err != nil {
		return value.Value{}, err
	}

	return value.Bytes(payload), nil
}

// DecodeValue decodes the next value, recursing into Sequence and Map
// contents up to MaxDepth levels deep.
func (d *Decoder) DecodeValue() (value.Value, error) {
	header, err := d.nextByte()
	if err != nil {
		return value.Value{}, err
	}

	kind, err := kindOf(header)
	if err != nil {
		return value.Value{}, err
	}

	switch kind {
	case value.KindSequence:
		return d.decodeSequenceBody(header)
	case value.KindMap:
		return d.decodeMapBody(header)
	default:
		return d.decodeScalarBody(header, kind)
	}
}

func (d *Decoder) enterContainer(context string) error {
	d.depth++
	if d.depth > d.cfg.MaxDepth {
		d.depth--

		return lerrs.Wrap(lerrs.ErrDepthExceeded, context, nil)
	}

	return nil
}

func (d *Decoder) decodeSequenceBody(header byte) (value.Value, error) {
	n, err := d.readContainerLen(header, wire.SequenceCompactBit, wire.SequenceCompactMask, wire.SequenceExtWidthMask, "decode_sequence")
	if err != nil {
		return value.Value{}, err
	}

	if err := d.enterContainer("decode_sequence"); err != nil {
		return value.Value{}, err
	}
	defer func() { d.depth-- }()

	items := make([]value.Value, n)
	for i := range items {
		items[i], err = d.DecodeValue()
		if err != nil {
			return value.Value{}, err
		}
	}

	return value.Sequence(items), nil
}

func (d *Decoder) decodeMapBody(header byte) (value.Value, error) {
	n, err := d.readContainerLen(header, wire.MapCompactBit, wire.MapCompactMask, wire.MapExtWidthMask, "decode_map")
	if err != nil {
		return value.Value{}, err
	}

	if err := d.enterContainer("decode_map"); err != nil {
		return value.Value{}, err
	}
	defer func() { d.depth-- }()

	kvs := make([]value.Pair, n)
	for i := range kvs {
		kvs[i].Key, err = d.DecodeValue()
		if err != nil {
			return value.Value{}, err
		}
		kvs[i].Val, err = d.DecodeValue()
		if err != nil {
			return value.Value{}, err
		}
	}

	return value.Map(kvs), nil
}
