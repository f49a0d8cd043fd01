package codec

import (
	"math/bits"
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

// frame tracks one open Sequence or Map so Begin/End calls can validate the
// caller wrote exactly as many items as the header promised. A Map frame
// counts key+value as two items, since the wire length field is a pair
// count while encoding proceeds one Value at a time.
type frame struct {
	kind value.Kind
	want uint64
	got  uint64
}

// Encoder is a push-style writer over a ByteSink: the caller drives
// encoding one value at a time, including explicit Begin/End brackets
// around Sequence and Map contents (spec §4.4).
type Encoder struct {
	sink  iosink.ByteSink
	cfg   EncoderConfig
	stack []frame
}

// NewEncoder creates an Encoder writing to sink, configured by opts.
func NewEncoder(sink iosink.ByteSink, opts ...EncoderOption) (*Encoder, error) {
	cfg := NewEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder{sink: sink, cfg: *cfg}, nil
}

// afterValue registers that one value was just written at the current
// nesting level, for the enclosing frame's item-count bookkeeping.
func (e *Encoder) afterValue() {
	if len(e.stack) == 0 {
		return
	}

	e.stack[len(e.stack)-1].got++
}

func (e *Encoder) writeHeader(b byte) error {
	return e.sink.WriteU8(b)
}

// EncodeNull writes a Null value.
func (e *Encoder) EncodeNull() error {
	if err := e.writeHeader(wire.NullByte); err != nil {
		return err
	}
	e.afterValue()

	return nil
}

// EncodeUnit writes a Unit value.
func (e *Encoder) EncodeUnit() error {
	if err := e.writeHeader(wire.UnitByte); err != nil {
		return err
	}
	e.afterValue()

	return nil
}

// EncodeBool writes a Bool value.
func (e *Encoder) EncodeBool(b bool) error {
	header := byte(wire.BoolTag)
	if b {
		header |= wire.BoolValueMask
	}
	if err := e.writeHeader(header); err != nil {
		return err
	}
	e.afterValue()

	return nil
}

// EncodeIntSigned writes a signed Integer value.
func (e *Encoder) EncodeIntSigned(i int64) error {
	z := intpack.ZigZagEncode(i)

	return e.encodeInteger(z, true)
}

// EncodeIntUnsigned writes an unsigned Integer value.
func (e *Encoder) EncodeIntUnsigned(u uint64) error {
	return e.encodeInteger(u, false)
}

func (e *Encoder) encodeInteger(magnitude uint64, signed bool) error {
	signBit := byte(0)
	if signed {
		signBit = wire.IntegerSignedBit
	}

	if e.cfg.PreferCompact && magnitude <= wire.IntegerCompactMax {
		header := wire.IntegerTag | wire.IntegerCompactBit | signBit | byte(magnitude)
		if err := e.writeHeader(header); err != nil {
			return err
		}
		e.afterValue()

		return nil
	}

	width := netorder.MinByteWidth(magnitude)
	header := wire.IntegerTag | signBit | byte(width-1)
	if err := e.writeHeader(header); err != nil {
		return err
	}

	buf := make([]byte, width)
	netorder.PutUint(buf, magnitude, width)
	if err := e.sink.WriteAll(buf); err != nil {
		return err
	}
	e.afterValue()

	return nil
}

// EncodeFloat writes a Float value, choosing the wire width per the
// encoder's FloatWidthPolicy.
func (e *Encoder) EncodeFloat(f float64) error {
	width := e.chooseFloatWidth(f)
	raw := floatpack.PackFloat64(f, width)

	header := wire.FloatTag | byte(width-1)
	if err := e.writeHeader(header); err != nil {
		return err
	}

	buf := make([]byte, width)
	netorder.PutUint(buf, raw, width)
	if err := e.sink.WriteAll(buf); err != nil {
		return err
	}
	e.afterValue()

	return nil
}

func (e *Encoder) chooseFloatWidth(f float64) int {
	if e.cfg.FloatWidthPolicy == FloatWidthAlwaysDouble {
		return 8
	}

	full := floatpack.PackFloat64(f, 8)
	for width := 1; width < 8; width++ {
		raw := floatpack.PackFloat64(f, width)
		back := floatpack.Expand(raw, width, 8)
		if back == full {
			return width
		}
	}

	return 8
}

// EncodeString writes a String value. If ValidateUTF8OnEncode is set, a
// string whose bytes are not valid UTF-8 is rejected with
// lerrs.ErrInvalidUTF8.
func (e *Encoder) EncodeString(s string) error {
	if e.cfg.ValidateUTF8OnEncode && !utf8.ValidString(s) {
		return lerrs.Wrap(lerrs.ErrInvalidUTF8, "encode_string", nil)
	}

	length := uint64(len(s))

	if e.cfg.PreferCompact && length <= wire.StringCompactMax {
		if err := e.writeHeader(wire.StringTag | byte(length)); err != nil {
			return err
		}
	} else {
		width := netorder.MinByteWidth(length)
		if err := e.writeHeader(wire.StringTag | wire.StringExtendedBit | byte(width-1)); err != nil {
			return err
		}

		buf := make([]byte, width)
		netorder.PutUint(buf, length, width)
		if err := e.sink.WriteAll(buf); err != nil {
			return err
		}
	}

	if err := e.sink.WriteAll([]byte(s)); err != nil {
		return err
	}
	e.afterValue()

	return nil
}

// EncodeBytes writes a Bytes value. The payload length must be an exact
// power of two (spec §4.2's Bytes note); any other length is rejected with
// lerrs.ErrInvalidBytesLength.
func (e *Encoder) EncodeBytes(b []byte) error {
	n := len(b)
	if n == 0 || n&(n-1) != 0 {
		return lerrs.Wrap(lerrs.ErrInvalidBytesLength, "encode_bytes", nil)
	}

	exp := uint64(bits.TrailingZeros(uint(n)))
	width := netorder.MinByteWidth(exp)
	if width > wire.MaxLengthExtWidth4 {
		return lerrs.Wrap(lerrs.ErrIntegerOverflow, "encode_bytes", nil)
	}

	if err := e.writeHeader(wire.BytesTag | byte(width-1)); err != nil {
		return err
	}

	buf := make([]byte, width)
	netorder.PutUint(buf, exp, width)
	if err := e.sink.WriteAll(buf); err != nil {
		return err
	}
	if err := e.sink.WriteAll(b); err != nil {
		return err
	}
	e.afterValue()

	return nil
}

// BeginSequence writes a Sequence header announcing n upcoming elements.
// The caller must follow with exactly n EncodeXxx/EncodeValue calls at
// this nesting level, then call EndSequence.
func (e *Encoder) BeginSequence(n int) error {
	if err := e.writeContainerHeader(wire.SequenceTag, wire.SequenceCompactBit, wire.SequenceCompactMax, uint64(n)); err != nil {
		return err
	}

	e.stack = append(e.stack, frame{kind: value.KindSequence, want: uint64(n)})

	return nil
}

// EndSequence closes the innermost open Sequence. It is an error to call
// EndSequence having written a number of elements other than the count
// passed to the matching BeginSequence.
func (e *Encoder) EndSequence() error {
	return e.endContainer(value.KindSequence, "end_sequence")
}

// BeginMap writes a Map header announcing n upcoming (key, value) pairs.
// The caller must follow with exactly 2*n EncodeXxx/EncodeValue calls
// (key, value, key, value, ...) at this nesting level, then call EndMap.
func (e *Encoder) BeginMap(n int) error {
	if err := e.writeContainerHeader(wire.MapTag, wire.MapCompactBit, wire.MapCompactMax, uint64(n)); err != nil {
		return err
	}

	e.stack = append(e.stack, frame{kind: value.KindMap, want: uint64(n) * 2})

	return nil
}

// EndMap closes the innermost open Map. It is an error to call EndMap
// having written a number of key/value items other than 2 times the count
// passed to the matching BeginMap.
func (e *Encoder) EndMap() error {
	return e.endContainer(value.KindMap, "end_map")
}

func (e *Encoder) writeContainerHeader(tag, compactBit byte, compactMax int, count uint64) error {
	if e.cfg.PreferCompact && count <= uint64(compactMax) {
		return e.writeHeader(tag | compactBit | byte(count))
	}

	width := netorder.MinByteWidth(count)
	if err := e.writeHeader(tag | byte(width-1)); err != nil {
		return err
	}

	buf := make([]byte, width)
	netorder.PutUint(buf, count, width)

	return e.sink.WriteAll(buf)
}

func (e *Encoder) endContainer(kind value.Kind, context string) error {
	if len(e.stack) == 0 {
		return lerrs.Wrap(lerrs.ErrInvalidHeader, context+": no open container", nil)
	}

	top := e.stack[len(e.stack)-1]
	if top.kind != kind {
		return lerrs.Wrap(lerrs.ErrInvalidHeader, context+": mismatched container kind", nil)
	}
	if top.got != top.want {
		return lerrs.Wrap(lerrs.ErrInvalidHeader, context+": item count mismatch", nil)
	}

	e.stack = e.stack[:len(e.stack)-1]
	e.afterValue()

	return nil
}

// EncodeValue writes v, recursing into Sequence and Map contents. It is
// the convenience form of the push-style API: callers who prefer explicit
// Begin/End brackets can use those directly instead.
func (e *Encoder) EncodeValue(v value.Value) error {
	switch v.Kind() {
	case value.KindNull:
		return e.EncodeNull()
	case value.KindUnit:
		return e.EncodeUnit()
	case value.KindBool:
		b, _ := v.AsBool()

		return e.EncodeBool(b)
	case value.KindInteger:
		if v.IsSigned() {
			i, _ := v.AsInt()

			return e.EncodeIntSigned(i)
		}
		u, _ := v.AsUint()

		return e.EncodeIntUnsigned(u)
	case value.KindFloat:
		f, _ := v.AsFloat()

		return e.EncodeFloat(f)
	case value.KindString:
		s, _ := v.AsString()

		return e.EncodeString(s)
	case value.KindBytes:
		b, _ := v.AsBytes()

		return e.EncodeBytes(b)
	case value.KindSequence:
		xs, _ := v.AsSequence()
		if err := e.BeginSequence(len(xs)); err != nil {
			return err
		}
		for _, x := range xs {
			if err := e.EncodeValue(x); err != nil {
				return err
			}
		}

		return e.EndSequence()
	case value.KindMap:
		kvs, _ := v.AsMap()
		if err := e.BeginMap(len(kvs)); err != nil {
			return err
		}
		for _, kv := range kvs {
			if err := e.EncodeValue(kv.Key); err != nil {
				return err
			}
			if err := e.EncodeValue(kv.Val); err != nil {
				return err
			}
		}

		return e.EndMap()
	default:
		return lerrs.Wrap(lerrs.ErrInvalidHeader, "encode_value: unknown kind", nil)
	}
}
