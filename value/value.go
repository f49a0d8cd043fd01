// Package value defines the canonical in-memory representation of a
// Lilliput value: an immutable tagged union covering every wire type in
// the format (Null, Unit, Bool, Integer, Float, String, Bytes, Sequence,
// Map).
//
// Values are plain data. There is no behavior beyond construction,
// structural equality, and a debug String() form — the codec package owns
// encoding and decoding.
package value

import (
	"fmt"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindUnit
	KindBool
	KindInteger
	KindFloat
	KindString
	KindBytes
	KindSequence
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindUnit:
		return "Unit"
	case KindBool:
		return "Bool"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	case KindSequence:
		return "Sequence"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// Pair is an ordered (key, value) entry of a Map. The codec does not
// enforce key uniqueness or hashability; that is a caller concern (see
// spec §9 Open question).
type Pair struct {
	Key Value
	Val Value
}

// Value is a tagged union over every Lilliput wire type. The zero Value is
// Null.
//
// Exactly one of the typed fields is meaningful for a given Kind; the
// constructors below are the only supported way to build a Value so that
// invariant always holds.
type Value struct {
	kind    Kind
	b       bool
	signed  bool // Integer: true if i is a signed value, false if u is unsigned
	i       int64
	u       uint64
	f       float64
	s       string
	bytes   []byte
	seq     []Value
	kvs     []Pair
}

// Null returns the Null value. Null and Unit are distinct (spec §4.1).
func Null() Value { return Value{kind: KindNull} }

// Unit returns the Unit value.
func Unit() Value { return Value{kind: KindUnit} }

// Bool returns a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a signed Integer value.
func Int(i int64) Value { return Value{kind: KindInteger, signed: true, i: i} }

// Uint returns an unsigned Integer value. Signed and unsigned Integers are
// distinct values even when numerically equal (spec §3 invariant 2).
func Uint(u uint64) Value { return Value{kind: KindInteger, signed: false, u: u} }

// Float returns a Float value. The in-memory representation is always a
// 64-bit double; the wire width is chosen by the encoder per its
// float_width_policy.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a String value. s is assumed to already be valid UTF-8;
// the encoder validates it only if validate_utf8_on_encode is set.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bytes returns a Bytes value. The codec only permits encoding byte slices
// whose length is an exact power of two (spec §4.2 note on Bytes); this
// constructor does not itself enforce that so callers can build
// intermediate values freely, but Encoder.EncodeBytes rejects it.
func Bytes(b []byte) Value { return Value{kind: KindBytes, bytes: b} }

// Sequence returns a Sequence value wrapping an ordered list of Values.
func Sequence(xs []Value) Value { return Value{kind: KindSequence, seq: xs} }

// Map returns a Map value wrapping an ordered list of (key, value) pairs.
func Map(kvs []Pair) Value { return Value{kind: KindMap, kvs: kvs} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the Bool payload and whether v is a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// IsSigned reports whether v is a signed Integer. Only meaningful when
// Kind() == KindInteger.
func (v Value) IsSigned() bool { return v.signed }

// AsInt returns the signed Integer payload and whether v is a signed
// Integer.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInteger && v.signed
}

// AsUint returns the unsigned Integer payload and whether v is an unsigned
// Integer.
func (v Value) AsUint() (uint64, bool) {
	return v.u, v.kind == KindInteger && !v.signed
}

// AsFloat returns the Float payload and whether v is a Float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the String payload and whether v is a String.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsBytes returns the Bytes payload and whether v is Bytes.
func (v Value) AsBytes() ([]byte, bool) { return v.bytes, v.kind == KindBytes }

// AsSequence returns the Sequence payload and whether v is a Sequence.
func (v Value) AsSequence() ([]Value, bool) { return v.seq, v.kind == KindSequence }

// AsMap returns the Map payload and whether v is a Map.
func (v Value) AsMap() ([]Pair, bool) { return v.kvs, v.kind == KindMap }

// Equal reports whether v and other are structurally equal.
//
// Null and Unit never compare equal to each other. Signed and unsigned
// Integers never compare equal to each other even when numerically equal.
// Floats compare by IEEE-754 value equality (so NaN != NaN, matching
// float64 semantics; the wire-width choice used to encode a Float never
// affects this comparison since Values hold a 64-bit double in memory).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull, KindUnit:
		return true
	case KindBool:
		return v.b == other.b
	case KindInteger:
		if v.signed != other.signed {
			return false
		}
		if v.signed {
			return v.i == other.i
		}

		return v.u == other.u
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindBytes:
		return bytesEqual(v.bytes, other.bytes)
	case KindSequence:
		if len(v.seq) != len(other.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(other.seq[i]) {
				return false
			}
		}

		return true
	case KindMap:
		if len(v.kvs) != len(other.kvs) {
			return false
		}
		for i := range v.kvs {
			if !v.kvs[i].Key.Equal(other.kvs[i].Key) || !v.kvs[i].Val.Equal(other.kvs[i].Val) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// String returns a debug representation of v. It is not the wire format.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "Null"
	case KindUnit:
		return "Unit"
	case KindBool:
		return fmt.Sprintf("Bool(%t)", v.b)
	case KindInteger:
		if v.signed {
			return fmt.Sprintf("Integer(signed %d)", v.i)
		}

		return fmt.Sprintf("Integer(unsigned %d)", v.u)
	case KindFloat:
		return fmt.Sprintf("Float(%v)", v.f)
	case KindString:
		return fmt.Sprintf("String(%q)", v.s)
	case KindBytes:
		return fmt.Sprintf("Bytes(len=%d)", len(v.bytes))
	case KindSequence:
		parts := make([]string, len(v.seq))
		for i, x := range v.seq {
			parts[i] = x.String()
		}

		return "Sequence[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		parts := make([]string, len(v.kvs))
		for i, kv := range v.kvs {
			parts[i] = kv.Key.String() + ": " + kv.Val.String()
		}

		return "Map{" + strings.Join(parts, ", ") + "}"
	default:
		return "Invalid"
	}
}
