// Package lilliput provides a compact binary object-serialization format:
// a JSON-like value model (Null, Unit, Bool, Integer, Float, String,
// Bytes, Sequence, Map) with a wire encoding tuned for small size rather
// than human readability.
//
// # Core Features
//
//   - Header-byte dispatch: every value starts with one byte identifying
//     its type, so decoding never needs a schema or out-of-band type tag
//   - Compact variants for small integers, short strings, and small
//     containers that collapse length/value into the header byte itself
//   - Bit-packed, byte-padded integers via zig-zag mapping for signed
//     values
//   - Eight IEEE-754 float widths (8 through 64 bits) sharing one
//     generalized truncation/expansion algorithm
//   - Streaming push-style encoding and pull-style decoding, so large
//     values never need to be fully materialized in memory
//   - An outer envelope layer for optional compression (Zstd, S2, LZ4)
//     and xxHash64 integrity checking, kept separate from the core wire
//     format
//
// # Basic Usage
//
// Encoding a value tree:
//
//	import "github.com/lilliput-fmt/lilliput"
//
//	v := value.Map([]value.Pair{
//		{Key: value.String("name"), Val: value.String("gulliver")},
//		{Key: value.String("height_cm"), Val: value.Int(167)},
//	})
//
//	data, err := lilliput.Encode(v)
//
// Decoding it back:
//
//	got, err := lilliput.Decode(data)
//
// # Package Structure
//
// This file provides convenient top-level wrappers around the value and
// codec packages for the common case of encoding/decoding one self-
// contained value to/from an in-memory byte slice. For streaming I/O,
// fine-grained configuration, or the low-level pull-style decode API, use
// the codec package directly against an iosink.ByteSink/ByteSource.
package lilliput

import (
	"github.com/lilliput-fmt/lilliput/codec"
	"github.com/lilliput-fmt/lilliput/iosink"
	"github.com/lilliput-fmt/lilliput/value"
)

// Encode serializes v to a new byte slice using the default EncoderConfig.
func Encode(v value.Value, opts ...codec.EncoderOption) ([]byte, error) {
	sink := iosink.NewSliceSink()
	defer sink.Release()

	enc, err := codec.NewEncoder(sink, opts...)
	if err != nil {
		return nil, err
	}

	if err := enc.EncodeValue(v); err != nil {
		return nil, err
	}

	out := make([]byte, len(sink.Bytes()))
	copy(out, sink.Bytes())

	return out, nil
}

// Decode deserializes a single value from data using the default
// DecoderConfig. data must contain exactly one encoded value; trailing
// bytes are ignored.
func Decode(data []byte, opts ...codec.DecoderOption) (value.Value, error) {
	src := iosink.NewSliceSource(data)

	dec, err := codec.NewDecoder(src, opts...)
	if err != nil {
		return value.Value{}, err
	}

	return dec.DecodeValue()
}

// NewEncoder creates a streaming Encoder writing to sink.
func NewEncoder(sink iosink.ByteSink, opts ...codec.EncoderOption) (*codec.Encoder, error) {
	return codec.NewEncoder(sink, opts...)
}

// NewDecoder creates a streaming Decoder reading from src.
func NewDecoder(src iosink.ByteSource, opts ...codec.DecoderOption) (*codec.Decoder, error) {
	return codec.NewDecoder(src, opts...)
}
