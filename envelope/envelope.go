// Package envelope wraps an encoded Lilliput value in an outer frame
// carrying an optional compression pass and an optional integrity digest.
// Compression and checksumming are explicitly outside Lilliput's core wire
// format (spec §1 Non-goals call both "an outer layer's concern"); this
// package is that outer layer.
//
// Frame layout:
//
//	[1 byte codec ID][1 byte flags][8 bytes xxhash64 digest, if FlagDigest][payload]
package envelope

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/lilliput-fmt/lilliput/digest"
)

// ID identifies which compression algorithm a frame's payload was wrapped
// with.
type ID uint8

const (
	IDNone ID = iota
	IDZstd
	IDS2
	IDLZ4
)

func (id ID) String() string {
	switch id {
	case IDNone:
		return "none"
	case IDZstd:
		return "zstd"
	case IDS2:
		return "s2"
	case IDLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Flag bits set in a frame's flags byte.
const (
	FlagDigest byte = 1 << 0
)

// ErrUnknownCodec reports a frame whose codec ID byte does not match any
// registered Codec.
var ErrUnknownCodec = errors.New("envelope: unknown codec id")

// ErrDigestMismatch reports that a frame's embedded xxhash64 digest does
// not match its payload, meaning the frame is corrupt or truncated.
var ErrDigestMismatch = errors.New("envelope: digest mismatch")

// ErrFrameTooShort reports a frame missing its header or embedded digest.
var ErrFrameTooShort = errors.New("envelope: frame too short")

// Codec compresses and decompresses a byte payload. Compress and
// Decompress are collapsed into one interface since every implementation
// here provides both directions.
type Codec interface {
	ID() ID
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

var registry = map[ID]Codec{
	IDNone: NoneCodec{},
	IDZstd: NewZstdCodec(),
	IDS2:   NewS2Codec(),
	IDLZ4:  NewLZ4Codec(),
}

// Lookup returns the registered Codec for id.
func Lookup(id ID) (Codec, error) {
	c, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCodec, id)
	}

	return c, nil
}

// Wrap compresses payload with codec and frames it, optionally embedding
// an xxhash64 digest of the uncompressed payload when withDigest is true.
func Wrap(codec Codec, payload []byte, withDigest bool) ([]byte, error) {
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("envelope: compress: %w", err)
	}

	flags := byte(0)
	if withDigest {
		flags |= FlagDigest
	}

	frame := make([]byte, 0, 2+8+len(compressed))
	frame = append(frame, byte(codec.ID()), flags)

	if withDigest {
		var sumBuf [8]byte
		binary.BigEndian.PutUint64(sumBuf[:], digest.Sum64(payload))
		frame = append(frame, sumBuf[:]...)
	}

	frame = append(frame, compressed...)

	return frame, nil
}

// Unwrap parses frame, decompresses its payload using the codec named by
// the frame's header byte, and verifies the embedded digest if present.
func Unwrap(frame []byte) ([]byte, error) {
	if len(frame) < 2 {
		return nil, ErrFrameTooShort
	}

	id := ID(frame[0])
	flags := frame[1]
	rest := frame[2:]

	var wantDigest uint64
	hasDigest := flags&FlagDigest != 0
	if hasDigest {
		if len(rest) < 8 {
			return nil, ErrFrameTooShort
		}
		wantDigest = binary.BigEndian.Uint64(rest[:8])
		rest = rest[8:]
	}

	codec, err := Lookup(id)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(rest)
	if err != nil {
		return nil, fmt.Errorf("envelope: decompress: %w", err)
	}

	if hasDigest && digest.Sum64(payload) != wantDigest {
		return nil, ErrDigestMismatch
	}

	return payload, nil
}
