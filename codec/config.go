package codec

import (
	"github.com/lilliput-fmt/lilliput/internal/options"
)

// FloatWidthPolicy controls how Encoder.EncodeFloat chooses a wire width
// (spec §4.4).
type FloatWidthPolicy uint8

const (
	// FloatWidthSmallest emits the narrowest of the eight supported widths
	// that round-trips the value exactly.
	FloatWidthSmallest FloatWidthPolicy = iota
	// FloatWidthAlwaysDouble always emits the full 64-bit width.
	FloatWidthAlwaysDouble
)

// DefaultMaxDepth is the decoder's default recursion bound (spec §4.5).
const DefaultMaxDepth = 128

// DefaultMaxContainerLen is the decoder's default length-value ceiling
// (spec §4.5): 2^63.
const DefaultMaxContainerLen = uint64(1) << 63

// EncoderConfig holds the options recognized by Encoder (spec §4.4).
type EncoderConfig struct {
	PreferCompact        bool
	FloatWidthPolicy     FloatWidthPolicy
	ValidateUTF8OnEncode bool
}

// NewEncoderConfig returns the default configuration: prefer_compact=true,
// float_width_policy=Smallest, validate_utf8_on_encode=false.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		PreferCompact:        true,
		FloatWidthPolicy:     FloatWidthSmallest,
		ValidateUTF8OnEncode: false,
	}
}

// EncoderOption configures an EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithPreferCompact sets whether the encoder prefers the compact variant
// when a value fits. The encoder MAY still emit extended form even when
// this is true (spec §4.2.1's compactness rule is a SHOULD, not a MUST).
func WithPreferCompact(prefer bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) { c.PreferCompact = prefer })
}

// WithFloatWidthPolicy sets the float width selection policy.
func WithFloatWidthPolicy(p FloatWidthPolicy) EncoderOption {
	return options.NoError(func(c *EncoderConfig) { c.FloatWidthPolicy = p })
}

// WithValidateUTF8OnEncode enables UTF-8 validation of String payloads at
// encode time.
func WithValidateUTF8OnEncode(validate bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) { c.ValidateUTF8OnEncode = validate })
}

// DecoderConfig holds the options recognized by Decoder (spec §4.5).
type DecoderConfig struct {
	MaxDepth             int
	MaxContainerLen      uint64
	ValidateUTF8OnDecode bool
	StrictReservedBits   bool
}

// NewDecoderConfig returns the default configuration: max_depth=128,
// max_container_len=2^63, validate_utf8_on_decode=true,
// strict_reserved_bits=false.
func NewDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		MaxDepth:             DefaultMaxDepth,
		MaxContainerLen:      DefaultMaxContainerLen,
		ValidateUTF8OnDecode: true,
		StrictReservedBits:   false,
	}
}

// DecoderOption configures a DecoderConfig.
type DecoderOption = options.Option[*DecoderConfig]

// WithMaxDepth bounds container recursion depth.
func WithMaxDepth(depth int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.MaxDepth = depth })
}

// WithMaxContainerLen bounds the accepted length value for any Sequence,
// Map, String, or Bytes extension.
func WithMaxContainerLen(max uint64) DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.MaxContainerLen = max })
}

// WithValidateUTF8OnDecode enables or disables UTF-8 validation of decoded
// String payloads.
func WithValidateUTF8OnDecode(validate bool) DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.ValidateUTF8OnDecode = validate })
}

// WithStrictReservedBits rejects headers with nonzero reserved bits
// instead of masking them off.
func WithStrictReservedBits(strict bool) DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.StrictReservedBits = strict })
}
