package envelope_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lilliput-fmt/lilliput/envelope"
)

func TestWrapUnwrapRoundTrip(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog, repeatedly, for compressibility")

	for _, codec := range []envelope.Codec{
		envelope.NoneCodec{},
		envelope.NewZstdCodec(),
		envelope.NewS2Codec(),
		envelope.NewLZ4Codec(),
	} {
		for _, withDigest := range []bool{false, true} {
			frame, err := envelope.Wrap(codec, payload, withDigest)
			require.NoError(t, err, codec.ID())

			got, err := envelope.Unwrap(frame)
			require.NoError(t, err, codec.ID())
			require.Equal(t, payload, got, codec.ID())
		}
	}
}

func TestUnwrapDetectsDigestMismatch(t *testing.T) {
	frame, err := envelope.Wrap(envelope.NoneCodec{}, []byte("hello"), true)
	require.NoError(t, err)

	corrupted := append([]byte(nil), frame...)
	corrupted[len(corrupted)-1] ^= 0xFF

	_, err = envelope.Unwrap(corrupted)
	require.ErrorIs(t, err, envelope.ErrDigestMismatch)
}

func TestUnwrapUnknownCodec(t *testing.T) {
	_, err := envelope.Unwrap([]byte{0xFF, 0x00})
	require.ErrorIs(t, err, envelope.ErrUnknownCodec)
}

func TestUnwrapFrameTooShort(t *testing.T) {
	_, err := envelope.Unwrap([]byte{0x00})
	require.ErrorIs(t, err, envelope.ErrFrameTooShort)
}
