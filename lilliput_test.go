package lilliput_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lilliput-fmt/lilliput"
	"github.com/lilliput-fmt/lilliput/iosink"
	"github.com/lilliput-fmt/lilliput/value"
)

// TestEncodeDecodeRoundTrip verifies the top-level convenience wrappers
// round-trip a representative value tree.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	v := value.Map([]value.Pair{
		{Key: value.String("name"), Val: value.String("gulliver")},
		{Key: value.String("height_cm"), Val: value.Int(167)},
		{Key: value.String("tags"), Val: value.Sequence([]value.Value{
			value.String("castaway"), value.String("surveyor"),
		})},
	})

	data, err := lilliput.Encode(v)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	got, err := lilliput.Decode(data)
	require.NoError(t, err)
	require.True(t, v.Equal(got))
}

// TestNewEncoderNewDecoder verifies the streaming constructors work
// against an in-memory sink/source pair.
func TestNewEncoderNewDecoder(t *testing.T) {
	sink := iosink.NewSliceSink()
	defer sink.Release()

	enc, err := lilliput.NewEncoder(sink)
	require.NoError(t, err)
	require.NoError(t, enc.EncodeIntSigned(-42))

	dec, err := lilliput.NewDecoder(iosink.NewSliceSource(sink.Bytes()))
	require.NoError(t, err)

	got, err := dec.DecodeValue()
	require.NoError(t, err)

	i, ok := got.AsInt()
	require.True(t, ok)
	require.Equal(t, int64(-42), i)
}
