package digest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lilliput-fmt/lilliput/digest"
)

func TestSum64Deterministic(t *testing.T) {
	a := digest.Sum64([]byte("lilliput"))
	b := digest.Sum64([]byte("lilliput"))
	require.Equal(t, a, b)
}

func TestSum64DiffersOnChange(t *testing.T) {
	a := digest.Sum64([]byte("lilliput"))
	b := digest.Sum64([]byte("Lilliput"))
	require.NotEqual(t, a, b)
}

func TestNewStreamingMatchesSum64(t *testing.T) {
	data := []byte("streaming digest input")

	h := digest.New()
	_, err := h.Write(data)
	require.NoError(t, err)

	require.Equal(t, digest.Sum64(data), h.Sum64())
}
