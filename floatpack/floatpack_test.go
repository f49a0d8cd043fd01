package floatpack_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lilliput-fmt/lilliput/floatpack"
)

// TestFloatWidthLadderSpecialValues verifies expand(trunc(d,8,w),w,8) is
// exact for every width 1-8 on every IEEE-754 special value: +Inf, -Inf,
// NaN, +0, -0. Inf and zero must survive exactly; NaN must remain NaN
// (not collapse to Inf) though its payload bits may change.
func TestFloatWidthLadderSpecialValues(t *testing.T) {
	specials := []float64{
		math.Inf(1),
		math.Inf(-1),
		math.NaN(),
		math.Copysign(0, 1),
		math.Copysign(0, -1),
	}

	for _, d := range specials {
		raw := math.Float64bits(d)
		for w := 1; w <= 8; w++ {
			trunc := floatpack.Trunc(raw, 8, w)
			back := floatpack.Expand(trunc, w, 8)
			got := math.Float64frombits(back)

			switch {
			case math.IsNaN(d):
				require.True(t, math.IsNaN(got), "width=%d: NaN must round-trip as NaN, got %v", w, got)
			case math.IsInf(d, 1):
				require.True(t, math.IsInf(got, 1), "width=%d", w)
			case math.IsInf(d, -1):
				require.True(t, math.IsInf(got, -1), "width=%d", w)
			default:
				// +0 / -0: value compares equal either way, but signbit must survive.
				require.Equal(t, float64(0), got, "width=%d", w)
				require.Equal(t, math.Signbit(d), math.Signbit(got), "width=%d: sign of zero must survive", w)
			}
		}
	}
}

// TestFloatWidthLadderExpandOfTruncIsIdempotentAtWidth8 verifies the
// degenerate ladder rung: trunc/expand at the host width is a no-op for
// ordinary finite values.
func TestFloatWidthLadderExpandOfTruncIsIdempotentAtWidth8(t *testing.T) {
	values := []float64{0, 1, -1, 3.5, -3.5, 1e10, -1e-10, math.Pi}
	for _, d := range values {
		raw := math.Float64bits(d)
		trunc := floatpack.Trunc(raw, 8, 8)
		back := floatpack.Expand(trunc, 8, 8)
		require.Equal(t, d, math.Float64frombits(back))
	}
}

// TestFloatWidthLadderSmallValuesSurviveHalfPrecision verifies a value
// exactly representable in half precision (width 2) round-trips exactly
// through the full ladder up to double (width 8).
func TestFloatWidthLadderSmallValuesSurviveHalfPrecision(t *testing.T) {
	d := 1.5 // exact in 1-bit significand beyond the implicit leading bit
	raw := math.Float64bits(d)

	trunc := floatpack.Trunc(raw, 8, 2)
	back := floatpack.Expand(trunc, 2, 8)
	require.Equal(t, d, math.Float64frombits(back))
}

// TestFloatWidthLadderOverflowSaturatesToInf verifies a magnitude beyond a
// narrow width's exponent range saturates to signed infinity rather than
// wrapping or panicking.
func TestFloatWidthLadderOverflowSaturatesToInf(t *testing.T) {
	d := 1e300 // far beyond minifloat (width 1) range
	raw := math.Float64bits(d)

	trunc := floatpack.Trunc(raw, 8, 1)
	back := floatpack.Expand(trunc, 1, 8)
	require.True(t, math.IsInf(math.Float64frombits(back), 1))
}

func TestPackUnpackFloat64RoundTripsAtWidth8(t *testing.T) {
	values := []float64{0, -0.0, 1, -1, 123456.789, math.MaxFloat64, -math.MaxFloat64}
	for _, d := range values {
		raw := floatpack.PackFloat64(d, 8)
		require.Equal(t, d, floatpack.UnpackFloat64(raw, 8))
	}
}

func TestSupportedWidth(t *testing.T) {
	require.False(t, floatpack.SupportedWidth(0))
	for w := 1; w <= 8; w++ {
		require.True(t, floatpack.SupportedWidth(w))
	}
	require.False(t, floatpack.SupportedWidth(9))
}
