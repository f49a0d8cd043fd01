package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lilliput-fmt/lilliput/value"
)

// TestNullUnitDistinct verifies Null and Unit never compare equal, as a
// concrete instance of the tagged union's kind-first equality rule.
func TestNullUnitDistinct(t *testing.T) {
	require.False(t, value.Null().Equal(value.Unit()))
	require.False(t, value.Unit().Equal(value.Null()))
	require.True(t, value.Null().Equal(value.Null()))
	require.True(t, value.Unit().Equal(value.Unit()))
}

// TestSignedUnsignedZeroDistinct verifies a signed Integer(0) never compares
// equal to an unsigned Integer(0), even though both carry numeric zero.
func TestSignedUnsignedZeroDistinct(t *testing.T) {
	signedZero := value.Int(0)
	unsignedZero := value.Uint(0)

	require.False(t, signedZero.Equal(unsignedZero))
	require.False(t, unsignedZero.Equal(signedZero))
	require.True(t, signedZero.Equal(value.Int(0)))
	require.True(t, unsignedZero.Equal(value.Uint(0)))

	require.True(t, signedZero.IsSigned())
	require.False(t, unsignedZero.IsSigned())
}

func TestSignedUnsignedNonzeroDistinct(t *testing.T) {
	require.False(t, value.Int(5).Equal(value.Uint(5)))
}

func TestKindAccessors(t *testing.T) {
	require.Equal(t, value.KindBool, value.Bool(true).Kind())
	require.Equal(t, value.KindInteger, value.Int(1).Kind())
	require.Equal(t, value.KindFloat, value.Float(1.5).Kind())
	require.Equal(t, value.KindString, value.String("x").Kind())
	require.Equal(t, value.KindBytes, value.Bytes([]byte{1}).Kind())
	require.Equal(t, value.KindSequence, value.Sequence(nil).Kind())
	require.Equal(t, value.KindMap, value.Map(nil).Kind())

	b, ok := value.Bool(true).AsBool()
	require.True(t, ok)
	require.True(t, b)

	_, ok = value.Bool(true).AsInt()
	require.False(t, ok)
}

func TestFloatEqualityMatchesFloat64Semantics(t *testing.T) {
	require.False(t, value.Float(math.NaN()).Equal(value.Float(math.NaN())))
	require.True(t, value.Float(0).Equal(value.Float(0)))
	require.True(t, value.Float(math.Inf(1)).Equal(value.Float(math.Inf(1))))
	require.False(t, value.Float(math.Inf(1)).Equal(value.Float(math.Inf(-1))))
}

func TestSequenceAndMapEqual(t *testing.T) {
	a := value.Sequence([]value.Value{value.Int(1), value.String("x")})
	b := value.Sequence([]value.Value{value.Int(1), value.String("x")})
	c := value.Sequence([]value.Value{value.Int(1), value.String("y")})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))

	m1 := value.Map([]value.Pair{{Key: value.String("k"), Val: value.Int(1)}})
	m2 := value.Map([]value.Pair{{Key: value.String("k"), Val: value.Int(1)}})
	m3 := value.Map([]value.Pair{{Key: value.String("k"), Val: value.Int(2)}})

	require.True(t, m1.Equal(m2))
	require.False(t, m1.Equal(m3))
}

func TestBytesEqual(t *testing.T) {
	require.True(t, value.Bytes([]byte{1, 2, 3}).Equal(value.Bytes([]byte{1, 2, 3})))
	require.False(t, value.Bytes([]byte{1, 2, 3}).Equal(value.Bytes([]byte{1, 2, 4})))
	require.False(t, value.Bytes([]byte{1, 2}).Equal(value.Bytes([]byte{1, 2, 3})))
}

func TestStringDebugForm(t *testing.T) {
	require.Equal(t, "Null", value.Null().String())
	require.Equal(t, "Unit", value.Unit().String())
	require.Equal(t, "Integer(signed 5)", value.Int(5).String())
	require.Equal(t, "Integer(unsigned 5)", value.Uint(5).String())
}
