package jetvalue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendInt(t *testing.T) {
	require.Equal(t, "0", string(appendInt(nil, 0)))
	require.Equal(t, "-42", string(appendInt(nil, -42)))
	require.Equal(t, "9223372036854775807", string(appendInt(nil, math.MaxInt64)))
}

func TestAppendFloat_Basic(t *testing.T) {
	b, err := appendFloat(nil, 1.5)
	require.NoError(t, err)
	require.Equal(t, "1.5", string(b))
}

func TestAppendFloat_LargeUsesExponent(t *testing.T) {
	b, err := appendFloat(nil, 1e21)
	require.NoError(t, err)
	require.Contains(t, string(b), "e+")
}

func TestAppendFloat_SmallUsesExponent(t *testing.T) {
	b, err := appendFloat(nil, 1e-7)
	require.NoError(t, err)
	require.Contains(t, string(b), "e-")
}

func TestAppendFloat_ExponentCleanup(t *testing.T) {
	b, err := appendFloat(nil, 1e-7)
	require.NoError(t, err)
	// strconv would zero-pad a single-digit exponent (e-07); the
	// encoder strips the leading zero so e-07 becomes e-7.
	require.NotContains(t, string(b), "e-07")
}

func TestAppendFloat_RejectsNaN(t *testing.T) {
	var zero float64
	_, err := appendFloat(nil, zero/zero)
	require.Error(t, err)
}

func TestAppendFloat_RejectsInfinity(t *testing.T) {
	_, err := appendFloat(nil, math.Inf(1))
	require.Error(t, err)

	_, err = appendFloat(nil, math.Inf(-1))
	require.Error(t, err)
}
