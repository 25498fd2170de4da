package jetvalue

import (
	"math"
	"strconv"

	"github.com/jetvalue/jetvalue/jerr"
)

// appendInt appends the base-10 text of i to dst. Sign is only emitted
// when negative, matching the encoder's integer emitter (spec section
// 4.3) and ported from the teacher's encodeInt64 (integer.go).
func appendInt(dst []byte, i int64) []byte {
	return strconv.AppendInt(dst, i, 10)
}

// appendFloat appends the shortest-round-trip representation of f to
// dst, delegating to strconv the way spec section 1 requires ("a
// host-provided shortest-round-trip float printer"). Ported from the
// teacher's appendFloat (encode.go), which is itself adapted from the
// standard library's own encoding/json floatEncoder.
//
// NaN and +/-Infinity fail with jerr.UnrepresentableNumber: spec section
// 9 resolves this as the encoder's behavior, matching what the teacher's
// own appendFloat already does (it returns an UnsupportedValueError on
// math.IsInf/math.IsNaN) rather than the distilled source's silent
// mis-emission.
func appendFloat(dst []byte, f float64) ([]byte, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return dst, jerr.UnrepresentableNumberError(strconv.FormatFloat(f, 'g', -1, 64))
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// Clean up e-09 to e-9, matching the teacher's own cleanup of
		// strconv's zero-padded exponent.
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst, nil
}
