package ext

import (
	"strconv"
	"time"
)

// zeroDuration, fmtInt and fmtFrac are ported verbatim in spirit from the
// teacher's time.go (itself adapted from the standard library's own
// time.Duration.String): digit-packing helpers that format into the tail
// of a fixed buffer to avoid the allocations strconv.FormatFloat/Itoa
// would otherwise cost per duration encoded.
var zeroDuration = []byte("0s")

// appendDuration appends the textual representation of d to dst.
func appendDuration(dst []byte, d time.Duration) []byte {
	var buf [32]byte

	l := len(buf)
	u := uint64(d)
	neg := d < 0
	if neg {
		u = -u
	}
	if u < uint64(time.Second) {
		var prec int
		l--
		buf[l] = 's'
		l--
		switch {
		case u == 0:
			return append(dst, zeroDuration...)
		case u < uint64(time.Microsecond):
			prec = 0
			buf[l] = 'n'
		case u < uint64(time.Millisecond):
			prec = 3
			l--
			copy(buf[l:], "µ")
		default:
			prec = 6
			buf[l] = 'm'
		}
		l, u = fmtFrac(buf[:l], u, prec)
		l = fmtInt(buf[:l], u)
	} else {
		l--
		buf[l] = 's'

		l, u = fmtFrac(buf[:l], u, 9)
		l = fmtInt(buf[:l], u%60)
		u /= 60

		if u > 0 {
			l--
			buf[l] = 'm'
			l = fmtInt(buf[:l], u%60)
			u /= 60

			if u > 0 {
				l--
				buf[l] = 'h'
				l = fmtInt(buf[:l], u)
			}
		}
	}
	if neg {
		l--
		buf[l] = '-'
	}
	return append(dst, buf[l:]...)
}

func fmtInt(buf []byte, v uint64) int {
	w := len(buf)
	if v == 0 {
		w--
		buf[w] = '0'
	} else {
		for v > 0 {
			w--
			buf[w] = byte(v%10) + '0'
			v /= 10
		}
	}
	return w
}

func fmtFrac(buf []byte, v uint64, prec int) (nw int, nv uint64) {
	w := len(buf)
	print := false
	for i := 0; i < prec; i++ {
		digit := v % 10
		print = print || digit != 0
		if print {
			w--
			buf[w] = byte(digit) + '0'
		}
		v /= 10
	}
	if print {
		w--
		buf[w] = '.'
	}
	return w, v
}

// appendFloatLiteral and appendIntLiteral back the numeric Duration
// formats (minutes/seconds are floats; milli/micro/nanoseconds are
// integers), delegating to strconv the way the teacher's
// encodeFloat64/encodeInt64 do.
func appendFloatLiteral(f float64) []byte {
	return strconv.AppendFloat(nil, f, 'g', -1, 64)
}

func appendIntLiteral(i int64) []byte {
	return strconv.AppendInt(nil, i, 10)
}
