package ext

import (
	"context"
	"time"
)

// Instant wraps a time.Time and encodes as double-quoted ISO-8601 text,
// one of the built-in extensions spec section 4.6 requires.
//
// Grounded on the teacher's encodeTime/appendRFC3339Time (time.go):
// formatting is delegated to time.Time.AppendFormat the same way, since
// spec section 1 explicitly delegates date/time formatting to a
// host-provided formatter rather than specifying the text itself.
type Instant struct {
	time.Time
}

// EncodeExt implements Hook.
func (i Instant) EncodeExt(context.Context) (List, error) {
	return Bytes(quoteTime(i.Time, time.RFC3339Nano)), nil
}

// DateTime is a civil (timezone-less in spirit, though backed by
// time.Time) date-time, encoded the same way as Instant but documented
// separately because it names a distinct concept in spec section 4.6.
type DateTime struct {
	time.Time
}

// EncodeExt implements Hook.
func (d DateTime) EncodeExt(context.Context) (List, error) {
	return Bytes(quoteTime(d.Time, "2006-01-02T15:04:05.999999999")), nil
}

// Date is a calendar day with no time-of-day component.
type Date struct {
	time.Time
}

// EncodeExt implements Hook.
func (d Date) EncodeExt(context.Context) (List, error) {
	return Bytes(quoteTime(d.Time, "2006-01-02")), nil
}

// TimeOfDay is a time-of-day with no calendar date component.
type TimeOfDay struct {
	time.Time
}

// EncodeExt implements Hook.
func (t TimeOfDay) EncodeExt(context.Context) (List, error) {
	return Bytes(quoteTime(t.Time, "15:04:05.999999999")), nil
}

func quoteTime(t time.Time, layout string) []byte {
	dst := make([]byte, 0, len(layout)+8)
	dst = append(dst, '"')
	dst = t.AppendFormat(dst, layout)
	dst = append(dst, '"')
	return dst
}

// Duration wraps a time.Duration. Unlike Instant/DateTime/Date/TimeOfDay,
// a duration has no single canonical JSON representation -- the teacher
// exposes DurationFmt precisely because callers disagree -- so Duration
// carries its own format selection, ported from the teacher's
// appendDuration (time.go) for the string form and strconv.Append{Int,
// Float} for the numeric forms.
type Duration struct {
	time.Duration
	Format DurationFmt
}

// DurationFmt mirrors the teacher's DurationFmt: the unit a Duration
// extension encodes itself as.
type DurationFmt int

// Duration formats. The zero DurationFmt encodes as DurationNanoseconds.
const (
	DurationString DurationFmt = iota + 1
	DurationMinutes
	DurationSeconds
	DurationMilliseconds
	DurationMicroseconds
	DurationNanoseconds // default
)

// EncodeExt implements Hook.
func (d Duration) EncodeExt(context.Context) (List, error) {
	switch d.Format {
	case DurationString:
		dst := append([]byte{'"'}, appendDuration(nil, d.Duration)...)
		dst = append(dst, '"')
		return Bytes(dst), nil
	case DurationMinutes:
		return Bytes(appendFloatLiteral(d.Duration.Minutes())), nil
	case DurationSeconds:
		return Bytes(appendFloatLiteral(d.Duration.Seconds())), nil
	case DurationMilliseconds:
		return Bytes(appendIntLiteral(int64(d.Duration) / 1e6)), nil
	case DurationMicroseconds:
		return Bytes(appendIntLiteral(int64(d.Duration) / 1e3)), nil
	default: // DurationNanoseconds
		return Bytes(appendIntLiteral(d.Duration.Nanoseconds())), nil
	}
}
