package ext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func flattenOne(t *testing.T, l List) string {
	t.Helper()
	var buf []byte
	for _, f := range l {
		buf = append(buf, f.Leaf...)
	}
	return string(buf)
}

func TestInstant_EncodesRFC3339Nano(t *testing.T) {
	ts := time.Date(2024, 3, 2, 10, 30, 0, 0, time.UTC)
	frags, err := Instant{ts}.EncodeExt(context.Background())
	require.NoError(t, err)
	require.Equal(t, `"2024-03-02T10:30:00Z"`, flattenOne(t, frags))
}

func TestDate_EncodesCalendarDay(t *testing.T) {
	ts := time.Date(2024, 3, 2, 10, 30, 0, 0, time.UTC)
	frags, err := Date{ts}.EncodeExt(context.Background())
	require.NoError(t, err)
	require.Equal(t, `"2024-03-02"`, flattenOne(t, frags))
}

func TestDuration_StringFormat(t *testing.T) {
	d := Duration{Duration: 90 * time.Second, Format: DurationString}
	frags, err := d.EncodeExt(context.Background())
	require.NoError(t, err)
	require.Equal(t, `"1m30s"`, flattenOne(t, frags))
}

func TestDuration_ZeroIsZeroSeconds(t *testing.T) {
	d := Duration{Duration: 0, Format: DurationString}
	frags, err := d.EncodeExt(context.Background())
	require.NoError(t, err)
	require.Equal(t, `"0s"`, flattenOne(t, frags))
}

func TestDuration_MillisecondsFormat(t *testing.T) {
	d := Duration{Duration: 1500 * time.Millisecond, Format: DurationMilliseconds}
	frags, err := d.EncodeExt(context.Background())
	require.NoError(t, err)
	require.Equal(t, `1500`, flattenOne(t, frags))
}

func TestDuration_NanosecondsDefault(t *testing.T) {
	d := Duration{Duration: 42}
	frags, err := d.EncodeExt(context.Background())
	require.NoError(t, err)
	require.Equal(t, `42`, flattenOne(t, frags))
}

func TestDecimal_QuotesTextVerbatim(t *testing.T) {
	frags, err := Decimal{Text: "19.99"}.EncodeExt(context.Background())
	require.NoError(t, err)
	require.Equal(t, `"19.99"`, flattenOne(t, frags))
}

func TestRaw_PassesThroughUnchanged(t *testing.T) {
	inner := Bytes([]byte(`{"a":1}`))
	r := Raw{Value: inner}
	frags, err := r.EncodeExt(context.Background())
	require.NoError(t, err)
	require.Equal(t, inner, frags)
}
