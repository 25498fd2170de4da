package escape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString_JSON_ControlCharsUppercaseHex(t *testing.T) {
	frags, err := String([]byte("\x01\x1f"), JSON, nil)
	require.NoError(t, err)
	require.Equal(t, "\"\\u0001\\u001F\"", string(frags.Flatten()))
}

func TestString_JSON_ShortEscapes(t *testing.T) {
	frags, err := String([]byte("a\"b\\c\nd"), JSON, nil)
	require.NoError(t, err)
	require.Equal(t, `"a\"b\\c\nd"`, string(frags.Flatten()))
}

func TestString_JSON_UTF8Preserved(t *testing.T) {
	frags, err := String([]byte("café"), JSON, nil)
	require.NoError(t, err)
	require.Equal(t, "\"café\"", string(frags.Flatten()))
}

func TestString_JSON_LineSeparatorsNotEscaped(t *testing.T) {
	frags, err := String([]byte("a\u2028b"), JSON, nil)
	require.NoError(t, err)
	require.Equal(t, "\"a\u2028b\"", string(frags.Flatten()))
}

func TestString_JavaScript_EscapesLineSeparators(t *testing.T) {
	frags, err := String([]byte("a\u2028b\u2029c"), JavaScript, nil)
	require.NoError(t, err)
	require.Equal(t, "\"a\\u2028b\\u2029c\"", string(frags.Flatten()))
}

func TestString_HTMLSafe_EscapesSlashAndLineSeparators(t *testing.T) {
	frags, err := String([]byte("</script>\u2028"), HTMLSafe, nil)
	require.NoError(t, err)
	require.Equal(t, "\"<\\/script>\\u2028\"", string(frags.Flatten()))
}

func TestString_Unicode_EscapesEveryNonASCII(t *testing.T) {
	frags, err := String([]byte("café"), Unicode, nil)
	require.NoError(t, err)
	require.Equal(t, "\"caf\\u00E9\"", string(frags.Flatten()))
}

func TestString_Unicode_SurrogatePairDistinctPrefixes(t *testing.T) {
	// U+1F600 GRINNING FACE, outside the BMP: must emit a correct
	// surrogate pair where the high and low halves do not share the
	// same \uD prefix.
	frags, err := String([]byte("\U0001F600"), Unicode, nil)
	require.NoError(t, err)
	require.Equal(t, "\"\\uD83D\\uDE00\"", string(frags.Flatten()))
}

func TestString_InvalidByte_Fails(t *testing.T) {
	_, err := String([]byte{0xFF}, JSON, nil)
	require.Error(t, err)
}

func TestString_Idempotent_DoubleEscapeStable(t *testing.T) {
	once, err := String([]byte("a\"b"), JSON, nil)
	require.NoError(t, err)
	flatOnce := once.Flatten()

	twice, err := String(flatOnce[1:len(flatOnce)-1], JSON, nil)
	require.NoError(t, err)
	require.Equal(t, `"a\\\"b"`, string(twice.Flatten()))
}

func TestString_SharesReferenceNotCopy(t *testing.T) {
	b := []byte("plain-run-no-escapes")
	frags, err := String(b, JSON, nil)
	require.NoError(t, err)

	// The middle node (index 1) should be a leaf aliasing b's backing
	// array directly, not a copy: mutating b must be visible through
	// the fragment's leaf bytes before the list is consumed.
	found := false
	for _, node := range frags {
		if len(node.Leaf) == len(b) && &node.Leaf[0] == &b[0] {
			found = true
		}
	}
	require.True(t, found, "expected a fragment leaf to alias the input slice")
}

func TestString_Tail(t *testing.T) {
	frags, err := String([]byte("x"), JSON, []byte(","))
	require.NoError(t, err)
	require.Equal(t, `"x",`, string(frags.Flatten()))
}
