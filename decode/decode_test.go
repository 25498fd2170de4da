package decode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jetvalue/jetvalue"
)

func TestDecode_Scalars(t *testing.T) {
	v, err := Decode([]byte("null"))
	require.NoError(t, err)
	require.Equal(t, jetvalue.KindNull, v.Kind())

	v, err = Decode([]byte("true"))
	require.NoError(t, err)
	require.Equal(t, jetvalue.KindBool, v.Kind())

	v, err = Decode([]byte("42"))
	require.NoError(t, err)
	require.Equal(t, jetvalue.KindInt, v.Kind())

	v, err = Decode([]byte("4.5"))
	require.NoError(t, err)
	require.Equal(t, jetvalue.KindFloat, v.Kind())

	v, err = Decode([]byte(`"hi"`))
	require.NoError(t, err)
	require.Equal(t, jetvalue.KindString, v.Kind())
}

func TestDecode_ObjectAndArray(t *testing.T) {
	v, err := Decode([]byte(`{"a":[1,2,3],"b":null}`))
	require.NoError(t, err)
	require.Equal(t, jetvalue.KindObject, v.Kind())
}

func TestDecode_StringEscapes(t *testing.T) {
	v, err := Decode([]byte(`"a\nb\tc\"d"`))
	require.NoError(t, err)
	got, err := jetvalue.Encode(v)
	require.NoError(t, err)
	require.Equal(t, `"a\nb\tc\"d"`, got)
}

func TestDecode_UnicodeEscape(t *testing.T) {
	v, err := Decode([]byte("\"\\u00e9\""))
	require.NoError(t, err)
	got, err := jetvalue.Encode(v)
	require.NoError(t, err)
	require.Equal(t, "\"é\"", got)
}

func TestDecode_SurrogatePair(t *testing.T) {
	v, err := Decode([]byte("\"\\ud83d\\ude00\""))
	require.NoError(t, err)
	got, err := jetvalue.Encode(v)
	require.NoError(t, err)
	require.Equal(t, "\"\U0001F600\"", got)
}

func TestDecode_TrailingDataFails(t *testing.T) {
	_, err := Decode([]byte(`1 2`))
	require.Error(t, err)
}

func TestDecode_UnterminatedObjectFails(t *testing.T) {
	_, err := Decode([]byte(`{"a":1`))
	require.Error(t, err)
}

func TestDecode_WithKeysSymbols(t *testing.T) {
	v, err := Decode([]byte(`{"name":1}`), WithKeys(KeysSymbols))
	require.NoError(t, err)
	require.Equal(t, jetvalue.KindObject, v.Kind())
}

func TestMustDecode_PanicsOnError(t *testing.T) {
	require.Panics(t, func() {
		MustDecode([]byte(`{bad`))
	})
}
