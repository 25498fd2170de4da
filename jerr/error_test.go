package jerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDuplicateKeyError(t *testing.T) {
	err := DuplicateKeyError("name")
	require.Equal(t, DuplicateKey, err.Kind)
	require.Contains(t, err.Error(), "name")
}

func TestInvalidByteError(t *testing.T) {
	err := InvalidByteError(0xFF, "bad\xffstring")
	require.Equal(t, InvalidByte, err.Kind)
	require.Contains(t, err.Error(), "0xff")
}

func TestUnrepresentableNumberError(t *testing.T) {
	err := UnrepresentableNumberError("NaN")
	require.Equal(t, UnrepresentableNumber, err.Kind)
	require.Contains(t, err.Error(), "NaN")
}

func TestDepthExceededError(t *testing.T) {
	err := DepthExceededError()
	require.Equal(t, DepthExceeded, err.Kind)
	require.NotEmpty(t, err.Error())
}

func TestExtensionError_Unwraps(t *testing.T) {
	cause := errors.New("boom")
	err := ExtensionError(cause)
	require.Equal(t, Extension, err.Kind)
	require.True(t, errors.Is(err, cause))
}

func TestMessageError(t *testing.T) {
	err := MessageError("unknown value kind")
	require.Equal(t, Message, err.Kind)
	require.Contains(t, err.Error(), "unknown value kind")
}

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		DuplicateKey:          "duplicate_key",
		InvalidByte:           "invalid_byte",
		UnrepresentableNumber: "unrepresentable_number",
		DepthExceeded:         "depth_exceeded",
		Extension:             "extension_error",
		Message:               "message",
	}
	for kind, want := range cases {
		require.Equal(t, want, kind.String())
	}
}

func TestWrap_NilPassthrough(t *testing.T) {
	require.NoError(t, Wrap(nil, "context"))
}

func TestWrap_AddsContext(t *testing.T) {
	err := Wrap(errors.New("base"), "loading config")
	require.Error(t, err)
	require.Contains(t, err.Error(), "loading config")
	require.Contains(t, err.Error(), "base")
}
