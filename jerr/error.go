// Package jerr defines the structured error taxonomy raised by an encode
// call. All errors abort the encode in progress; there is no partial
// recovery and no output is handed back to the caller.
package jerr

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Kind identifies which of the encoder's failure modes produced an
// EncodeError.
type Kind uint8

// Error kinds.
const (
	// DuplicateKey is raised in strict map mode when a key has already
	// been emitted at the current object's nesting level.
	DuplicateKey Kind = iota
	// InvalidByte is raised when a string contains a byte that does not
	// begin a valid UTF-8 sequence.
	InvalidByte
	// UnrepresentableNumber is raised for NaN and +/-Infinity floats,
	// which have no JSON syntax.
	UnrepresentableNumber
	// DepthExceeded is raised when the value tree nests deeper than the
	// encoder's configured maximum.
	DepthExceeded
	// Extension is raised when a user-supplied extension hook fails.
	Extension
	// Message is a catch-all for encode failures that don't fit the
	// other kinds.
	Message
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case DuplicateKey:
		return "duplicate_key"
	case InvalidByte:
		return "invalid_byte"
	case UnrepresentableNumber:
		return "unrepresentable_number"
	case DepthExceeded:
		return "depth_exceeded"
	case Extension:
		return "extension_error"
	case Message:
		return "message"
	default:
		return "unknown"
	}
}

// EncodeError is the single structured error type returned by an encode
// call. Only the fields listed for its Kind below are meaningful.
type EncodeError struct {
	Kind Kind

	// Key is set for DuplicateKey: the text of the repeated key, before
	// escaping.
	Key string

	// Byte and Str are set for InvalidByte: the offending byte and the
	// original string that contained it.
	Byte byte
	Str  string

	// Cause is set for Extension and wraps the hook's own error.
	Cause error
}

// Error implements the builtin error interface.
func (e *EncodeError) Error() string {
	switch e.Kind {
	case DuplicateKey:
		return fmt.Sprintf("json: duplicate key %q", e.Key)
	case InvalidByte:
		return fmt.Sprintf("json: invalid byte 0x%02x in string %q", e.Byte, e.Str)
	case UnrepresentableNumber:
		return fmt.Sprintf("json: unrepresentable number: %s", e.Str)
	case DepthExceeded:
		return "json: maximum nesting depth exceeded"
	case Extension:
		return fmt.Sprintf("json: extension error: %s", e.Cause)
	default:
		return fmt.Sprintf("json: %s", e.Str)
	}
}

// Unwrap returns the error wrapped by e, if any. This allows callers to
// use errors.Is/errors.As with an EncodeError produced by an extension
// hook failure.
func (e *EncodeError) Unwrap() error { return e.Cause }

// DuplicateKeyError returns an EncodeError of kind DuplicateKey.
func DuplicateKeyError(key string) *EncodeError {
	return &EncodeError{Kind: DuplicateKey, Key: key}
}

// InvalidByteError returns an EncodeError of kind InvalidByte.
func InvalidByteError(b byte, original string) *EncodeError {
	return &EncodeError{Kind: InvalidByte, Byte: b, Str: original}
}

// UnrepresentableNumberError returns an EncodeError of kind
// UnrepresentableNumber.
func UnrepresentableNumberError(repr string) *EncodeError {
	return &EncodeError{Kind: UnrepresentableNumber, Str: repr}
}

// DepthExceededError returns an EncodeError of kind DepthExceeded.
func DepthExceededError() *EncodeError {
	return &EncodeError{Kind: DepthExceeded}
}

// ExtensionError returns an EncodeError of kind Extension wrapping cause.
func ExtensionError(cause error) *EncodeError {
	return &EncodeError{Kind: Extension, Cause: cause}
}

// MessageError returns an EncodeError of kind Message.
func MessageError(text string) *EncodeError {
	return &EncodeError{Kind: Message, Str: text}
}

// Wrap annotates err with a stack trace using cockroachdb/errors. It is
// used at package boundaries that are not on the hot encode path (the
// CLI), never inside the recursive walker, so that the
// allocation-heavy stack capture never runs per-value.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
