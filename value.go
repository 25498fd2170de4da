// Package jetvalue is a high-throughput JSON encoder over an explicit
// tagged value tree, rather than over reflected Go types: an encoder that
// serializes a Value into RFC 7159 text, built from byte-oriented escape
// state machines (package escape) driven by a code-generated dispatch
// table, a recursive polymorphic value walker, and a duplicate-key
// detection pass for object emission.
//
// The decoder is referenced only at its public contract boundary
// (package decode); its internals are not part of this package.
package jetvalue

import "github.com/jetvalue/jetvalue/ext"

// Kind identifies which variant of the tagged Value union is populated.
type Kind uint8

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	// KindSymbol is the atom-like symbolic value of spec section 4.3: a
	// value that logically names a string but is not itself a byte
	// string. It encodes exactly like KindString, converted to its
	// textual name first.
	KindSymbol
	KindArray
	KindObject
	KindExtension
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindExtension:
		return "extension"
	default:
		return "unknown"
	}
}

// Value is the tagged variant walked by the encoder. Only the field(s)
// relevant to Kind are meaningful; the zero Value is KindNull.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  []Pair
	ext  ext.Hook
}

// Pair is one key/value entry of an object, in source iteration order.
type Pair struct {
	Key Key
	Val Value
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value. The encoder's host integer width is
// int64; wider values must be routed through an extension.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value. NaN and +/-Infinity are valid to
// construct but fail at encode time (spec section 9's resolved open
// question: the encoder fails rather than silently emitting null).
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value. s must be valid UTF-8; invalid UTF-8 is
// only detected (and rejected) at encode time.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Symbol returns an atom-like symbolic value: name is encoded the same
// way a string is, by routing it through the string escaper, without
// implying name is itself a byte string (spec section 4.3). The Value-
// level analogue of SymbolKey, for symbols that appear outside of
// object-key position.
func Symbol(name string) Value { return Value{kind: KindSymbol, s: name} }

// Array returns an array value wrapping vs. vs is not copied.
func Array(vs []Value) Value { return Value{kind: KindArray, arr: vs} }

// Object returns an object value wrapping an ordered sequence of pairs.
// pairs is not copied, and is not deduplicated here: deduplication, when
// requested, happens during encoding (see MapsStrict).
func Object(pairs []Pair) Value { return Value{kind: KindObject, obj: pairs} }

// Extension returns a value whose JSON representation is produced by a
// user-supplied ext.Hook, spliced into the output without re-escaping or
// re-validation.
func Extension(h ext.Hook) Value { return Value{kind: KindExtension, ext: h} }

// Kind returns the value's tag.
func (v Value) Kind() Kind { return v.kind }
