package jetvalue

// KeyKind identifies how a Key's text is obtained.
//
// Grounded on spec section 9's "Atom-like keys" design note: rather than
// accepting interface{} keys the way a reflection-based encoder does,
// object keys are modeled as an explicit small sum type.
type KeyKind uint8

// Key kinds.
const (
	// KeyString is an already-string key, used as-is.
	KeyString KeyKind = iota
	// KeySymbol names a string but is not itself a byte string (the
	// "atom-like symbolic value" of spec section 4.3/4.4).
	KeySymbol
	// KeyOther is coerced to text through a caller-supplied function at
	// encode time, mirroring the system's textual-conversion interface
	// spec section 4.4 calls for on non-string, non-symbol keys.
	KeyOther
)

// Key is an object key in its pre-escape form.
type Key struct {
	kind KeyKind
	text string
	disp func() string
}

// StringKey returns a key that is already string-shaped.
func StringKey(s string) Key { return Key{kind: KeyString, text: s} }

// SymbolKey returns an atom-like key whose textual name is name.
func SymbolKey(name string) Key { return Key{kind: KeySymbol, text: name} }

// OtherKey returns a key whose text is computed lazily by disp, for
// keys that are neither a string nor a symbol.
func OtherKey(disp func() string) Key { return Key{kind: KeyOther, disp: disp} }

// Kind returns the key's kind.
func (k Key) Kind() KeyKind { return k.kind }

// Text returns the key's textual form, computing it via the display
// function for KeyOther keys.
func (k Key) Text() string {
	if k.kind == KeyOther {
		return k.disp()
	}
	return k.text
}
