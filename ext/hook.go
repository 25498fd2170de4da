// Package ext implements the encoder's extension hook: the contract that
// lets a user-defined type contribute its own pre-rendered JSON fragment,
// spliced into the output without re-escaping or re-validation, plus the
// built-in extensions the encoder ships (date/time and decimal types).
//
// Grounded on the teacher's Marshaler/AppendMarshaler interfaces
// (json.go), generalized from "an interface satisfied by arbitrary Go
// types, discovered by reflection" to "an interface a Value explicitly
// wraps", since jetvalue.Value is a closed tagged union rather than an
// open reflected type switch.
package ext

import "context"

// Hook is implemented by types that can render themselves as a JSON
// fragment. EncodeExt receives the active configuration's context, so an
// extension can vary its output at runtime (mirroring the teacher's
// AppendMarshalerCtx/WithContext pairing in json.go and options.go).
//
// A Hook MUST return either a List whose bytes are already valid,
// complete JSON, or an error; the caller never re-escapes or
// re-validates what EncodeExt returns, which gives the extension full
// control over -- and full responsibility for -- correctness.
type Hook interface {
	EncodeExt(ctx context.Context) (List, error)
}

// Leaf is a single pre-rendered byte-slice fragment. It exists so that
// simple extensions (the built-ins in this package) don't need to depend
// on package fragment directly; jetvalue adapts a List to fragment.List
// at the point where it's spliced into the walker's output.
type Leaf []byte

// List is the fragment list an extension hook returns: each element is
// either a Leaf or a nested List, mirroring fragment.Node's shape without
// creating an import cycle between ext and the root package.
type List []Fragment

// Fragment is one element of a List.
type Fragment struct {
	Leaf     Leaf
	Children List
}

// Bytes wraps b as a single-leaf List.
func Bytes(b []byte) List { return List{{Leaf: b}} }

// Raw marks a List as already-rendered JSON bytes to splice in verbatim.
// It is the Go analogue of spec section 4.6's "pre-rendered marker":
// a Hook may return a Raw-wrapped List from another hook's EncodeExt
// result without it being walked or re-escaped again.
type Raw struct {
	Value List
}

// EncodeExt implements Hook by returning the wrapped fragments unchanged.
func (r Raw) EncodeExt(context.Context) (List, error) { return r.Value, nil }
