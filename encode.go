package jetvalue

import (
	"github.com/jetvalue/jetvalue/escape"
	"github.com/jetvalue/jetvalue/ext"
	"github.com/jetvalue/jetvalue/fragment"
	"github.com/jetvalue/jetvalue/jerr"
)

// Encode returns the JSON encoding of v as a flat textual document.
//
// Grounded on the teacher's Marshal/MarshalOpts (json.go): the same
// "build a state, walk the value, hand back the result" shape, with the
// walk now dispatching on an explicit Value.Kind rather than
// reflect.Type.
func Encode(v Value, opts ...Option) (string, error) {
	frags, err := EncodeToFragments(v, opts...)
	if err != nil {
		return "", err
	}
	return string(frags.Flatten()), nil
}

// MustEncode is like Encode but panics on error.
func MustEncode(v Value, opts ...Option) string {
	s, err := Encode(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// EncodeToFragments returns the JSON encoding of v as a fragment list
// suitable for vectored I/O (fragment.List.WriteTo), without forcing a
// contiguous buffer.
func EncodeToFragments(v Value, opts ...Option) (fragment.List, error) {
	cfg := buildConfig(opts)
	w := &walker{cfg: cfg}

	arena := fragment.GetArena()
	defer fragment.PutArena(arena)

	if err := w.encodeValue(arena, v); err != nil {
		return nil, err
	}
	out := arena.Take()
	cp := make(fragment.List, len(out))
	copy(cp, out)
	return cp, nil
}

// MustEncodeToFragments is like EncodeToFragments but panics on error.
func MustEncodeToFragments(v Value, opts ...Option) fragment.List {
	frags, err := EncodeToFragments(v, opts...)
	if err != nil {
		panic(err)
	}
	return frags
}

// walker holds the per-call state threaded through the recursive value
// walk: the active Config and the current nesting depth. It is the
// value-tree analogue of the teacher's encodeState (encoder.go), trimmed
// to what a tagged-union walker actually needs -- no firstField/
// addressable/ptrInput bookkeeping, since those exist only to track
// reflected struct/pointer encoding.
type walker struct {
	cfg   Config
	depth int
}

// encodeValue dispatches v to the emitter matching its Kind, the way
// spec section 4.3 describes. This is the encoder's recursive
// polymorphic value walker.
func (w *walker) encodeValue(arena *fragment.Arena, v Value) error {
	w.depth++
	defer func() { w.depth-- }()
	if w.depth > w.cfg.maxDepth {
		return jerr.DepthExceededError()
	}

	switch v.kind {
	case KindNull:
		arena.AppendString("null")
		return nil
	case KindBool:
		if v.b {
			arena.AppendString("true")
		} else {
			arena.AppendString("false")
		}
		return nil
	case KindInt:
		arena.AppendBytes(appendInt(nil, v.i))
		return nil
	case KindFloat:
		b, err := appendFloat(nil, v.f)
		if err != nil {
			return err
		}
		arena.AppendBytes(b)
		return nil
	case KindString:
		return w.encodeString(arena, v.s)
	case KindSymbol:
		return w.encodeString(arena, v.s)
	case KindArray:
		return w.encodeArray(arena, v.arr)
	case KindObject:
		return w.encodeObject(arena, v.obj)
	case KindExtension:
		return w.encodeExtension(arena, v.ext)
	default:
		return jerr.MessageError("unknown value kind")
	}
}

// encodeString routes a string value through the string escaper with the
// active profile and a closing quote already included by escape.String.
func (w *walker) encodeString(arena *fragment.Arena, s string) error {
	frags, err := escape.String([]byte(s), w.cfg.Escape(), nil)
	if err != nil {
		return err
	}
	arena.AppendList(frags)
	return nil
}

// encodeExtension calls the user extension hook and splices its result
// in verbatim, never re-escaping or re-validating it (spec section 4.6).
func (w *walker) encodeExtension(arena *fragment.Arena, h ext.Hook) error {
	if h == nil {
		arena.AppendString("null")
		return nil
	}
	frags, err := h.EncodeExt(w.cfg.Context())
	if err != nil {
		return jerr.ExtensionError(err)
	}
	arena.AppendList(adaptExtFragments(frags))
	return nil
}

// adaptExtFragments converts an ext.List (package ext's fragment shape)
// into a fragment.List (package fragment's shape). The two packages use
// structurally identical but distinct types so that ext does not depend
// on fragment, whose Arena pooling is an encoder-internal concern
// extensions should never reach into directly.
func adaptExtFragments(l ext.List) fragment.List {
	out := make(fragment.List, len(l))
	for i, f := range l {
		if f.Children != nil {
			out[i] = fragment.Nested(adaptExtFragments(f.Children))
		} else {
			out[i] = fragment.Bytes(f.Leaf)
		}
	}
	return out
}
