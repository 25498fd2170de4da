// Package escape implements the encoder's string-escaping state machine:
// a byte dispatch table drives a scan/chunk state machine that copies
// safe byte runs verbatim and substitutes escape sequences for the rest,
// emitting a fragment.List rather than a contiguous buffer.
//
// Grounded on the teacher's appendEscapedBytes (encode.go) and on
// ozanh-ugo/stdlib/json's string/stringBytes pair, which implement the
// same scan-then-flush idiom over a dynamic value's string contents
// instead of a reflected Go string field.
package escape

import (
	"unicode/utf8"

	"github.com/jetvalue/jetvalue/fragment"
	"github.com/jetvalue/jetvalue/jerr"
)

const hexDigits = "0123456789ABCDEF"

// String escapes b under profile and returns a fragment list holding the
// double-quoted, escaped representation of b followed by tail. Safe byte
// runs are emitted as slices referencing b directly: the caller must not
// mutate b until the returned list has been consumed (flattened or
// written out).
func String(b []byte, profile Profile, tail []byte) (fragment.List, error) {
	arena := fragment.GetArena()
	defer fragment.PutArena(arena)

	arena.AppendByte('"')
	if err := appendEscaped(arena, b, profile); err != nil {
		return nil, err
	}
	arena.AppendByte('"')
	if len(tail) > 0 {
		arena.AppendBytes(tail)
	}

	out := arena.Take()
	cp := make(fragment.List, len(out))
	copy(cp, out)
	return cp, nil
}

// appendEscaped runs the scan/chunk(len) state machine of spec section
// 4.2 over b, appending fragments to arena. skip marks the start offset
// of the pending verbatim run; i is the scan cursor.
func appendEscaped(arena *fragment.Arena, b []byte, profile Profile) error {
	tbl := tableFor(profile)
	escapeNonASCII := profile == Unicode
	escapeLineSeparators := profile == JavaScript || profile == HTMLSafe

	skip := 0
	i := 0
	n := len(b)

	for i < n {
		c := b[i]
		if c < utf8.RuneSelf {
			e := tbl[c]
			switch e.action {
			case actionChunk:
				i++
				continue
			case actionEscape:
				if skip < i {
					arena.AppendBytes(b[skip:i])
				}
				arena.AppendBytes(e.seq)
				i++
				skip = i
				continue
			case actionUnicodeEscape:
				if skip < i {
					arena.AppendBytes(b[skip:i])
				}
				appendU4(arena, uint16(c))
				i++
				skip = i
				continue
			}
		}

		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return jerr.InvalidByteError(b[i], string(b))
		}

		if escapeNonASCII {
			if skip < i {
				arena.AppendBytes(b[skip:i])
			}
			appendRune(arena, r)
			i += size
			skip = i
			continue
		}

		if escapeLineSeparators && (r == ' ' || r == ' ') {
			if skip < i {
				arena.AppendBytes(b[skip:i])
			}
			appendU4(arena, uint16(r))
			i += size
			skip = i
			continue
		}

		i += size
	}
	if skip < n {
		arena.AppendBytes(b[skip:n])
	}
	return nil
}

// appendU4 appends a \uXXXX escape for a code unit (either a full BMP
// code point or one half of a surrogate pair) using upper-case hex
// digits, per the "every byte 0x00-0x1F is \u00XX uppercase" testable
// property, applied uniformly to every \u escape the encoder emits.
func appendU4(arena *fragment.Arena, code uint16) {
	arena.AppendBytes([]byte{
		'\\', 'u',
		hexDigits[(code>>12)&0xF],
		hexDigits[(code>>8)&0xF],
		hexDigits[(code>>4)&0xF],
		hexDigits[code&0xF],
	})
}

// appendRune appends the unicode-profile escape for a single non-ASCII
// code point r, per spec section 4.2.2. Code points above U+FFFF are
// emitted as a correct UTF-16 surrogate pair: this is the one place spec
// section 9 flags a defect in the source this was distilled from (both
// halves sharing the "\uD" prefix) -- the high surrogate is seeded with
// 0xD800 and the low with 0xDC00, never the same prefix twice.
func appendRune(arena *fragment.Arena, r rune) {
	if r <= 0xFFFF {
		appendU4(arena, uint16(r))
		return
	}
	rr := r - 0x10000
	high := uint16(0xD800 + (rr >> 10))
	low := uint16(0xDC00 + (rr & 0x3FF))
	appendU4(arena, high)
	appendU4(arena, low)
}
