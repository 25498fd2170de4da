package jetvalue

import (
	"github.com/jetvalue/jetvalue/escape"
	"github.com/jetvalue/jetvalue/fragment"
	"github.com/jetvalue/jetvalue/jerr"
)

// encodeObject emits pairs as a brace-bracketed, comma-separated sequence
// of "key":value entries, in source iteration order.
//
// Grounded on the teacher's encodeStruct/encodeSortedMap/encodeUnsortedMap
// trio (encode.go): the "write '{', track a next-separator byte, write
// '}'" shape is the same; what differs is that pairs here come from an
// explicit []Pair rather than reflected struct fields or a sorted
// reflect.Map iterator, since jetvalue.Value does not reflect arbitrary
// Go types.
//
// In MapsStrict mode, every key's escaped bytes are checked against a
// visited-key set scoped to this call; a repeat fails with
// jerr.DuplicateKeyError before any of the offending pair's bytes reach
// arena. This is deliberately a design choice the teacher's own
// zapcore-style JSON encoders (see DESIGN.md) document as the opposite
// default: "the encoder doesn't deduplicate keys" is the common JSON
// library stance, and MapsStrict exists precisely to surface the
// ambiguity that naive mode accepts.
func (w *walker) encodeObject(arena *fragment.Arena, pairs []Pair) error {
	arena.AppendByte('{')

	var visited map[string]struct{}
	if w.cfg.Maps() == MapsStrict {
		visited = make(map[string]struct{}, len(pairs))
	}

	for i, pair := range pairs {
		if i > 0 {
			arena.AppendByte(',')
		}
		keyFrag, err := escape.String([]byte(pair.Key.Text()), w.cfg.Escape(), nil)
		if err != nil {
			return err
		}
		if visited != nil {
			flat := string(keyFrag.Flatten())
			if _, dup := visited[flat]; dup {
				return jerr.DuplicateKeyError(pair.Key.Text())
			}
			visited[flat] = struct{}{}
		}
		arena.AppendList(keyFrag)
		arena.AppendByte(':')
		if err := w.encodeValue(arena, pair.Val); err != nil {
			return err
		}
	}
	arena.AppendByte('}')
	return nil
}
