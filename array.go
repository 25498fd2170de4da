package jetvalue

import "github.com/jetvalue/jetvalue/fragment"

// encodeArray emits elements as a bracket-bracketed, comma-separated
// sequence. An empty array emits exactly "[]".
//
// Grounded on the teacher's encodeArray/encodeSlice (encode.go): same
// "write '[', track next-separator byte, write ']'" shape, generalized
// from a reflected Go slice/array to an explicit []Value.
func (w *walker) encodeArray(arena *fragment.Arena, elems []Value) error {
	arena.AppendByte('[')
	for i, elem := range elems {
		if i > 0 {
			arena.AppendByte(',')
		}
		if err := w.encodeValue(arena, elem); err != nil {
			return err
		}
	}
	arena.AppendByte(']')
	return nil
}
