package jetvalue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jetvalue/jetvalue/fragment"
)

func TestWalker_EncodeArray_Direct(t *testing.T) {
	w := &walker{cfg: defaultConfig()}
	arena := fragment.GetArena()
	defer fragment.PutArena(arena)

	err := w.encodeArray(arena, []Value{Int(1), Int(2)})
	require.NoError(t, err)
	require.Equal(t, "[1,2]", string(arena.Take().Flatten()))
}

func TestWalker_EncodeArray_Empty(t *testing.T) {
	w := &walker{cfg: defaultConfig()}
	arena := fragment.GetArena()
	defer fragment.PutArena(arena)

	err := w.encodeArray(arena, nil)
	require.NoError(t, err)
	require.Equal(t, "[]", string(arena.Take().Flatten()))
}
