// Package fragment implements the encoder's output representation: a
// recursively nested, append-only sequence of byte-slice leaves ("a rope")
// that the encoder never flattens into a single contiguous buffer unless
// the caller explicitly asks for one.
package fragment

import (
	"io"
	"sync"
)

// Writer groups the subset of the standard streaming interfaces that a
// flattened fragment List can be drained into with no further copying.
//
// This mirrors the teacher's encoder.Writer: a value encoder doesn't need
// the full io.Writer surface, just byte/string/slice writes.
type Writer interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
}

// List is an ordered sequence of fragments. A fragment is either a byte
// slice leaf (a verbatim run copied from, or a reference into, the input)
// or a nested List. Concatenating every leaf left-to-right yields the
// final JSON document.
type List []Node

// Node is one element of a List: exactly one of Leaf or Children is set.
type Node struct {
	Leaf     []byte
	Children List
}

// Bytes returns a leaf node wrapping b. b is never copied: callers that
// pass a slice aliasing caller-owned memory are relying on the encoder's
// contract that the fragment list is read, not retained, past the
// top-level call's return.
func Bytes(b []byte) Node { return Node{Leaf: b} }

// Str returns a leaf node wrapping the bytes of s.
func Str(s string) Node { return Node{Leaf: []byte(s)} }

// Nested returns a node wrapping an already-built List, so that a
// sub-tree (e.g. an extension hook's own fragment list) can be spliced in
// without walking it again.
func Nested(l List) Node { return Node{Children: l} }

// Len returns the total number of bytes the list would occupy once
// flattened.
func (l List) Len() int {
	n := 0
	for _, node := range l {
		if node.Children != nil {
			n += node.Children.Len()
		} else {
			n += len(node.Leaf)
		}
	}
	return n
}

// Flatten concatenates every leaf of l, in order, into a single []byte.
// This is the only place the encoder is allowed to force a contiguous
// buffer; callers that only need vectored I/O should use WriteTo instead.
func (l List) Flatten() []byte {
	buf := make([]byte, 0, l.Len())
	return l.appendTo(buf)
}

func (l List) appendTo(dst []byte) []byte {
	for _, node := range l {
		if node.Children != nil {
			dst = node.Children.appendTo(dst)
		} else {
			dst = append(dst, node.Leaf...)
		}
	}
	return dst
}

// WriteTo drains l into w leaf by leaf, without ever allocating a
// contiguous copy of the whole document. It satisfies io.WriterTo.
func (l List) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, node := range l {
		if node.Children != nil {
			m, err := node.Children.WriteTo(w)
			n += m
			if err != nil {
				return n, err
			}
			continue
		}
		m, err := w.Write(node.Leaf)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Arena is a reusable append-only builder for a List. Encoders append
// leaves and nested lists to it during one top-level call and hand back
// the resulting List; the Arena itself is returned to a pool afterwards.
//
// Grounded on the teacher's buffer.go: a single pooled accumulator reset
// between calls, generalized from a flat []byte to a List of fragments
// since the encoder must not force a contiguous buffer (spec requirement).
type Arena struct {
	nodes List
}

var arenaPool sync.Pool // *Arena

// GetArena returns an empty Arena from the pool, or allocates a new one.
func GetArena() *Arena {
	if v := arenaPool.Get(); v != nil {
		a := v.(*Arena)
		a.nodes = a.nodes[:0]
		return a
	}
	return &Arena{nodes: make(List, 0, 32)}
}

// PutArena returns a to the pool. Callers must not use a, or any List
// previously returned by a.Take, after calling PutArena -- Take copies
// the node slice header out, but the Arena's backing array is reused by
// the next GetArena, so a List handed to a caller that outlives the pool
// round-trip must be copied by that caller if it needs to survive.
func PutArena(a *Arena) {
	arenaPool.Put(a)
}

// AppendBytes appends a byte-slice leaf to the arena.
func (a *Arena) AppendBytes(b []byte) { a.nodes = append(a.nodes, Bytes(b)) }

// AppendString appends a leaf wrapping the bytes of s.
func (a *Arena) AppendString(s string) { a.nodes = append(a.nodes, Str(s)) }

// AppendByte appends a single-byte leaf.
func (a *Arena) AppendByte(b byte) { a.nodes = append(a.nodes, Bytes([]byte{b})) }

// AppendList splices an already-built List in as a nested node.
func (a *Arena) AppendList(l List) { a.nodes = append(a.nodes, Nested(l)) }

// Take returns the List built so far. The returned List aliases the
// Arena's backing array; callers that need it to outlive a PutArena call
// must copy it first (Flatten does this implicitly by copying bytes, but
// not the Node slice structure itself for nested lists appended via
// AppendList from another arena).
func (a *Arena) Take() List { return a.nodes }
