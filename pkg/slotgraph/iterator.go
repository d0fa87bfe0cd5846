package slotgraph

import "fmt"

// cursor is the position shared by both iterator kinds. The zero handle is
// the end sentinel of g.
type cursor[K comparable, V any] struct {
	g  *Graph[K, V]
	at handle
}

// Position is implemented by [Iterator] and [ReadIterator] so that either
// kind can be compared with the other.
type Position[K comparable, V any] interface {
	position() cursor[K, V]
}

// Iterator is a mutable cursor over a [Graph]. It names either a node or the
// end sentinel. Iterators are small values; copying one yields an independent
// cursor at the same position.
type Iterator[K comparable, V any] struct {
	cursor[K, V]
}

// ReadIterator is the read-only counterpart of [Iterator]. It moves and
// compares the same way but cannot modify values or remove nodes.
type ReadIterator[K comparable, V any] struct {
	cursor[K, V]
}

// BeginAt returns an iterator positioned at the node with the given key.
// Returns ErrKeyNotFound if the key is absent.
func (g *Graph[K, V]) BeginAt(key K) (Iterator[K, V], error) {
	h, ok := g.index[key]
	if !ok {
		return Iterator[K, V]{}, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return Iterator[K, V]{cursor[K, V]{g: g, at: h}}, nil
}

// ReadAt is the read-only form of [Graph.BeginAt].
func (g *Graph[K, V]) ReadAt(key K) (ReadIterator[K, V], error) {
	it, err := g.BeginAt(key)
	if err != nil {
		return ReadIterator[K, V]{}, err
	}
	return it.ReadOnly(), nil
}

// End returns the end sentinel of g. All end sentinels of the same graph
// compare equal.
func (g *Graph[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{cursor[K, V]{g: g}}
}

// ReadEnd is the read-only form of [Graph.End].
func (g *Graph[K, V]) ReadEnd() ReadIterator[K, V] {
	return ReadIterator[K, V]{cursor[K, V]{g: g}}
}

// Move follows slot i from the current node. An empty slot moves the
// iterator to the end sentinel. The slot index is checked first, so an
// out-of-range slot yields ErrEdgeOutOfRange even at the end; otherwise
// moving from the end yields ErrIteratorReachedEnd. On error the iterator
// does not move. Move returns it to allow chaining.
//
// A zero Iterator belongs to no graph and so has no slot count: a negative
// slot yields ErrEdgeOutOfRange and any other slot ErrIteratorReachedEnd.
func (it *Iterator[K, V]) Move(i int) (*Iterator[K, V], error) {
	if err := it.move(i); err != nil {
		return it, err
	}
	return it, nil
}

// Key returns the key of the current node.
func (it Iterator[K, V]) Key() (K, error) { return it.key() }

// Value returns a copy of the current node's value.
func (it Iterator[K, V]) Value() (V, error) { return it.value() }

// ValueRef returns a pointer to the current node's value for in-place
// modification.
func (it Iterator[K, V]) ValueRef() (*V, error) {
	n, err := it.node()
	if err != nil {
		return nil, err
	}
	return &n.value, nil
}

// AtEnd reports whether the iterator is the end sentinel.
func (it Iterator[K, V]) AtEnd() bool { return it.at.empty() }

// Equal reports whether both iterators name the same node of the same graph,
// or are both the end sentinel of the same graph. A nil other is never equal.
func (it Iterator[K, V]) Equal(other Position[K, V]) bool {
	return other != nil && it.cursor == other.position()
}

// ReadOnly returns a read-only iterator at the same position.
func (it Iterator[K, V]) ReadOnly() ReadIterator[K, V] {
	return ReadIterator[K, V]{it.cursor}
}

// Move follows slot i from the current node. See [Iterator.Move].
func (it *ReadIterator[K, V]) Move(i int) (*ReadIterator[K, V], error) {
	if err := it.move(i); err != nil {
		return it, err
	}
	return it, nil
}

// Key returns the key of the current node.
func (it ReadIterator[K, V]) Key() (K, error) { return it.key() }

// Value returns a copy of the current node's value.
func (it ReadIterator[K, V]) Value() (V, error) { return it.value() }

// AtEnd reports whether the iterator is the end sentinel.
func (it ReadIterator[K, V]) AtEnd() bool { return it.at.empty() }

// Equal reports whether both iterators name the same node of the same graph,
// or are both the end sentinel of the same graph. A nil other is never equal.
func (it ReadIterator[K, V]) Equal(other Position[K, V]) bool {
	return other != nil && it.cursor == other.position()
}

func (c cursor[K, V]) position() cursor[K, V] { return c }

func (c cursor[K, V]) node() (*node[K, V], error) {
	if c.at.empty() {
		return nil, ErrIteratorReachedEnd
	}
	n := c.g.resolve(c.at)
	if n == nil {
		return nil, ErrStaleIterator
	}
	return n, nil
}

func (c cursor[K, V]) key() (K, error) {
	n, err := c.node()
	if err != nil {
		var zero K
		return zero, err
	}
	return n.key, nil
}

func (c cursor[K, V]) value() (V, error) {
	n, err := c.node()
	if err != nil {
		var zero V
		return zero, err
	}
	return n.value, nil
}

func (c *cursor[K, V]) move(i int) error {
	if c.g == nil {
		if i < 0 {
			return fmt.Errorf("%w: %d is negative", ErrEdgeOutOfRange, i)
		}
		return ErrIteratorReachedEnd
	}
	if err := c.g.checkSlot(i); err != nil {
		return err
	}
	n, err := c.node()
	if err != nil {
		return err
	}
	c.at = n.edges[i]
	return nil
}
