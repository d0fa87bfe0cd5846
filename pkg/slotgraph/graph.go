package slotgraph

import (
	"fmt"
	"iter"
)

// handle addresses a node in the arena. The zero handle marks an empty slot
// and the end sentinel; live handles always carry a non-zero generation.
type handle struct {
	idx uint32
	gen uint32
}

func (h handle) empty() bool { return h.gen == 0 }

// node is a single keyed unit of storage. edges has exactly Graph.slots entries.
type node[K comparable, V any] struct {
	key   K
	value V
	edges []handle
}

// cell is one arena position. n is nil while the position is free.
type cell[K comparable, V any] struct {
	gen uint32
	n   *node[K, V]
}

// Graph is a keyed container of nodes with a fixed number of edge slots each.
// Nodes are created by [Graph.Insert] (or implicitly by [Graph.GetOrInsert])
// and wired together with [Graph.Connect] and [Graph.Loop].
//
// The zero value is not usable - use [New] to create a Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph[K comparable, V any] struct {
	slots int
	def   V
	cells []cell[K, V]
	free  []uint32
	index map[K]handle
}

// New creates an empty graph whose nodes have exactly slots edge slots.
// def is the value given to nodes created without an explicit value.
// New panics if slots is less than one.
func New[K comparable, V any](slots int, def V) *Graph[K, V] {
	if slots < 1 {
		panic(fmt.Sprintf("slotgraph: slots must be positive, got %d", slots))
	}
	return &Graph[K, V]{
		slots: slots,
		def:   def,
		index: make(map[K]handle),
	}
}

// Slots returns the number of edge slots per node (the degree bound).
func (g *Graph[K, V]) Slots() int { return g.slots }

// Default returns the value assigned to nodes inserted without one.
func (g *Graph[K, V]) Default() V { return g.def }

// Len returns the number of nodes in the graph.
func (g *Graph[K, V]) Len() int { return len(g.index) }

// Contains reports whether a node with the given key exists.
func (g *Graph[K, V]) Contains(key K) bool {
	_, ok := g.index[key]
	return ok
}

// Insert creates a node with the given key and value and k empty slots.
// Returns ErrKeyAlreadyExists if the key is taken; the graph is unchanged.
func (g *Graph[K, V]) Insert(key K, value V) error {
	if _, exists := g.index[key]; exists {
		return fmt.Errorf("%w: %v", ErrKeyAlreadyExists, key)
	}
	g.alloc(key, value)
	return nil
}

// InsertDefault is Insert with the graph's default value.
func (g *Graph[K, V]) InsertDefault(key K) error {
	return g.Insert(key, g.def)
}

// Get returns a copy of the value stored under key.
// Unlike [Graph.GetOrInsert] it never creates a node: an absent key yields
// ErrKeyNotFound.
func (g *Graph[K, V]) Get(key K) (V, error) {
	n, err := g.lookup(key)
	if err != nil {
		var zero V
		return zero, err
	}
	return n.value, nil
}

// GetOrInsert returns a pointer to the value stored under key, inserting a
// node with the default value first if the key is absent. The pointer stays
// valid until the node is removed; repeated calls for the same key return the
// same pointer.
func (g *Graph[K, V]) GetOrInsert(key K) *V {
	if h, ok := g.index[key]; ok {
		return &g.cells[h.idx].n.value
	}
	h := g.alloc(key, g.def)
	return &g.cells[h.idx].n.value
}

// Remove disconnects every occupied slot of the named node from its peer
// and then deletes the node. Returns ErrKeyNotFound if the key is absent.
func (g *Graph[K, V]) Remove(key K) error {
	h, ok := g.index[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	g.release(h)
	return nil
}

// RemoveAt removes the node the iterator points to. Returns
// ErrIteratorReachedEnd for the end sentinel and ErrStaleIterator if the node
// is already gone. Only mutable iterators are accepted.
func (g *Graph[K, V]) RemoveAt(it Iterator[K, V]) error {
	if it.g != g {
		return fmt.Errorf("%w: iterator belongs to another graph", ErrKeyNotFound)
	}
	if _, err := it.node(); err != nil {
		return err
	}
	g.release(it.at)
	return nil
}

// Clear removes every node. The graph keeps its slot count and default value
// and remains usable. Iterators obtained before Clear become stale.
func (g *Graph[K, V]) Clear() {
	for i := range g.cells {
		if g.cells[i].n == nil {
			continue
		}
		g.cells[i].n = nil
		g.cells[i].gen = nextGen(g.cells[i].gen)
		g.free = append(g.free, uint32(i))
	}
	clear(g.index)
}

// Keys returns the keys of all nodes in storage order. The order is stable
// while the graph is not modified but is otherwise unspecified.
func (g *Graph[K, V]) Keys() []K {
	keys := make([]K, 0, len(g.index))
	for _, c := range g.cells {
		if c.n != nil {
			keys = append(keys, c.n.key)
		}
	}
	return keys
}

// All iterates over every key and value in storage order.
// The graph must not be modified during iteration.
func (g *Graph[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, c := range g.cells {
			if c.n == nil {
				continue
			}
			if !yield(c.n.key, c.n.value) {
				return
			}
		}
	}
}

// Neighbor returns the key referenced by the given slot of key.
// The boolean is false when the slot is empty.
func (g *Graph[K, V]) Neighbor(key K, slot int) (K, bool, error) {
	var zero K
	n, err := g.lookup(key)
	if err != nil {
		return zero, false, err
	}
	if err := g.checkSlot(slot); err != nil {
		return zero, false, err
	}
	peer := g.resolve(n.edges[slot])
	if peer == nil {
		return zero, false, nil
	}
	return peer.key, true, nil
}

// Degree returns the number of occupied slots on the named node.
func (g *Graph[K, V]) Degree(key K) (int, error) {
	n, err := g.lookup(key)
	if err != nil {
		return 0, err
	}
	d := 0
	for _, e := range n.edges {
		if !e.empty() {
			d++
		}
	}
	return d, nil
}

func (g *Graph[K, V]) lookup(key K) (*node[K, V], error) {
	h, ok := g.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return g.cells[h.idx].n, nil
}

// resolve returns the node addressed by h, or nil if h is empty or retired.
func (g *Graph[K, V]) resolve(h handle) *node[K, V] {
	if h.empty() || int(h.idx) >= len(g.cells) {
		return nil
	}
	c := g.cells[h.idx]
	if c.gen != h.gen {
		return nil
	}
	return c.n
}

func (g *Graph[K, V]) checkSlot(slot int) error {
	if slot < 0 || slot >= g.slots {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrEdgeOutOfRange, slot, g.slots)
	}
	return nil
}

func (g *Graph[K, V]) alloc(key K, value V) handle {
	n := &node[K, V]{key: key, value: value, edges: make([]handle, g.slots)}
	var idx uint32
	if last := len(g.free) - 1; last >= 0 {
		idx = g.free[last]
		g.free = g.free[:last]
	} else {
		idx = uint32(len(g.cells))
		g.cells = append(g.cells, cell[K, V]{gen: 1})
	}
	g.cells[idx].n = n
	h := handle{idx: idx, gen: g.cells[idx].gen}
	g.index[key] = h
	return h
}

// release unwires every slot of the node at h from its peers and retires h.
func (g *Graph[K, V]) release(h handle) {
	n := g.cells[h.idx].n
	for i, e := range n.edges {
		if peer := g.resolve(e); peer != nil && peer != n {
			unlink(peer, h)
		}
		n.edges[i] = handle{}
	}
	delete(g.index, n.key)
	g.cells[h.idx].n = nil
	g.cells[h.idx].gen = nextGen(g.cells[h.idx].gen)
	g.free = append(g.free, h.idx)
}

// unlink clears every slot of n that references target.
func unlink[K comparable, V any](n *node[K, V], target handle) {
	for i, e := range n.edges {
		if e == target {
			n.edges[i] = handle{}
		}
	}
}

func nextGen(gen uint32) uint32 {
	gen++
	if gen == 0 {
		gen = 1
	}
	return gen
}
