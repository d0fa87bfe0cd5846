package slotgraph

// Clone returns a structurally identical copy of g: the same keys, values,
// default value and slot count, and the same edge topology. The copy owns
// new nodes; no handle is shared with g, and iterators of g never compare
// equal to iterators of the copy.
//
// Values are copied by assignment. If V is a pointer or contains references,
// the pointees are shared; callers needing a deep copy should replace the
// values afterwards.
//
// Cloning runs in two passes: the first creates every node with empty slots,
// the second resolves each occupied source slot to the corresponding clone by
// key. Clone runs in O(N·k) time.
func (g *Graph[K, V]) Clone() *Graph[K, V] {
	clone := New[K, V](g.slots, g.def)

	for _, c := range g.cells {
		if c.n != nil {
			clone.alloc(c.n.key, c.n.value)
		}
	}

	for _, c := range g.cells {
		if c.n == nil {
			continue
		}
		dst := clone.cells[clone.index[c.n.key].idx].n
		for i, e := range c.n.edges {
			peer := g.resolve(e)
			if peer == nil {
				continue
			}
			dst.edges[i] = clone.index[peer.key]
		}
	}
	return clone
}
