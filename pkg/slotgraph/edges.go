package slotgraph

import "fmt"

// Edge describes one connection between two slots. A self-loop has From ==
// To; when it occupies a single slot FromSlot == ToSlot. ToSlot is -1 only
// for a one-sided reference, which a graph built through Connect never holds.
type Edge[K comparable] struct {
	From     K
	FromSlot int
	To       K
	ToSlot   int
}

// Connect links slot iu of node u with slot iv of node v in both directions.
//
// Checks run in this order and none of them mutates the graph:
//   - ErrKeyNotFound if either key is absent
//   - ErrEdgeOutOfRange if iu or iv is outside [0, k)
//   - ErrNodesAlreadyConnected if u and v already share an edge in any slots
//   - ErrEdgeAlreadyInUse if slot iu of u or slot iv of v is occupied
//
// Connecting a node to itself with iu == iv is the same as [Graph.Loop].
// With iu != iv the node occupies two of its own slots.
func (g *Graph[K, V]) Connect(u, v K, iu, iv int) error {
	hu, ok := g.index[u]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, u)
	}
	hv, ok := g.index[v]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, v)
	}
	if err := g.checkSlot(iu); err != nil {
		return err
	}
	if err := g.checkSlot(iv); err != nil {
		return err
	}
	if hu == hv && iu == iv {
		return g.Loop(u, iu)
	}

	nu, nv := g.cells[hu.idx].n, g.cells[hv.idx].n
	if slotOf(nu, hv) >= 0 || slotOf(nv, hu) >= 0 {
		return fmt.Errorf("%w: %v and %v", ErrNodesAlreadyConnected, u, v)
	}
	if !nu.edges[iu].empty() {
		return fmt.Errorf("%w: %v slot %d", ErrEdgeAlreadyInUse, u, iu)
	}
	if !nv.edges[iv].empty() {
		return fmt.Errorf("%w: %v slot %d", ErrEdgeAlreadyInUse, v, iv)
	}

	nu.edges[iu] = hv
	nv.edges[iv] = hu
	return nil
}

// Loop points slot i of the named node at the node itself.
// Returns ErrKeyNotFound, ErrEdgeOutOfRange, ErrNodesAlreadyConnected if the
// node already loops in any slot, or ErrEdgeAlreadyInUse if slot i is taken.
func (g *Graph[K, V]) Loop(key K, i int) error {
	h, ok := g.index[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	if err := g.checkSlot(i); err != nil {
		return err
	}
	n := g.cells[h.idx].n
	if slotOf(n, h) >= 0 {
		return fmt.Errorf("%w: %v loops already", ErrNodesAlreadyConnected, key)
	}
	if !n.edges[i].empty() {
		return fmt.Errorf("%w: %v slot %d", ErrEdgeAlreadyInUse, key, i)
	}
	n.edges[i] = h
	return nil
}

// Disconnect clears the slot pair linking u and v: the first slot of u that
// references v together with a slot of v that references u. A reference held
// by only one side does not count as a connection and yields
// ErrNodesNotConnected. Disconnect(u, u) clears every slot of u that loops
// back onto u.
func (g *Graph[K, V]) Disconnect(u, v K) error {
	hu, ok := g.index[u]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, u)
	}
	hv, ok := g.index[v]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, v)
	}
	nu, nv := g.cells[hu.idx].n, g.cells[hv.idx].n

	if hu == hv {
		if slotOf(nu, hu) < 0 {
			return fmt.Errorf("%w: %v has no loop", ErrNodesNotConnected, u)
		}
		unlink(nu, hu)
		return nil
	}

	for iu, e := range nu.edges {
		if e != hv {
			continue
		}
		if iv := slotOf(nv, hu); iv >= 0 {
			nu.edges[iu] = handle{}
			nv.edges[iv] = handle{}
			return nil
		}
	}
	return fmt.Errorf("%w: %v and %v", ErrNodesNotConnected, u, v)
}

// Edges returns every connection exactly once, in storage order of the
// lower endpoint.
func (g *Graph[K, V]) Edges() []Edge[K] {
	var edges []Edge[K]
	for idx, c := range g.cells {
		if c.n == nil {
			continue
		}
		self := handle{idx: uint32(idx), gen: c.gen}
		loops := make([]int, 0, 2)
		for i, e := range c.n.edges {
			if e.empty() {
				continue
			}
			if e == self {
				loops = append(loops, i)
				continue
			}
			peer := g.resolve(e)
			if peer == nil {
				continue
			}
			back := slotOf(peer, self)
			if back >= 0 && e.idx < self.idx {
				continue // emitted from the peer's side
			}
			edges = append(edges, Edge[K]{From: c.n.key, FromSlot: i, To: peer.key, ToSlot: back})
		}
		switch len(loops) {
		case 0:
		case 1:
			edges = append(edges, Edge[K]{From: c.n.key, FromSlot: loops[0], To: c.n.key, ToSlot: loops[0]})
		default:
			edges = append(edges, Edge[K]{From: c.n.key, FromSlot: loops[0], To: c.n.key, ToSlot: loops[1]})
		}
	}
	return edges
}

// Validate checks that every occupied slot references a live node that
// references it back. Returns nil for a consistent graph or an error wrapping
// ErrAsymmetricEdge naming the first offending slot.
func (g *Graph[K, V]) Validate() error {
	for idx, c := range g.cells {
		if c.n == nil {
			continue
		}
		self := handle{idx: uint32(idx), gen: c.gen}
		for i, e := range c.n.edges {
			if e.empty() || e == self {
				continue
			}
			peer := g.resolve(e)
			if peer == nil {
				return fmt.Errorf("%w: %v slot %d references a removed node", ErrAsymmetricEdge, c.n.key, i)
			}
			if slotOf(peer, self) < 0 {
				return fmt.Errorf("%w: %v slot %d -> %v", ErrAsymmetricEdge, c.n.key, i, peer.key)
			}
		}
	}
	return nil
}

// slotOf returns the first slot of n referencing target, or -1.
func slotOf[K comparable, V any](n *node[K, V], target handle) int {
	for i, e := range n.edges {
		if e == target {
			return i
		}
	}
	return -1
}
