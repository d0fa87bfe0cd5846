// Package slotgraph provides a keyed graph container where every node has a
// fixed number of edge slots.
//
// # Overview
//
// A [Graph] owns a set of nodes addressed by a comparable key. Each node
// carries a value and exactly k slots (k is fixed when the graph is created
// with [New]). A slot is either empty or references exactly one neighbor,
// possibly the node itself. Connections are mutual: [Graph.Connect] fills
// one slot on each endpoint, [Graph.Disconnect] clears both.
//
// The container is the backing store for location maps where slots stand for
// compass directions, but it knows nothing about that domain:
//
//	g := slotgraph.New[string, int](2, 0)
//	_ = g.Insert("a", 1)
//	_ = g.Insert("b", 2)
//	_ = g.Connect("a", "b", 0, 1)
//
//	it, _ := g.BeginAt("a")
//	it.Move(0)
//	key, _ := it.Key() // "b"
//
// # Iterators
//
// [Iterator] and [ReadIterator] are cursors naming either a node or the end
// of the graph. [Iterator.Move] follows one slot; following an empty slot
// lands on the end sentinel returned by [Graph.End]. Both kinds compare with
// Equal, including across kinds. Only an [Iterator] can be handed to
// [Graph.RemoveAt] or used to modify a value in place.
//
// # Node Identity
//
// Nodes live in an arena and are referenced by generation-checked handles.
// Growing the graph never invalidates a slot or an iterator. Removing a node
// retires its handle: iterators that still name it report [ErrStaleIterator]
// instead of observing a recycled node.
//
// # Errors
//
// Every failing operation returns one of the package's sentinel errors
// (wrapped with the offending key or slot) and leaves the graph exactly as it
// was before the call. Use [errors.Is] to branch on the kind.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Any structural change
// (Insert, Remove, Connect, Disconnect, Clear) must not overlap with readers,
// and iterators naming a removed node must not be reused.
package slotgraph
