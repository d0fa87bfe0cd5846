package slotgraph

import "errors"

var (
	// ErrKeyNotFound is returned when an operation names a key that is not
	// present in the graph.
	ErrKeyNotFound = errors.New("key not found")

	// ErrKeyAlreadyExists is returned by [Graph.Insert] when the key is taken.
	ErrKeyAlreadyExists = errors.New("key already exists")

	// ErrEdgeOutOfRange is returned when a slot index is outside [0, k).
	ErrEdgeOutOfRange = errors.New("edge slot out of range")

	// ErrNodesAlreadyConnected is returned by [Graph.Connect] when the two
	// endpoints already share an edge, and by [Graph.Loop] when the node
	// already loops onto itself.
	ErrNodesAlreadyConnected = errors.New("nodes already connected")

	// ErrEdgeAlreadyInUse is returned by [Graph.Connect] and [Graph.Loop]
	// when a requested slot is occupied.
	ErrEdgeAlreadyInUse = errors.New("edge slot already in use")

	// ErrNodesNotConnected is returned by [Graph.Disconnect] when no mutual
	// slot pair links the two nodes.
	ErrNodesNotConnected = errors.New("nodes not connected")

	// ErrIteratorReachedEnd is returned when moving, dereferencing, or
	// removing through an iterator positioned at the end sentinel.
	ErrIteratorReachedEnd = errors.New("iterator reached end")

	// ErrStaleIterator is returned when an iterator names a node that has
	// since been removed from its graph.
	ErrStaleIterator = errors.New("iterator refers to a removed node")

	// ErrAsymmetricEdge is returned by [Graph.Validate] when a slot
	// references a peer that does not reference it back.
	ErrAsymmetricEdge = errors.New("asymmetric edge")
)
