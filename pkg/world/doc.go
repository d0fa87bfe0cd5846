// Package world models a map of named locations joined by compass exits.
//
// A [World] stores its locations in a [slotgraph.Graph] with one slot per
// [Direction]. Linking two locations fills one slot on each: walking north
// from the first reaches the second, and walking south from the second comes
// back. Exits may also use a non-opposite return direction ([World.LinkVia])
// or loop back onto the same location ([World.Loop]).
//
// # Loading
//
// Worlds are usually described in TOML and read with [Load] or [Decode]:
//
//	name  = "Kanto"
//	start = "Pallet Town"
//
//	[[location]]
//	name        = "Pallet Town"
//	description = "Shades of your journey await!"
//
//	[[location]]
//	name = "Route 1"
//
//	[[path]]
//	from      = "Pallet Town"
//	direction = "north"
//	to        = "Route 1"
//
// # Navigation
//
// [World.Walk] follows a list of directions and returns the route taken.
// [World.Cursor] exposes a read-only slotgraph iterator for step-by-step
// navigation such as an interactive explorer.
//
// # Errors
//
// Errors are [errors.Error] values carrying codes such as
// LOCATION_NOT_FOUND, ROUTE_TAKEN and DEAD_END. The underlying slotgraph
// sentinel is kept as the cause, so errors.Is works against either.
//
// [errors.Error]: github.com/matzehuels/waypoint/pkg/errors
package world
