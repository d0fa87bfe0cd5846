package world

import (
	stderrors "errors"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/waypoint/pkg/errors"
	"github.com/matzehuels/waypoint/pkg/slotgraph"
)

// Location is the payload stored for each place on the map.
type Location struct {
	Name        string
	Description string
	Region      string
	Items       []string
}

// Exit is an occupied direction of a location.
type Exit struct {
	Direction Direction
	To        string
}

// Path is a connection between two locations. Back is the direction that
// leads from To to From; for a loop From == To.
type Path struct {
	From string
	Dir  Direction
	To   string
	Back Direction
}

// Stats summarizes the shape of a world.
type Stats struct {
	Locations int
	Paths     int
	Loops     int
	DeadEnds  int // locations without any exit
}

// World is a map of locations joined by compass exits.
// The zero value is not usable - use [New], [Load] or [Decode].
// World is not safe for concurrent use.
type World struct {
	name   string
	start  string
	graph  *slotgraph.Graph[string, *Location]
	logger *log.Logger
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for debug output. By default a World
// discards its logs.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates an empty world.
func New(name string, opts ...Option) *World {
	w := &World{
		name:   name,
		graph:  slotgraph.New[string, *Location](NumDirections, nil),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Name returns the world's name.
func (w *World) Name() string { return w.name }

// Start returns the name of the starting location, or "" if unset.
func (w *World) Start() string { return w.start }

// SetStart marks an existing location as the starting point.
func (w *World) SetStart(name string) error {
	if !w.graph.Contains(name) {
		return errors.New(errors.ErrCodeLocationNotFound, "start location %q does not exist", name)
	}
	w.start = name
	return nil
}

// Len returns the number of locations.
func (w *World) Len() int { return w.graph.Len() }

// Has reports whether a location with the given name exists.
func (w *World) Has(name string) bool { return w.graph.Contains(name) }

// Names returns all location names sorted alphabetically.
func (w *World) Names() []string {
	names := w.graph.Keys()
	slices.Sort(names)
	return names
}

// AddLocation stores a copy of loc under loc.Name.
func (w *World) AddLocation(loc Location) error {
	if err := errors.ValidateLocationName(loc.Name); err != nil {
		return err
	}
	loc.Items = slices.Clone(loc.Items)
	if err := w.graph.Insert(loc.Name, &loc); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "location %q already exists", loc.Name)
	}
	w.logger.Debug("added location", "name", loc.Name)
	return nil
}

// RemoveLocation deletes a location and every path touching it.
// If it was the start location the world no longer has a start.
func (w *World) RemoveLocation(name string) error {
	if err := w.graph.Remove(name); err != nil {
		return notFound(err, name)
	}
	if w.start == name {
		w.start = ""
	}
	w.logger.Debug("removed location", "name", name)
	return nil
}

// Location returns the stored location. Modifications through the returned
// pointer are visible to the world. Name is the lookup key and must not be
// changed; a renamed location is reported by Validate.
func (w *World) Location(name string) (*Location, error) {
	loc, err := w.graph.Get(name)
	if err != nil {
		return nil, notFound(err, name)
	}
	return loc, nil
}

// Link connects the dir exit of from with the opposite exit of to.
func (w *World) Link(from string, dir Direction, to string) error {
	return w.LinkVia(from, dir, to, dir.Opposite())
}

// LinkVia connects the dir exit of from with the back exit of to. Linking a
// location to itself with dir == back creates a loop.
func (w *World) LinkVia(from string, dir Direction, to string, back Direction) error {
	if !dir.Valid() || !back.Valid() {
		return errors.New(errors.ErrCodeInvalidDirection, "invalid direction in path %s -> %s", from, to)
	}
	if err := w.graph.Connect(from, to, int(dir), int(back)); err != nil {
		return w.linkError(err, from, dir, to, back)
	}
	w.logger.Debug("linked", "from", from, "dir", dir, "to", to, "back", back)
	return nil
}

// Loop makes the dir exit of name lead back to name itself.
func (w *World) Loop(name string, dir Direction) error {
	return w.LinkVia(name, dir, name, dir)
}

// Unlink removes the path between a and b (or the loop of a when a == b).
func (w *World) Unlink(a, b string) error {
	err := w.graph.Disconnect(a, b)
	switch {
	case err == nil:
		w.logger.Debug("unlinked", "a", a, "b", b)
		return nil
	case stderrors.Is(err, slotgraph.ErrKeyNotFound):
		return errors.Wrap(errors.ErrCodeLocationNotFound, err, "cannot unlink %q and %q: unknown location", a, b)
	default:
		return errors.Wrap(errors.ErrCodeNotFound, err, "no path between %q and %q", a, b)
	}
}

// Exits returns the occupied exits of a location in direction order.
func (w *World) Exits(name string) ([]Exit, error) {
	var exits []Exit
	for _, d := range Directions() {
		to, ok, err := w.graph.Neighbor(name, int(d))
		if err != nil {
			return nil, notFound(err, name)
		}
		if ok {
			exits = append(exits, Exit{Direction: d, To: to})
		}
	}
	return exits, nil
}

// Paths returns every path once, sorted by From and then Dir.
func (w *World) Paths() []Path {
	edges := w.graph.Edges()
	paths := make([]Path, 0, len(edges))
	for _, e := range edges {
		p := Path{From: e.From, Dir: Direction(e.FromSlot), To: e.To, Back: Direction(e.ToSlot)}
		if p.To < p.From {
			p = Path{From: p.To, Dir: p.Back, To: p.From, Back: p.Dir}
		}
		paths = append(paths, p)
	}
	slices.SortFunc(paths, func(a, b Path) int {
		if c := strings.Compare(a.From, b.From); c != 0 {
			return c
		}
		return int(a.Dir) - int(b.Dir)
	})
	return paths
}

// Walk follows dirs starting at from and returns the names of every location
// visited, from included. If a step has no exit the route so far is returned
// with a DEAD_END error.
func (w *World) Walk(from string, dirs ...Direction) ([]string, error) {
	it, err := w.graph.BeginAt(from)
	if err != nil {
		return nil, notFound(err, from)
	}
	route := []string{from}
	here := from
	for step, d := range dirs {
		if _, err := it.Move(int(d)); err != nil {
			return route, errors.Wrap(errors.ErrCodeInvalidDirection, err, "step %d: invalid direction", step+1)
		}
		if it.AtEnd() {
			return route, errors.Wrap(errors.ErrCodeDeadEnd, slotgraph.ErrIteratorReachedEnd,
				"step %d: there is no way %s from %s", step+1, d, here)
		}
		if here, err = it.Key(); err != nil {
			return route, errors.Wrap(errors.ErrCodeInternal, err, "step %d", step+1)
		}
		route = append(route, here)
	}
	return route, nil
}

// Cursor returns a read-only iterator positioned at the named location.
// The cursor must not be used after the location is removed.
func (w *World) Cursor(name string) (slotgraph.ReadIterator[string, *Location], error) {
	it, err := w.graph.ReadAt(name)
	if err != nil {
		return it, notFound(err, name)
	}
	return it, nil
}

// Clone returns an independent copy of the world. Locations are copied, so
// editing a location of the clone leaves the original untouched.
func (w *World) Clone() *World {
	g := w.graph.Clone()
	for _, name := range g.Keys() {
		p := g.GetOrInsert(name)
		loc := **p
		loc.Items = slices.Clone(loc.Items)
		*p = &loc
	}
	return &World{name: w.name, start: w.start, graph: g, logger: w.logger}
}

// Stats computes summary counts.
func (w *World) Stats() Stats {
	s := Stats{Locations: w.graph.Len()}
	for _, e := range w.graph.Edges() {
		s.Paths++
		if e.From == e.To {
			s.Loops++
		}
	}
	for _, name := range w.graph.Keys() {
		if d, _ := w.graph.Degree(name); d == 0 {
			s.DeadEnds++
		}
	}
	return s
}

// Validate reports an INTERNAL_ERROR if any exit is one-sided or a stored
// location no longer carries the name it is keyed under.
func (w *World) Validate() error {
	if err := w.graph.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "world %q is inconsistent", w.name)
	}
	for name, loc := range w.graph.All() {
		if loc.Name != name {
			return errors.New(errors.ErrCodeInternal, "location %q was renamed to %q", name, loc.Name)
		}
	}
	if w.start != "" && !w.graph.Contains(w.start) {
		return errors.New(errors.ErrCodeInvalidWorld, "start location %q does not exist", w.start)
	}
	return nil
}

func (w *World) linkError(err error, from string, dir Direction, to string, back Direction) error {
	switch {
	case stderrors.Is(err, slotgraph.ErrKeyNotFound):
		missing := from
		if w.graph.Contains(from) {
			missing = to
		}
		return errors.Wrap(errors.ErrCodeLocationNotFound, err, "location %q does not exist", missing)
	case stderrors.Is(err, slotgraph.ErrNodesAlreadyConnected):
		if from == to {
			return errors.Wrap(errors.ErrCodeRouteTaken, err, "%s already loops onto itself", from)
		}
		return errors.Wrap(errors.ErrCodeRouteTaken, err, "%s and %s are already linked", from, to)
	case stderrors.Is(err, slotgraph.ErrEdgeAlreadyInUse):
		if _, ok, _ := w.graph.Neighbor(from, int(dir)); ok {
			return errors.Wrap(errors.ErrCodeRouteTaken, err, "the %s exit of %s is already taken", dir, from)
		}
		return errors.Wrap(errors.ErrCodeRouteTaken, err, "the %s exit of %s is already taken", back, to)
	default:
		return errors.Wrap(errors.ErrCodeInvalidDirection, err, "cannot link %s -> %s", from, to)
	}
}

func notFound(err error, name string) error {
	if stderrors.Is(err, slotgraph.ErrKeyNotFound) {
		return errors.Wrap(errors.ErrCodeLocationNotFound, err, "location %q does not exist", name)
	}
	return errors.Wrap(errors.ErrCodeInternal, err, "location %q", name)
}
