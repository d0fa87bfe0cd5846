package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/waypoint/pkg/errors"
	"github.com/matzehuels/waypoint/pkg/slotgraph"
	"github.com/matzehuels/waypoint/pkg/world"
)

// Explorer styles
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 2).
			Width(60)
	exitOpenStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	exitClosedStyle = lipgloss.NewStyle().Foreground(colorDim)
	statusStyle     = lipgloss.NewStyle().Foreground(colorYellow)
)

// trailShown is how many trail entries the explorer displays.
const trailShown = 6

// keyDirections maps key presses to compass moves.
var keyDirections = map[string]world.Direction{
	"up": world.North, "k": world.North, "n": world.North,
	"right": world.East, "l": world.East, "e": world.East,
	"down": world.South, "j": world.South, "s": world.South,
	"left": world.West, "h": world.West, "w": world.West,
}

// =============================================================================
// exploreModel - Interactive world walk
// =============================================================================

// exploreModel is the bubbletea model behind the explore command. It holds a
// read-only cursor into the world graph; the world is never modified.
type exploreModel struct {
	w      *world.World
	cur    slotgraph.ReadIterator[string, *world.Location]
	trail  []string
	status string
}

func newExploreModel(w *world.World, from string) (exploreModel, error) {
	cur, err := w.Cursor(from)
	if err != nil {
		return exploreModel{}, err
	}
	return exploreModel{w: w, cur: cur, trail: []string{from}}, nil
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k := key.String(); k {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "b", "backspace":
		return m.back(), nil
	default:
		if d, ok := keyDirections[k]; ok {
			return m.step(d), nil
		}
	}
	return m, nil
}

// step moves the cursor through exit d. Running into a wall leaves the
// cursor where it was.
func (m exploreModel) step(d world.Direction) exploreModel {
	next := m.cur
	if _, err := next.Move(int(d)); err != nil {
		m.status = errors.UserMessage(err)
		return m
	}
	if next.AtEnd() {
		m.status = fmt.Sprintf("There is no way %s.", d)
		return m
	}
	name, err := next.Key()
	if err != nil {
		m.status = errors.UserMessage(err)
		return m
	}
	m.cur = next
	m.trail = append(m.trail, name)
	m.status = fmt.Sprintf("You go %s.", d)
	return m
}

// back returns to the previous location on the trail.
func (m exploreModel) back() exploreModel {
	if len(m.trail) < 2 {
		m.status = "You are where you started."
		return m
	}
	prev := m.trail[len(m.trail)-2]
	cur, err := m.w.Cursor(prev)
	if err != nil {
		m.status = errors.UserMessage(err)
		return m
	}
	m.cur = cur
	m.trail = m.trail[:len(m.trail)-1]
	m.status = "You retrace your steps."
	return m
}

// here returns the current location name.
func (m exploreModel) here() string {
	return m.trail[len(m.trail)-1]
}

func (m exploreModel) View() string {
	var b strings.Builder

	loc, err := m.cur.Value()
	if err != nil {
		return errors.UserMessage(err) + "\n"
	}

	b.WriteString(StyleTitle.Render(loc.Name))
	if loc.Region != "" {
		b.WriteString(StyleDim.Render("  " + loc.Region))
	}
	b.WriteString("\n")
	if loc.Description != "" {
		b.WriteString(StyleValue.Render(loc.Description))
		b.WriteString("\n")
	}
	if len(loc.Items) > 0 {
		b.WriteString(StyleHighlight.Render("You see: " + strings.Join(loc.Items, ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.exitsView())

	body := panelStyle.Render(b.String())

	var out strings.Builder
	out.WriteString(StyleTitle.Render(m.w.Name()))
	out.WriteString("\n")
	out.WriteString(body)
	out.WriteString("\n")
	if m.status != "" {
		out.WriteString(statusStyle.Render(m.status))
		out.WriteString("\n")
	}
	out.WriteString(StyleDim.Render("Trail: " + m.trailView()))
	out.WriteString("\n\n")
	out.WriteString(StyleDim.Render("←↑↓→/hjkl/nesw move  b back  q quit"))
	out.WriteString("\n")
	return out.String()
}

func (m exploreModel) exitsView() string {
	exits, err := m.w.Exits(m.here())
	if err != nil {
		return errors.UserMessage(err) + "\n"
	}
	byDir := make(map[world.Direction]string, len(exits))
	for _, e := range exits {
		byDir[e.Direction] = e.To
	}

	var b strings.Builder
	for _, d := range world.Directions() {
		label := StyleDirection.Render(fmt.Sprintf("%-6s", d))
		if to, ok := byDir[d]; ok {
			b.WriteString(label + exitOpenStyle.Render(iconArrow+" "+to))
		} else {
			b.WriteString(label + exitClosedStyle.Render("-"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m exploreModel) trailView() string {
	trail := m.trail
	prefix := ""
	if len(trail) > trailShown {
		trail = trail[len(trail)-trailShown:]
		prefix = "… "
	}
	return prefix + strings.Join(trail, " "+iconArrow+" ")
}
