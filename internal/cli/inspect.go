package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/waypoint/pkg/world"
)

// inspectCommand creates the inspect command, which validates a world and
// prints its exits.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "inspect [world.toml]",
		Short:             "Validate a world and list its locations and exits",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeWorldFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := c.loadWorld(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			st := w.Stats()
			fmt.Println(StyleTitle.Render(w.Name()))
			printKeyValue("Start", orDash(w.Start()))
			printKeyValue("Locations", strconv.Itoa(st.Locations))
			printKeyValue("Paths", strconv.Itoa(st.Paths))
			printKeyValue("Loops", strconv.Itoa(st.Loops))
			printNewline()

			tbl, err := exitTable(w)
			if err != nil {
				return err
			}
			fmt.Println(tbl)

			for _, name := range deadEnds(w) {
				printWarning("%s has no exits", name)
			}
			printNewline()
			printSuccess("World is consistent")
			printNextStep("Render it", "waypoint render "+args[0])
			return nil
		},
	}
}

// exitTable renders one row per location with its four exits.
func exitTable(w *world.World) (string, error) {
	headers := []string{"Location"}
	for _, d := range world.Directions() {
		headers = append(headers, d.String())
	}
	headers = append(headers, "Items")

	var rows [][]string
	for _, name := range w.Names() {
		exits, err := w.Exits(name)
		if err != nil {
			return "", err
		}
		row := make([]string, len(headers))
		row[0] = name
		if name == w.Start() {
			row[0] = iconStart + " " + name
		}
		for i := range world.NumDirections {
			row[i+1] = "-"
		}
		for _, e := range exits {
			row[int(e.Direction)+1] = e.To
		}
		loc, err := w.Location(name)
		if err != nil {
			return "", err
		}
		row[len(row)-1] = orDash(strings.Join(loc.Items, ", "))
		rows = append(rows, row)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})
	return t.Render(), nil
}

func deadEnds(w *world.World) []string {
	var names []string
	for _, name := range w.Names() {
		if exits, err := w.Exits(name); err == nil && len(exits) == 0 {
			names = append(names, name)
		}
	}
	return names
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
