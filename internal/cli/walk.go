package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/waypoint/pkg/errors"
	"github.com/matzehuels/waypoint/pkg/world"
)

// walkCommand creates the walk command. It follows compass directions from
// a location and prints every location visited.
func (c *CLI) walkCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "walk [world.toml] [direction...]",
		Short: "Follow a route of compass directions",
		Long: `Follow a route of compass directions through a world.

Directions may be given by name or first letter, for example:

  waypoint walk kanto.toml north n w`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeWalkArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := c.loadWorld(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			dirs, err := world.ParseDirections(args[1:])
			if err != nil {
				return err
			}

			route, err := walk(w, from, dirs)
			fmt.Println(formatRoute(route))
			if err != nil {
				return err
			}
			printSuccess("Arrived at %s after %d steps", route[len(route)-1], len(dirs))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "starting location (default: the world's start)")

	return cmd
}

// walk resolves the starting location and follows dirs from it.
func walk(w *world.World, from string, dirs []world.Direction) ([]string, error) {
	if from == "" {
		from = w.Start()
	}
	if from == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "world %q has no start location; pass --from", w.Name())
	}
	return w.Walk(from, dirs...)
}

// formatRoute joins the route with arrows.
func formatRoute(route []string) string {
	if len(route) == 0 {
		return ""
	}
	parts := make([]string, len(route))
	for i, name := range route {
		parts[i] = StyleValue.Render(name)
	}
	return strings.Join(parts, " "+StyleDim.Render(iconArrow)+" ")
}
