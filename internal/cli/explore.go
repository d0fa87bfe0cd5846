package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/waypoint/pkg/errors"
)

// exploreCommand creates the explore command, an interactive walk through
// a world in the terminal.
func (c *CLI) exploreCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "explore [world.toml]",
		Short: "Walk a world interactively",
		Long: `Walk a world interactively.

Move with the arrow keys, hjkl or n/e/s/w. Press b to step back along your
trail and q to quit.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeWorldFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := c.loadWorld(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if from == "" {
				from = w.Start()
			}
			if from == "" {
				return errors.New(errors.ErrCodeInvalidInput, "world %q has no start location; pass --from", w.Name())
			}

			m, err := newExploreModel(w, from)
			if err != nil {
				return err
			}
			p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return err
			}
			if em, ok := final.(exploreModel); ok {
				fmt.Println(formatRoute(em.trail))
				c.Logger.Debug("explore finished", "steps", len(em.trail)-1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "starting location (default: the world's start)")

	return cmd
}
