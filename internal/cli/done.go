package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgallais/todo/internal/ui"
)

var doneCmd = &cobra.Command{
	Use:     "done <id>",
	Aliases: []string{"toggle"},
	Short:   "Toggle completion for a todo",
	Args:    exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		td, err := s.Toggle(id)
		if err != nil {
			return err
		}
		if err := s.Save(); err != nil {
			return err
		}
		if td.Completed {
			ui.OK(fmt.Sprintf("completed #%d", id))
		} else {
			ui.OK(fmt.Sprintf("reopened #%d", id))
		}
		return nil
	},
}
