package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rgallais/todo/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update the title and/or description of a todo",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("desc") {
			return usagef("edit: nothing to change, pass --title and/or --desc")
		}

		var title, description *string
		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			title = &v
		}
		if cmd.Flags().Changed("desc") {
			v, _ := cmd.Flags().GetString("desc")
			description = &v
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		if _, err := s.Edit(id, title, description); err != nil {
			return err
		}
		if err := s.Save(); err != nil {
			return err
		}
		ui.OK(fmt.Sprintf("updated #%d", id))
		return nil
	},
}

func init() {
	editCmd.Flags().StringP("title", "t", "", "New title")
	editCmd.Flags().StringP("desc", "d", "", "New description")
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, usagef("not a todo id: %s", s)
	}
	return id, nil
}
