package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgallais/todo/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <title...>",
	Short: "Add a new todo (title can be multiple words)",
	Args:  minimumArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(strings.Join(args, " "))
		if title == "" {
			return usagef("add: empty title")
		}
		description, _ := cmd.Flags().GetString("desc")

		s, err := openStore()
		if err != nil {
			return err
		}
		td := s.Add(title, strings.TrimSpace(description))
		if err := s.Save(); err != nil {
			return err
		}
		ui.OK(fmt.Sprintf("added #%d", td.ID))
		return nil
	},
}

func init() {
	addCmd.Flags().StringP("desc", "d", "", "Description for the new todo")
}
