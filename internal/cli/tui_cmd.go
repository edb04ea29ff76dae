package cli

import (
	"github.com/spf13/cobra"

	"github.com/rgallais/todo/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and edit todos interactively",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		return tui.Run(s)
	},
}
