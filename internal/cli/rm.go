package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgallais/todo/internal/ui"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a todo (asks for confirmation)",
	Args:    exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")

		s, err := openStore()
		if err != nil {
			return err
		}
		td, err := s.Get(id)
		if err != nil {
			return err
		}

		if !yes {
			fmt.Printf("You are about to delete #%d: %s\n", td.ID, td.Title)
			if td.Description != "" {
				fmt.Println(ui.Current().Muted.Render(td.Description))
			}
			ok, err := confirm(cmd.InOrStdin(), "Are you sure?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Deletion cancelled.")
				return nil
			}
		}

		if err := s.Delete(id); err != nil {
			return err
		}
		if err := s.Save(); err != nil {
			return err
		}
		ui.OK(fmt.Sprintf("removed #%d", id))
		return nil
	},
}

// confirm asks a y/n question on stdin and keeps asking until it gets one.
func confirm(in io.Reader, prompt string) (bool, error) {
	r := bufio.NewReader(in)
	for {
		fmt.Printf("%s (y/n): ", prompt)
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return false, fmt.Errorf("read answer: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Println("Please enter 'y' or 'n'")
		if err != nil {
			return false, nil
		}
	}
}

func init() {
	rmCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
