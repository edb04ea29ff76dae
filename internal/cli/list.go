package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgallais/todo/internal/model"
	"github.com/rgallais/todo/internal/ui"
)

var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List todos",
	Args:    noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		group, _ := cmd.Flags().GetBool("group")

		s, err := openStore()
		if err != nil {
			return err
		}
		todos := s.List()

		t := ui.Current()
		d, p := stats(todos)
		header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			t.Title.Render("Todos"),
			t.Success.Render(t.SymDone), d,
			t.Pending.Render(t.SymUnchecked), p,
			t.Accent.Render("Total"), len(todos),
		)

		var lines []string
		lines = append(lines, header)
		lines = append(lines, t.Muted.Render(ui.ProgressBar(d, d+p, 28)))
		lines = append(lines, "")

		if group {
			lines = append(lines, groupLines(todos)...)
		} else {
			lines = append(lines, flatLines(todos)...)
		}
		lines = append(lines, "")
		lines = append(lines, t.Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
		ui.Panel(lines)
		return nil
	},
}

func init() {
	lsCmd.Flags().BoolP("group", "g", false, "Group output by pending/done")
}

// -------------- rendering helpers --------------

func stats(todos []model.Todo) (done, pending int) {
	for _, td := range todos {
		if td.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func flatLines(todos []model.Todo) []string {
	t := ui.Current()
	if len(todos) == 0 {
		return []string{t.Muted.Render("no todos")}
	}
	out := make([]string, 0, len(todos))
	for _, td := range todos {
		box := t.Muted.Render(t.BoxUnchecked)
		title := ui.Truncate(td.Title, 60)
		if td.Completed {
			box = t.Success.Render(t.BoxChecked)
			title = t.Done.Render(title)
		}
		line := fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("%3d.", td.ID)), box, title)
		if td.Description != "" {
			line += " " + t.Muted.Render("— "+ui.Truncate(td.Description, 40))
		}
		out = append(out, line)
	}
	return out
}

func groupLines(todos []model.Todo) []string {
	t := ui.Current()
	var pend, done []model.Todo
	for _, td := range todos {
		if td.Completed {
			done = append(done, td)
		} else {
			pend = append(pend, td)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
