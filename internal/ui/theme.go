package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done, Selected, Help                          lipgloss.Style

	// Frame is the bordered-box style used by every panel renderer.
	Frame lipgloss.Style

	BoxUnchecked, BoxChecked       string
	SymDone, SymUnchecked, SymFail string
}

var current = classicTheme()

func frameStyle(border lipgloss.Border) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
}

func classicTheme() Theme {
	return Theme{
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Frame:        frameStyle(lipgloss.NormalBorder()),
		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymUnchecked: "•", SymFail: "✖",
	}
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		t := classicTheme()
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		t.BoxUnchecked, t.BoxChecked = "◻", "◼"
		t.Frame = frameStyle(lipgloss.RoundedBorder())
		current = t
	case "mono":
		plain := lipgloss.NewStyle()
		asciiBorder := lipgloss.Border{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		}
		current = Theme{
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Done: plain, Selected: plain, Help: plain,
			Frame:        lipgloss.NewStyle().Border(asciiBorder).Padding(0, 1),
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymUnchecked: "-", SymFail: "x",
		}
	default: // classic
		current = classicTheme()
	}
}

// DisableColors strips every color and text attribute from the current theme
// while keeping its glyphs and borders.
func DisableColors() {
	plain := lipgloss.NewStyle()
	current.Title = plain
	current.Muted = plain
	current.Accent = plain
	current.Error = plain
	current.Success = plain
	current.Pending = plain
	current.Done = plain
	current.Selected = plain
	current.Help = plain
	current.Frame = current.Frame.UnsetBorderForeground()
}

// Expose what renderers need
func Current() Theme { return current }
