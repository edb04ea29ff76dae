// Package tui runs the interactive todo list on top of bubbletea.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/rgallais/todo/internal/model"
	"github.com/rgallais/todo/internal/store/jsonstore"
	"github.com/rgallais/todo/internal/ui"
)

// listItem adapts a Todo to bubbles/list.Item.
type listItem struct {
	Todo model.Todo
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.Todo.Title }
func (i listItem) Description() string { return i.Todo.Description }
func (i listItem) FilterValue() string { return i.Todo.Title }

type modelTUI struct {
	list    list.Model
	store   *jsonstore.Store
	changed bool

	// Inline add
	adding bool            // true when inline add is active
	ti     textinput.Model // shared text input model (used for add & edit)
	addErr string          // last add validation error (shown briefly)

	// Inline edit
	editing bool // true when inline edit is active
	editID  int  // id of the todo being edited
	editErr string

	// Undo support (single-level)
	canUndo   bool
	undoIndex int
	undoTodo  *model.Todo
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	text := it.Todo.Title
	if it.Todo.Completed {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}

	line := fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("%3d.", it.Todo.ID)), box, text)
	if it.Todo.Description != "" {
		line += " " + t.Muted.Render(ui.Truncate(it.Todo.Description, 40))
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Run starts the bubbletea list and persists changes when quitting.
func Run(s *jsonstore.Store) error {
	todos := s.List()
	li := make([]list.Item, 0, len(todos))
	for _, td := range todos {
		li = append(li, listItem{Todo: td})
	}

	l := list.New(li, itemDelegate{}, 0, 0)

	// Header title with live counts
	t := ui.Current()
	dn, pn := stats(todos)
	l.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), dn,
		t.Pending.Render(t.SymUnchecked), pn,
		t.Accent.Render("Total"), len(todos),
	)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Help
	l.Styles.PaginationStyle = t.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	// Extend help with Add / Edit / Undo bindings
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	undoBind := key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, undoBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, undoBind} }

	m := modelTUI{
		list:  l,
		store: s,
	}
	// set up text input for inline add/edit
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New todo title..."
	m.ti.CharLimit = 200

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	fm, okModel := finalModel.(modelTUI)
	if !okModel {
		return nil
	}

	if fm.changed {
		if err := s.Save(); err != nil {
			return err
		}
		ui.OK("saved")
	}
	return nil
}

// Update and View implement bubbletea's Model on modelTUI
func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// add mode
	if m.adding {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				title := strings.TrimSpace(m.ti.Value())
				if title == "" {
					m.addErr = "Title cannot be empty"
					return m, nil
				}
				td := m.store.Add(title, "")
				m.list.InsertItem(len(m.list.Items()), listItem{Todo: td})
				m.changed = true
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				return m, nil
			case "esc":
				m.adding = false
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// edit mode
	if m.editing {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				title := strings.TrimSpace(m.ti.Value())
				if title == "" {
					m.editErr = "Title cannot be empty"
					return m, nil
				}
				td, err := m.store.Edit(m.editID, &title, nil)
				if err == nil {
					for i, it := range m.list.Items() {
						if li, ok := it.(listItem); ok && li.Todo.ID == m.editID {
							li.Todo = td
							m.list.SetItem(i, li)
							break
						}
					}
					m.changed = true
				}
				m.ti.SetValue("")
				m.ti.Blur()
				m.editing = false
				return m, nil
			case "esc":
				m.editing = false
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					if td, err := m.store.Toggle(li.Todo.ID); err == nil {
						li.Todo = td
						m.list.SetItem(i, li)
						m.changed = true
					}
				}
			}
			return m, nil
		case "d":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					if err := m.store.Delete(li.Todo.ID); err == nil {
						tmp := li.Todo
						m.undoTodo = &tmp
						m.undoIndex = i
						m.canUndo = true
						m.list.RemoveItem(i)
						m.changed = true
					}
				}
			}
			return m, nil
		case "a":
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "New todo title..."
			m.ti.Focus()
			return m, nil
		case "e":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					m.editing = true
					m.editErr = ""
					m.editID = li.Todo.ID
					m.ti.SetValue(li.Todo.Title)
					m.ti.CursorEnd()
					m.ti.Placeholder = "Edit todo title..."
					m.ti.Focus()
					return m, nil
				}
			}
			return m, nil
		case "u":
			if m.canUndo && m.undoTodo != nil {
				idx := m.undoIndex
				if idx < 0 {
					idx = 0
				}
				if idx > len(m.list.Items()) {
					idx = len(m.list.Items())
				}
				if err := m.store.Insert(idx, *m.undoTodo); err == nil {
					m.list.InsertItem(idx, listItem{Todo: *m.undoTodo})
					m.changed = true
				}
				m.canUndo = false
				m.undoTodo = nil
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) View() string {
	w, h := widthHeight()
	listHeight := h - 4
	if m.adding || m.editing {
		listHeight = h - 6
	}
	m.list.SetSize(w-2, listHeight)

	content := m.list.View()
	if m.adding || m.editing {
		bar := ui.Current().Frame
		title := "Add new todo"
		if m.editing {
			title = "Edit todo"
		}
		if m.addErr != "" && m.adding {
			title += " - " + ui.Current().Error.Render(m.addErr)
		}
		if m.editErr != "" && m.editing {
			title += " - " + ui.Current().Error.Render(m.editErr)
		}
		inputLine := title + "\n" + m.ti.View()
		content = content + "\n" + bar.Render(inputLine)
	}
	return panelString(content)
}

// helpers for View
func panelString(inner string) string {
	return ui.Current().Frame.Render(inner)
}

func widthHeight() (int, int) {
	w, h := 80, 24
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		w, h = tw, th
	}
	return w, h
}

// small list stats used for the header
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
