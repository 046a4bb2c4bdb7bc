package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	menuPaginationStyle = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	menuHelpStyle       = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

// AppItem is one entry of the launcher.
type AppItem struct {
	Name, Desc string
}

func (i AppItem) Title() string       { return i.Name }
func (i AppItem) Description() string { return i.Desc }
func (i AppItem) FilterValue() string { return i.Name }

// MenuModel lets the user pick which app to open.
type MenuModel struct {
	list     list.Model
	Selected string
	Quitting bool
}

func NewMenuModel(items []AppItem) MenuModel {
	lItems := make([]list.Item, len(items))
	for i, item := range items {
		lItems[i] = item
	}

	const defaultWidth = 40
	const listHeight = 12

	l := list.New(lItems, list.NewDefaultDelegate(), defaultWidth, listHeight)
	l.Title = "CPS251 Study Tools"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = headerStyle.MarginLeft(2)
	l.Styles.PaginationStyle = menuPaginationStyle
	l.Styles.HelpStyle = menuHelpStyle

	return MenuModel{list: l}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "ctrl+c", "q", "esc":
			m.Quitting = true
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(AppItem); ok {
				m.Selected = i.Name
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m MenuModel) View() string {
	if m.Selected != "" {
		return ""
	}
	if m.Quitting {
		return menuQuitTextStyle.Render("Bye!")
	}
	return "\n" + m.list.View()
}
