package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MnKimJ/CPS251/internal/selection"
	"github.com/MnKimJ/CPS251/internal/telemetry"
)

// DefaultGridColumns is the number of tiles per row.
const DefaultGridColumns = 6

// GridModel renders the selection grid. The cursor walks the tiles and, one
// step below the last row, the Clear Selection button.
type GridModel struct {
	grid    *selection.Grid
	columns int
	cursor  int

	keys gridKeyMap
	help help.Model

	width    int
	height   int
	Quitting bool
}

func NewGridModel(g *selection.Grid, columns int) GridModel {
	if columns < 1 {
		columns = DefaultGridColumns
	}
	m := GridModel{
		grid:    g,
		columns: columns,
		keys:    newGridKeys(),
		help:    help.New(),
	}
	m.syncKeys()
	return m
}

func (m GridModel) Grid() *selection.Grid { return m.grid }

func (m GridModel) Cursor() int { return m.cursor }

// OnClearButton reports whether the cursor is on the Clear Selection button.
func (m GridModel) OnClearButton() bool { return m.cursor == m.grid.Total() }

func (m GridModel) Init() tea.Cmd {
	return nil
}

func (m GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.moveUp()
		case key.Matches(msg, m.keys.Down):
			m.moveDown()
		case key.Matches(msg, m.keys.Left):
			m.moveLeft()
		case key.Matches(msg, m.keys.Right):
			m.moveRight()
		case key.Matches(msg, m.keys.Toggle):
			m.activate()
		case key.Matches(msg, m.keys.Clear):
			m.grid.Clear()
		}
		m.syncKeys()
	}

	return m, nil
}

// syncKeys disables the clear binding while there is nothing to clear.
func (m *GridModel) syncKeys() {
	m.keys.Clear.SetEnabled(m.grid.CanClear())
}

func (m *GridModel) activate() {
	if m.OnClearButton() {
		if m.grid.CanClear() {
			m.grid.Clear()
		}
		return
	}
	if _, err := m.grid.Toggle(m.cursor); err != nil {
		telemetry.LogError("Tile toggle failed", err, "cursor", m.cursor)
	}
}

func (m *GridModel) moveLeft() {
	if m.OnClearButton() || m.cursor%m.columns == 0 {
		return
	}
	m.cursor--
}

func (m *GridModel) moveRight() {
	if m.OnClearButton() || m.cursor == m.grid.Total()-1 || m.cursor%m.columns == m.columns-1 {
		return
	}
	m.cursor++
}

func (m *GridModel) moveUp() {
	if m.OnClearButton() {
		// back to the first tile of the last row
		last := m.grid.Total() - 1
		m.cursor = last - last%m.columns
		return
	}
	if m.cursor-m.columns >= 0 {
		m.cursor -= m.columns
	}
}

func (m *GridModel) moveDown() {
	if m.OnClearButton() {
		return
	}
	next := m.cursor + m.columns
	if next >= m.grid.Total() {
		next = m.grid.Total()
	}
	m.cursor = next
}

func (m GridModel) View() string {
	if m.Quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(headerStyle.Render("Interactive Button Grid") + "\n\n")
	s.WriteString(summaryStyle.Render(m.grid.Summary()) + "\n\n")

	tiles := m.grid.Tiles()
	rows := make([]string, 0, len(tiles)/m.columns+1)
	for start := 0; start < len(tiles); start += m.columns {
		end := min(start+m.columns, len(tiles))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, m.renderTile(i, tiles[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	s.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n\n")

	s.WriteString(m.renderClearButton() + "\n")
	s.WriteString(helpStyle.Render(m.help.View(m.keys)))

	if m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s.String())
	}
	return s.String()
}

func (m GridModel) renderTile(i int, t selection.Tile) string {
	style := tileStyle.Background(lipgloss.Color(t.Color))
	label := t.Label

	selected := m.grid.Contains(i)
	if selected {
		label = "✓" + label
		style = style.Border(lipgloss.ThickBorder()).BorderForeground(selectedBorderColor)
	}
	if i == m.cursor {
		if !selected {
			style = style.Border(lipgloss.RoundedBorder())
		}
		style = style.BorderForeground(cursorBorderColor)
	}
	return style.Render(label)
}

func (m GridModel) renderClearButton() string {
	const label = "Clear Selection"

	prefix := ""
	if m.OnClearButton() {
		prefix = "▸ "
	}

	switch {
	case !m.grid.CanClear():
		return prefix + disabledButtonStyle.Render(label)
	case m.OnClearButton():
		return prefix + focusedButtonStyle.Render(label)
	default:
		return buttonStyle.Render(label)
	}
}
