package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func launcherItems() []AppItem {
	return []AppItem{
		{Name: "grid", Desc: "Interactive button grid"},
		{Name: "timer", Desc: "Study timer"},
	}
}

func TestMenuModel_Selection(t *testing.T) {
	model := NewMenuModel(launcherItems())

	assert.Equal(t, "", model.Selected)
	assert.False(t, model.Quitting)
	assert.Contains(t, model.View(), "CPS251 Study Tools")

	updatedModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m := updatedModel.(MenuModel)
	assert.Equal(t, "grid", m.Selected)
	assert.False(t, m.Quitting)
	assert.Empty(t, m.View())
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMenuModel_Navigation(t *testing.T) {
	model := NewMenuModel(launcherItems())

	updatedModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	updatedModel, _ = updatedModel.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m := updatedModel.(MenuModel)
	assert.Equal(t, "timer", m.Selected)
}

func TestMenuModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		model := NewMenuModel(launcherItems())
		updatedModel, cmd := model.Update(k)

		m := updatedModel.(MenuModel)
		assert.True(t, m.Quitting, k.String())
		assert.Equal(t, "", m.Selected)
		assert.NotNil(t, cmd)
		assert.Contains(t, m.View(), "Bye!")
	}
}
