package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/MnKimJ/CPS251/internal/ui"
)

// runLauncher shows the app menu and runs whichever app is picked.
func runLauncher(cmd *cobra.Command, args []string) error {
	apps := map[string]*cobra.Command{
		"grid":  gridCmd,
		"timer": timerCmd,
		"guide": guideCmd,
	}
	items := []ui.AppItem{
		{Name: "grid", Desc: "Interactive button grid"},
		{Name: "timer", Desc: "Study timer"},
		{Name: "guide", Desc: "How to use both apps"},
	}

	final, err := runMenu(ui.NewMenuModel(items))
	if err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}

	menu, ok := final.(ui.MenuModel)
	if !ok || menu.Selected == "" {
		return nil
	}

	app := apps[menu.Selected]
	app.SetContext(cmd.Context())
	app.SetOut(cmd.OutOrStdout())
	return app.RunE(app, nil)
}

// runMenu is swapped in tests.
var runMenu = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}
