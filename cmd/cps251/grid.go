package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/MnKimJ/CPS251/internal/config"
	"github.com/MnKimJ/CPS251/internal/selection"
	"github.com/MnKimJ/CPS251/internal/ui"
)

var gridColumns int

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Open the interactive button grid",
	Long: `Shows 24 colored tiles. Toggle tiles with space or enter, clear the
selection with 'c' or the Clear Selection button.`,
	Args: cobra.NoArgs,
	RunE: runGrid,
}

func init() {
	rootCmd.AddCommand(gridCmd)
	gridCmd.Flags().IntVarP(&gridColumns, "columns", "c", 0, "Tiles per row (default from config, 6)")
}

func runGrid(cmd *cobra.Command, args []string) error {
	columns := config.Current().GridColumns
	if cmd.Flags().Changed("columns") {
		if gridColumns < 1 || gridColumns > 24 {
			return fmt.Errorf("invalid --columns %d: must be between 1 and 24", gridColumns)
		}
		columns = gridColumns
	}

	g := selection.NewGrid()
	defer observeGrid(g)()

	p := newProgram(ui.NewGridModel(g, columns))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running button grid: %w", err)
	}
	return nil
}

// newProgram is swapped in tests to avoid taking over the terminal.
var newProgram = func(m tea.Model) interface{ Run() (tea.Model, error) } {
	return tea.NewProgram(m, tea.WithAltScreen())
}
