package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

var guideWidth int

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show how to use the grid and the timer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(guideWidth),
		)
		if err != nil {
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}

		out, err := renderer.Render(guideMarkdown)
		if err != nil {
			// Fallback to plain text
			fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
	guideCmd.Flags().IntVarP(&guideWidth, "width", "w", 80, "Wrap the guide at this width")
}
