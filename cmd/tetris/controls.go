package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show key bindings",
	Args:  cobra.NoArgs,
	Run:   runControls,
}

func runControls(_ *cobra.Command, _ []string) {
	keyStyle := color.New(color.FgGreen, color.Bold)

	for _, col := range tui.DefaultKeyMap().FullHelp() {
		for _, b := range col {
			h := b.Help()
			fmt.Printf("  %s %s\n", keyStyle.Sprintf("%-8s", h.Key), h.Desc)
		}
	}
}
