package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games",
	Long:  `Display all registered games with their IDs and titles.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println(color.New(color.FgYellow).Sprint("No games registered."))
		return
	}

	fmt.Println("Available games:")
	fmt.Println()
	for _, g := range games {
		fmt.Printf("  %-12s %s\n", color.New(color.FgCyan, color.Bold).Sprint(g.ID), g.Title)
	}
	fmt.Println()
	fmt.Println("Run 'tetris play' to start playing.")
}
