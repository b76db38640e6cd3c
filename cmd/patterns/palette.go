package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-patterns/internal/config"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the configured colors",
	Long:  `Shows the colors levels are drawn from, after loading the config.`,
	Args:  cobra.NoArgs,
	Run:   runPalette,
}

func runPalette(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	colors := cfg.Colors()

	fmt.Println("Palette:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, c := range colors {
		if len(c.Name) > maxNameLen {
			maxNameLen = len(c.Name)
		}
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "Name", "Hex", "Sample")
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "----", "---", "------")

	for _, c := range colors {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("████")
		fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, c.Name, c.Hex(), swatch)
	}

	fmt.Println()
	fmt.Printf("Each level picks 2 of these %d colors.\n", len(colors))
}
