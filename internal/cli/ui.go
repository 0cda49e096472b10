package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen = lipgloss.Color("35")  // success
	colorWhite = lipgloss.Color("255") // values
	colorDim   = lipgloss.Color("240") // muted text
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
	styleValue       = lipgloss.NewStyle().Foreground(colorWhite)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + styleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

// printStats prints conversion statistics on a single line.
func printStats(individuals, relations, blocks int) {
	parts := []string{
		fmt.Sprintf("%d individuals", individuals),
		fmt.Sprintf("%d relations", relations),
		fmt.Sprintf("%d blocks", blocks),
	}
	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += styleDim.Render(" · ")
		}
		line += styleDim.Render(part)
	}
	fmt.Println(line)
}
