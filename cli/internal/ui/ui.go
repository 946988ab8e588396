// Package ui renders terminal output for the dragonfly CLI.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#00D9FF")
	SuccessColor   = lipgloss.Color("#00FF88")
	WarningColor   = lipgloss.Color("#FFB800")
	ErrorColor     = lipgloss.Color("#FF4444")
	InfoColor      = lipgloss.Color("#00D9FF")
	SecondaryColor = lipgloss.Color("#6C757D")

	// Styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	SecondaryStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	labelColor = color.New(color.FgCyan)
)

// plain drops all styling once DisableColor has been called.
var plain bool

// DisableColor turns off styling for the remainder of the process.
func DisableColor() {
	plain = true
	color.NoColor = true
	pterm.DisableColor()
}

// PrintHeader prints a bordered header with a title and subtitle
func PrintHeader(title string, subtitle string) {
	if plain {
		fmt.Printf("%s: %s\n\n", title, subtitle)
		return
	}

	width := 80
	if w := pterm.GetTerminalWidth(); w > 0 {
		width = w
	}

	header := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 2).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Center,
				TitleStyle.Render(title),
				SecondaryStyle.Render(subtitle),
			),
		)

	fmt.Println(header)
	fmt.Println()
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	message := "✓ " + fmt.Sprintf(format, args...)
	if plain {
		fmt.Println(message)
		return
	}

	fmt.Println(SuccessStyle.Render(message))
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	message := "✗ " + fmt.Sprintf(format, args...)
	if plain {
		fmt.Fprintln(os.Stderr, message)
		return
	}

	fmt.Fprintln(os.Stderr, ErrorStyle.Render(message))
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	message := "⚠ " + fmt.Sprintf(format, args...)
	if plain {
		fmt.Println(message)
		return
	}

	fmt.Println(WarningStyle.Render(message))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	message := "ℹ " + fmt.Sprintf(format, args...)
	if plain {
		fmt.Println(message)
		return
	}

	fmt.Println(InfoStyle.Render(message))
}

// PrintDetail prints an aligned label and value pair.
func PrintDetail(label string, value string) {
	fmt.Printf("%s %s\n", labelColor.Sprintf("%-12s", label+":"), value)
}

// PrintList prints a bulleted list
func PrintList(items []string) {
	for _, item := range items {
		fmt.Printf("  • %s\n", item)
	}
}

// PrintSection prints a section header
func PrintSection(title string) {
	if plain {
		fmt.Println(title)
		return
	}

	width := 80
	if w := pterm.GetTerminalWidth(); w > 0 {
		width = w
	}

	section := lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(SecondaryColor).
		Padding(0, 0, 1, 0).
		Render(title)

	fmt.Println(section)
}

// PrintTable prints a table using pterm
func PrintTable(headers []string, rows [][]string) {
	tableData := pterm.TableData{headers}
	tableData = append(tableData, rows...)
	_ = pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// PrintSpinner starts a spinner with the given message.
func PrintSpinner(message string) (*pterm.SpinnerPrinter, error) {
	return pterm.DefaultSpinner.WithText(message).Start()
}

// PrintMarkdown renders markdown content
func PrintMarkdown(content string) error {
	options := []glamour.TermRendererOption{
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	}

	if plain {
		options = []glamour.TermRendererOption{
			glamour.WithStandardStyle("notty"),
			glamour.WithWordWrap(80),
		}
	}

	r, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return err
	}

	out, err := r.Render(content)
	if err != nil {
		return err
	}

	fmt.Print(out)

	return nil
}
