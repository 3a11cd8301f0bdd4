package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

// confirm asks a yes/no question and reports the answer.
func confirm(title, description string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

func printTitle(msg string) {
	fmt.Println(titleStyle.Render(msg))
}

func printSuccess(msg string) {
	fmt.Println(successStyle.Render(msg))
}

func printField(label, value string) {
	fmt.Printf("  %s %s\n", subtleStyle.Render(label+":"), value)
}

func printError(msg string) {
	fmt.Println(errorStyle.Render("Error: " + msg))
}
