package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	emphasisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

func primaryText(s string) string  { return primaryStyle.Render(s) }
func successText(s string) string  { return successStyle.Render(s) }
func warningText(s string) string  { return warningStyle.Render(s) }
func errorText(s string) string    { return errStyle.Render(s) }
func infoText(s string) string     { return infoStyle.Render(s) }
func emphasisText(s string) string { return emphasisStyle.Render(s) }

// confirmPrompt asks a yes/no question on stdin. Defaults to no.
func confirmPrompt(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
