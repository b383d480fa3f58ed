package main

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
)

// UI helpers

func PrintInfo(format string, a ...any) {
	fmt.Println(infoStyle.Render("ℹ " + fmt.Sprintf(format, a...)))
}

func PrintSuccess(format string, a ...any) {
	fmt.Println(successStyle.Render("✓ " + fmt.Sprintf(format, a...)))
}

func PrintWarning(format string, a ...any) {
	fmt.Println(warningStyle.Render("⚠ " + fmt.Sprintf(format, a...)))
}

func PrintError(format string, a ...any) {
	fmt.Println(errorStyle.Render("✗ " + fmt.Sprintf(format, a...)))
}

func PrintHeader(title string) {
	fmt.Println()
	fmt.Println(headerStyle.Render("=== " + title + " ==="))
}

// Command execution helpers

// checkHostile rejects arguments carrying shell metacharacters or control
// bytes. URLs with '&' and SQL with ';' are allowed.
func checkHostile(inputs ...string) error {
	for _, s := range inputs {
		if strings.ContainsAny(s, "\n\r") {
			return fmt.Errorf("hostile input detected: newlines or carriage returns")
		}
		if strings.Contains(s, "\x00") {
			return fmt.Errorf("hostile input detected: null byte")
		}
		for _, p := range []string{"|", "`", "$(", "&&", "||", ">", "<"} {
			if strings.Contains(s, p) {
				return fmt.Errorf("hostile input detected: pattern %q in %q", p, s)
			}
		}
	}
	return nil
}

func getCommandOutput(name string, args ...string) (string, error) {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return "", err
	}
	// #nosec G204 - Generic command wrapper
	cmd := exec.Command(name, args...)
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
