package style

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"gopkg.in/yaml.v3"
)

var (
	// Color palette
	ErrorColor       = lipgloss.Color("#FF6B6B")
	ErrorBgColor     = lipgloss.Color("#3D2020")
	WarningColor     = lipgloss.Color("#FFA726")
	SuccessColor     = lipgloss.Color("#4CAF50")
	InfoColor        = lipgloss.Color("#42A5F5")
	MutedColor       = lipgloss.Color("#B0B0B0")
	AccentColor      = lipgloss.Color("#4CAF50")
	CodeColor        = lipgloss.Color("#D4D4D4")
	PrimaryTextColor = lipgloss.Color("#F0F0F0")

	// Base styles
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)

	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryTextColor).
			Bold(true)

	FileStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	// Box styles
	ErrorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(1, 2).
			Margin(1, 0)

	SuccessBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SuccessColor).
			Padding(1, 2).
			Margin(1, 0)

	NoteBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(MutedColor).
			Foreground(MutedColor).
			PaddingLeft(1)
)

// SuccessBox renders a boxed success notification.
func SuccessBox(title, message string) string {
	head := SuccessStyle.Render("✓ " + title)
	return SuccessBoxStyle.Render(head + "\n\n" + message)
}

// ErrorBox renders a boxed error notification.
func ErrorBox(title, message string) string {
	head := ErrorStyle.Render("✗ " + title)
	return ErrorBoxStyle.Render(head + "\n\n" + message)
}

// Note renders a muted side note such as form instructions.
func Note(title, body string) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(TitleStyle.Render(title))
		b.WriteString("\n")
	}
	b.WriteString(body)
	return NoteBoxStyle.Render(b.String())
}

// FormatFilePath formats a file path with proper styling
func FormatFilePath(path string) string {
	return FileStyle.Render(path)
}

// Success prints a success message with styling. Colours are downsampled
// for w, so plain writers get plain text.
func Success(w io.Writer, message string) {
	icon := lipgloss.NewStyle().Foreground(SuccessColor).Bold(true).Render("✓")
	msg := lipgloss.NewStyle().Foreground(SuccessColor).Render(message)
	lipgloss.Fprintf(w, "%s %s\n", icon, msg)
}

// PrintJSON outputs data as indented JSON
func PrintJSON(w io.Writer, data interface{}) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(w, "Error encoding JSON: %v\n", err)
	}
}

// PrintYAML outputs data as YAML
func PrintYAML(w io.Writer, data interface{}) {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(w, "Error encoding YAML: %v\n", err)
	}
	encoder.Close()
}
