package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the CLI. Never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for skipped or failed-but-continued steps.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failures that stop scaffolding.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorMuted is used for descriptions in file trees.
	ColorMuted = lipgloss.Color("245")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles headings and directory roots.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleMuted styles secondary text such as file descriptions.
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatWarning renders a yellow warning marker with a message.
func FormatWarning(msg string) string {
	mark := lipgloss.NewStyle().Foreground(ColorYellow).Render("!")
	return mark + " " + msg
}

// FormatFailure renders a bold red cross with a message.
func FormatFailure(msg string) string {
	mark := lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed).Render("✘")
	return mark + " " + msg
}
