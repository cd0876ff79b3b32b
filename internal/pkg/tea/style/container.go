package style

import "github.com/charmbracelet/lipgloss"

//nolint:gochecknoglobals // read only styles
var (
	Container = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1,
		2).BorderForeground(lipgloss.Color("#4285F4")) //nolint:mnd
	cliHeaderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4285F4")).
			Padding(0, 2). //nolint:mnd
			Bold(true).
			Align(lipgloss.Center).
			Width(44) //nolint:mnd
)

// CLIHeader renders the boxed banner shown at the top of a run.
func CLIHeader(title string, description string) string {
	return cliHeaderStyle.Render(title) + "\n" + description
}

// ForegroundPrint renders text in the given ANSI color.
func ForegroundPrint(text string, color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}
