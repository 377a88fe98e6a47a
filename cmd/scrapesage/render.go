package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scrapesage"
)

const banner = `
 ___  ___  ____   __   ____  ____  ___   __    ___  ____
/ __)/ __)(  _ \ / _\ (  _ \(  __)/ __) / _\  / __)(  __)
\__ \ (__  )   //    \ ) __/ ) _) \__ \/    \( (_ \ ) _)
(___/\___)(__\_)\_/\_/(__)  (____)(___/\_/\_/ \___/(____)
`

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("36"))

	answerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(76)

	sourceURIStyle = lipgloss.NewStyle().Faint(true)
)

// Banner returns the welcome banner shown at startup.
func Banner() string {
	return bannerStyle.Render(strings.Trim(banner, "\n")) +
		"\nGrounded web answers from your preferred sites. Type 'help' for commands."
}

// HelpText returns the static command reference.
func HelpText() string {
	rows := [][2]string{
		{"help", "Show this help"},
		{"add-site <url...>", "Add one or more priority sites"},
		{"list-sites", "List priority sites"},
		{"remove-site <url>", "Remove a priority site"},
		{"clear-sites", "Remove all priority sites"},
		{"add-exclude <url...>", "Add one or more excluded sites"},
		{"list-excludes", "List excluded sites"},
		{"remove-exclude <url>", "Remove an excluded site"},
		{"clear-excludes", "Remove all excluded sites"},
		{"scrape <query>", "Answer a question from your priority sites"},
		{"set-morning-query <query>", "Save the recurring morning question"},
		{"scrape-morning", "Run the saved morning question"},
		{"clear", "Clear the screen"},
		{"exit", "Quit"},
	}

	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "  %-27s %s\n", row[0], row[1])
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderResult renders an answer box followed by its numbered source list.
func RenderResult(result *scrapesage.ScrapeResult) string {
	var b strings.Builder
	b.WriteString(answerStyle.Render(result.Text))

	if len(result.Sources) > 0 {
		b.WriteString("\n\nSources:\n")
		for i, source := range result.Sources {
			fmt.Fprintf(&b, "  %d. %s\n     %s\n", i+1, source.Title, sourceURIStyle.Render(source.URI))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderSiteList renders a numbered site list or an empty-list hint.
func renderSiteList(sites []string, list siteList) string {
	if len(sites) == 0 {
		if list == excludedList {
			return "No excluded sites. Use 'add-exclude <url>' to add one."
		}
		return "No priority sites. Use 'add-site <url>' to add one."
	}

	var b strings.Builder
	for i, site := range sites {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, site)
	}
	return strings.TrimRight(b.String(), "\n")
}
