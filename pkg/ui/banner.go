package ui

import "strings"

const (
	reset      = "\033[0m"
	bold       = "\033[1m"
	emberRed   = "\033[38;5;203m"
	amber      = "\033[38;5;214m"
	gold       = "\033[38;5;220m"
	leafGreen  = "\033[38;5;113m"
	teal       = "\033[38;5;44m"
	skyBlue    = "\033[38;5;75m"
	violet     = "\033[38;5;141m"
	orchid     = "\033[38;5;170m"
	steelGray  = "\033[38;5;247m"
	watchGreen = "\033[38;5;84m"
)

// Banner renders a colored procwatch wordmark.
func Banner() string {
	var b strings.Builder

	letters := [][]string{
		{"██████╗ ", "██╔══██╗", "██████╔╝", "██╔═══╝ ", "██║     ", "╚═╝     "},
		{"██████╗ ", "██╔══██╗", "██████╔╝", "██╔══██╗", "██║  ██║", "╚═╝  ╚═╝"},
		{" ██████╗ ", "██╔═══██╗", "██║   ██║", "██║   ██║", "╚██████╔╝", " ╚═════╝ "},
		{" ██████╗", "██╔════╝", "██║     ", "██║     ", "╚██████╗", " ╚═════╝"},
		{"██╗    ██╗", "██║    ██║", "██║ █╗ ██║", "██║███╗██║", "╚███╔███╔╝", " ╚══╝╚══╝ "},
		{" █████╗ ", "██╔══██╗", "███████║", "██╔══██║", "██║  ██║", "╚═╝  ╚═╝"},
		{"████████╗", "╚══██╔══╝", "   ██║   ", "   ██║   ", "   ██║   ", "   ╚═╝   "},
		{" ██████╗", "██╔════╝", "██║     ", "██║     ", "╚██████╗", " ╚═════╝"},
		{"██╗  ██╗", "██║  ██║", "███████║", "██╔══██║", "██║  ██║", "╚═╝  ╚═╝"},
	}
	gradient := []string{emberRed, amber, gold, leafGreen, teal, skyBlue, violet, orchid, steelGray}

	rows := make([]string, len(letters[0]))
	for i, letter := range letters {
		color := gradient[i%len(gradient)]
		for row := 0; row < len(letter); row++ {
			rows[row] += color + letter[row] + " "
		}
	}
	for _, line := range rows {
		b.WriteString(bold + line + reset + "\n")
	}

	b.WriteString("\n")
	b.WriteString(bold + watchGreen + "procwatch" + reset + "  •  process resource monitor\n\n")

	return b.String()
}
