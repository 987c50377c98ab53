package cli

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/domain"
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fabd2f"))
	styleOK     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c"))
)

// renderTable aligns rows under headers with a separator line. Widths are
// measured on visible characters so styled cells line up.
func renderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	const colGap = 2

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style(cell))
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return styleHeader.Render(s) })
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	writeRow(sep, func(s string) string { return styleDim.Render(s) })
	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}

func contactRows(contacts []domain.Contact) [][]string {
	rows := make([][]string, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, []string{c.Name, c.Role, c.Company, c.Email, c.Instagram})
	}
	return rows
}

func clientRows(clients []domain.Client) [][]string {
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{c.BusinessName, c.Niche, c.Location, c.ContactName, c.Email, c.Instagram})
	}
	return rows
}

var (
	contactHeaders = []string{"Nome", "Cargo", "Empresa", "Email", "Instagram"}
	clientHeaders  = []string{"Empresa", "Nicho", "Localização", "Contato", "Email", "Instagram"}
)

// renderMarkdown formats generated markdown for the terminal.
func renderMarkdown(text string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}
