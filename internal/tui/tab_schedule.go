package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/snowplan/internal/cli"
	"github.com/theirongolddev/snowplan/internal/tui/components"
	"github.com/theirongolddev/snowplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderScheduleTab(cw int) string {
	t := theme.Active

	innerW := components.CardInnerWidth(cw)
	colW := 11
	eventW := innerW - 8 - colW*4 - 5
	if eventW < 10 {
		eventW = 10
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	eventStyle := lipgloss.NewStyle().Foreground(t.Green)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-8s %*s %*s %*s %*s %-*s",
		"Month", colW, "Payment", colW, "Interest", colW, "Principal", colW, "Balance", eventW, "")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")

	for _, m := range a.result.Months {
		event := ""
		if len(m.PaidOffDebts) > 0 {
			event = truncStr(strings.Join(m.PaidOffDebts, ", ")+" ✓", eventW)
		} else if len(m.PaidOffBuckets) > 0 {
			event = truncStr(fmt.Sprintf("%d bucket(s) ✓", len(m.PaidOffBuckets)), eventW)
		}

		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-8s", m.Date.Format("2006-01"))))
		b.WriteString(rowStyle.Render(fmt.Sprintf(" %*s %*s %*s %*s ",
			colW, cli.FormatMoney(m.Payment),
			colW, cli.FormatMoney(m.Interest),
			colW, cli.FormatMoney(m.Principal),
			colW, cli.FormatMoney(m.Balance))))
		b.WriteString(eventStyle.Render(event))
		b.WriteString("\n")
	}

	return components.ContentCard(
		fmt.Sprintf("Schedule · %d months", a.result.TotalMonths),
		strings.TrimRight(b.String(), "\n"), cw)
}
