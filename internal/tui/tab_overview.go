package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/snowplan/internal/cli"
	"github.com/theirongolddev/snowplan/internal/tui/components"
	"github.com/theirongolddev/snowplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	sum := a.summary

	freedom := sum.FreedomDate.Format("Jan 2006")
	freedomNote := ""
	if !sum.Cleared {
		freedom = "—"
		freedomNote = "cap reached"
	}

	cards := []struct{ Label, Value, Note string }{
		{"Debt-free", freedom, freedomNote},
		{"Duration", cli.FormatMonths(sum.MonthsToClear), fmt.Sprintf("%d payments", sum.MonthsToClear)},
		{"Total interest", cli.FormatMoney(sum.TotalInterest), ""},
		{"Total paid", cli.FormatMoney(sum.TotalPaid), cli.FormatMoney(sum.MonthlyPayment) + "/mo avg"},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Balance over time
	months := a.result.Months
	values := make([]float64, len(months))
	labels := make([]string, len(months))
	for i, m := range months {
		values[i] = m.Balance
		labels[i] = m.Date.Format("Jan 06")
	}

	innerW := components.CardInnerWidth(cw)
	chart := components.BarChart(values, labels, innerW, 10)
	b.WriteString(components.ContentCard("Remaining Balance", chart, cw))

	// Milestones: months where something was cleared
	var milestones strings.Builder
	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	nameStyle := lipgloss.NewStyle().Foreground(t.Green)
	count := 0
	for _, m := range months {
		for _, name := range m.PaidOffDebts {
			milestones.WriteString(dateStyle.Render(m.Date.Format("Jan 2006")))
			milestones.WriteString("  ")
			milestones.WriteString(nameStyle.Render(truncStr(name, innerW-12) + " cleared"))
			milestones.WriteString("\n")
			count++
		}
	}
	if count > 0 {
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Milestones", strings.TrimRight(milestones.String(), "\n"), cw))
	}

	return b.String()
}
