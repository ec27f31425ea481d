package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/snowplan/internal/cli"
	"github.com/theirongolddev/snowplan/internal/tui/components"
	"github.com/theirongolddev/snowplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBreakdownTab(cw int) string {
	t := theme.Active
	shares := a.summary.Buckets

	innerW := components.CardInnerWidth(cw)
	barW := 24
	nameW := innerW - barW - 8 - 12 - 7 - 4
	if nameW < 12 {
		nameW = 12
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	costStyle := lipgloss.NewStyle().Foreground(t.Orange)
	shareStyle := lipgloss.NewStyle().Foreground(t.Cyan)

	// Bucket colors cycle for visual distinction
	bucketColors := []lipgloss.Color{t.Accent, t.Blue, t.Yellow, t.Red, t.Green}
	nameStyles := make([]lipgloss.Style, len(bucketColors))
	for i, color := range bucketColors {
		nameStyles[i] = lipgloss.NewStyle().Foreground(color)
	}

	var maxInterest float64
	for _, s := range shares {
		if s.Interest > maxInterest {
			maxInterest = s.Interest
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %8s %12s %6s  %s",
		nameW, "Bucket", "APR", "Interest", "Share", "")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")

	for i, s := range shares {
		b.WriteString(nameStyles[i%len(bucketColors)].Render(fmt.Sprintf("%-*s", nameW, truncStr(s.Name, nameW))))
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" %8s", cli.FormatAPR(s.APR))))
		b.WriteString(costStyle.Render(fmt.Sprintf(" %12s", cli.FormatMoney(s.Interest))))
		b.WriteString(shareStyle.Render(fmt.Sprintf(" %5.1f%%", s.Percent)))
		b.WriteString("  ")
		b.WriteString(components.HBar(s.Interest, maxInterest, barW, bucketColors[i%len(bucketColors)]))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %8s", nameW, "TOTAL", "")))
	b.WriteString(costStyle.Render(fmt.Sprintf(" %12s", cli.FormatMoney(a.summary.TotalInterest))))

	return components.ContentCard("Interest by Bucket", b.String(), cw)
}
