package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/cashmonitor-dev/cashmonitor/internal/model"
)

var (
	styleHeader  = lipgloss.NewStyle().Bold(true)
	styleIncome  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
	styleExpense = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8892b0"))
)

// fmtMoney renders an amount with the configured currency code.
func fmtMoney(d decimal.Decimal, currency string) string {
	return d.StringFixed(2) + " " + currency
}

// fmtSigned prefixes positive amounts with "+".
func fmtSigned(d decimal.Decimal, currency string) string {
	s := fmtMoney(d, currency)
	if !d.IsNegative() {
		return "+" + s
	}
	return s
}

// styleFor picks the income/expense color for a transaction kind.
func styleFor(kind model.Kind) lipgloss.Style {
	if kind == model.KindIncome {
		return styleIncome
	}
	return styleExpense
}

// styleBalance colors a net balance by sign.
func styleBalance(d decimal.Decimal) lipgloss.Style {
	if d.IsNegative() {
		return styleExpense
	}
	return styleIncome
}

// renderRows prints aligned columns with a styled header row.
func renderRows(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for i, h := range header {
		b.WriteString(styleHeader.Render(pad(h, widths[i])))
		if i < len(header)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// pad right-pads styled text to a display width.
func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// percent renders a ratio like 0.3 as "30.0 %".
func percent(ratio decimal.Decimal) string {
	return fmt.Sprintf("%s %%", ratio.Mul(decimal.NewFromInt(100)).StringFixed(1))
}
