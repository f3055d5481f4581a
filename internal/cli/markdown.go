// Package cli implements the overlap command-line subcommands.
package cli

import (
	"fmt"
	"strings"

	"github.com/aristath/etfoverlap/internal/modules/overlap"
	"github.com/aristath/etfoverlap/internal/modules/search"
	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// formatPercent renders a fractional weight as a percentage with two decimals.
func formatPercent(w float64) string {
	return decimal.NewFromFloat(w).Mul(hundred).StringFixed(2) + "%"
}

// escapeCell keeps provider names from breaking markdown tables.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// AnalysisMarkdown renders the matrix, the shared holdings of every pair and
// the summary statistics.
func AnalysisMarkdown(a *overlap.Analysis, s overlap.Summary) string {
	var b strings.Builder

	b.WriteString("# ETF overlap\n\n")

	b.WriteString("| |")
	for _, t := range a.Tickers {
		fmt.Fprintf(&b, " %s |", escapeCell(t))
	}
	b.WriteString("\n|---|")
	for range a.Tickers {
		b.WriteString("---:|")
	}
	b.WriteString("\n")
	for i, row := range a.OverlapMatrix {
		fmt.Fprintf(&b, "| **%s** |", escapeCell(a.Tickers[i]))
		for _, cell := range row {
			fmt.Fprintf(&b, " %s (%d) |", formatPercent(cell.Weight), cell.Count)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n## Funds\n\n| Ticker | Name | Currency | Top holdings | Coverage |\n|---|---|---|---:|---:|\n")
	for _, c := range s.Coverage {
		info := a.ETFInfo[c.Ticker]
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
			escapeCell(c.Ticker), escapeCell(info.LongName), info.Currency, c.Holdings, formatPercent(c.Weight))
	}

	for _, p := range s.Pairs {
		i, j := indexOf(a.Tickers, p.A), indexOf(a.Tickers, p.B)
		cell := a.OverlapMatrix[i][j]
		fmt.Fprintf(&b, "\n## %s / %s: %s\n\n", escapeCell(p.A), escapeCell(p.B), formatPercent(p.Weight))
		if len(cell.Common) == 0 {
			b.WriteString("No shared holdings.\n")
			continue
		}
		fmt.Fprintf(&b, "| Symbol | Name | %s | %s |\n|---|---|---:|---:|\n", escapeCell(p.A), escapeCell(p.B))
		for _, c := range cell.Common {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				escapeCell(c.Symbol), escapeCell(c.Name), formatPercent(c.WeightA), formatPercent(c.WeightB))
		}
	}

	b.WriteString("\n## Summary\n\n")
	if s.MostOverlap == nil {
		b.WriteString("Only one fund; nothing to compare.\n")
	} else {
		fmt.Fprintf(&b, "- Mean pairwise overlap: %s\n", formatPercent(s.MeanOverlap))
		fmt.Fprintf(&b, "- Most overlapping: %s / %s at %s (%d shared)\n",
			s.MostOverlap.A, s.MostOverlap.B, formatPercent(s.MostOverlap.Weight), s.MostOverlap.Count)
	}

	return b.String()
}

// SearchMarkdown renders ETF search matches as a table.
func SearchMarkdown(query string, matches []search.ETFMatch) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No ETFs found for '%s'.\n", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d ETFs for '%s':\n\n| Symbol | Name | Exchange |\n|---|---|---|\n", len(matches), query)
	for _, m := range matches {
		name := m.LongName
		if name == "" {
			name = m.ShortName
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", escapeCell(m.Symbol), escapeCell(name), escapeCell(m.Exchange))
	}
	return b.String()
}

// render returns md styled for the terminal, or unchanged when plain is set.
func render(md string, plain bool) (string, error) {
	if plain {
		return md, nil
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

func indexOf(tickers []string, t string) int {
	for i, x := range tickers {
		if x == t {
			return i
		}
	}
	return -1
}
