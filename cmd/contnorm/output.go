package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/contnorm/ast"
	"github.com/wippyai/contnorm/normalize"
	"github.com/wippyai/contnorm/syntax"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type outputOptions struct {
	pretty bool
	stats  bool
	color  bool
}

func (o outputOptions) style(s lipgloss.Style, text string) string {
	if !o.color {
		return text
	}
	return s.Render(text)
}

func writeResult(w io.Writer, res normalize.Result, opts outputOptions) {
	fmt.Fprintln(w, opts.style(resultStyle, formatTree(res.Tree, opts.pretty)))
	if opts.stats {
		style := helpStyle
		if !res.Converged {
			style = warnStyle
		}
		fmt.Fprintln(w, opts.style(style, formatStats(res)))
	}
}

func formatTree(n ast.Node, pretty bool) string {
	if pretty {
		return syntax.Pretty(n)
	}
	return ast.Render(n)
}

func formatStats(res normalize.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, ";; %d iteration", res.Iterations)
	if res.Iterations != 1 {
		b.WriteString("s")
	}
	if res.Converged {
		b.WriteString(", converged")
	} else {
		b.WriteString(", not converged")
	}
	if len(res.Stalled) > 0 {
		fmt.Fprintf(&b, " (stalled: %s)", strings.Join(res.Stalled, ", "))
	}
	return b.String()
}
