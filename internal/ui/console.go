// Package ui holds the console helpers every command prints through, so
// progress lines, results and failures look the same across commands.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Console writes styled status lines. Styling is dropped when Out is not a
// terminal.
type Console struct {
	Out io.Writer

	styled bool

	errorStyle   lipgloss.Style
	warnStyle    lipgloss.Style
	successStyle lipgloss.Style
	infoStyle    lipgloss.Style
	dimStyle     lipgloss.Style
	boldStyle    lipgloss.Style
}

// New creates a Console writing to out.
func New(out io.Writer) *Console {
	c := &Console{Out: out, styled: isTerminal(out)}
	if !c.styled {
		return c
	}
	c.errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D00000", Dark: "#FF5555"}).
		Bold(true)
	c.warnStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFAA00"})
	c.successStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#008000", Dark: "#55FF55"})
	c.infoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#5599FF"})
	c.dimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"})
	c.boldStyle = lipgloss.NewStyle().Bold(true)
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) render(style lipgloss.Style, s string) string {
	if !c.styled {
		return s
	}
	return style.Render(s)
}

// Header prints a bold section title.
func (c *Console) Header(title string) {
	fmt.Fprintln(c.Out, c.render(c.boldStyle, title))
}

// Info prints a progress line.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.Out, c.render(c.infoStyle, msg))
}

// Item prints an indented line.
func (c *Console) Item(msg string) {
	fmt.Fprintf(c.Out, "  %s\n", msg)
}

// KeyValue prints an indented key and value.
func (c *Console) KeyValue(key string, value any) {
	fmt.Fprintf(c.Out, "  %-20s %v\n", key+":", value)
}

// Success prints a success line.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.Out, c.render(c.successStyle, msg))
}

// Warn prints a warning line.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.Out, c.render(c.warnStyle, "  - "+msg))
}

// Error prints an error headline.
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.Out, c.render(c.errorStyle, msg))
}

// Trace prints a diagnostic stack trace in a dimmed style.
func (c *Console) Trace(trace string) {
	trace = strings.TrimRight(trace, "\n")
	if trace == "" {
		return
	}
	fmt.Fprintln(c.Out, c.render(c.dimStyle, "StackTrace:"))
	for _, line := range strings.Split(trace, "\n") {
		fmt.Fprintln(c.Out, c.render(c.dimStyle, line))
	}
}
