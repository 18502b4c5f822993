package ui

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	changedSymbol = "◆"
	defaultSymbol = "◇"
	separator     = " · "
	borderTop     = "┌"
	borderSide    = "│"
	borderBottom  = "└"
)

func PanelTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	green := lipgloss.Color("2")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.SetString(changedSymbol + " ").Foreground(green)
	return t
}

// Field is one row of a panel. Changed rows differ from the page or
// settings default and are drawn highlighted.
type Field struct {
	Label   string
	Value   string
	Changed bool
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

func highlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

// RenderPanel draws fields inside a left border. Fields with an empty value
// are omitted.
func RenderPanel(title string, fields []Field) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		b.WriteString(border.Render(borderSide))
		b.WriteString(" ")
		b.WriteString(renderField(f))
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}

func renderField(f Field) string {
	if f.Changed {
		return highlightStyle().Render(changedSymbol + " " + f.Label + separator + f.Value)
	}
	return defaultSymbol + " " + f.Label + separator + f.Value
}
