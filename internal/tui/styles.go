package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
)

var (
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// Printer applies styles only in ModeStyled; in ModePlain text passes through.
type Printer struct {
	mode Mode
}

// NewPrinter returns a Printer for the given mode.
func NewPrinter(mode Mode) Printer {
	return Printer{mode: mode}
}

// Styled reports whether the printer emits ANSI styling.
func (p Printer) Styled() bool { return p.mode == ModeStyled }

func (p Printer) render(style lipgloss.Style, s string) string {
	if !p.Styled() {
		return s
	}
	return style.Render(s)
}

func (p Printer) Success(s string) string { return p.render(SuccessStyle, s) }
func (p Printer) Warning(s string) string { return p.render(WarningStyle, s) }
func (p Printer) Error(s string) string   { return p.render(ErrorStyle, s) }
func (p Printer) Muted(s string) string   { return p.render(MutedStyle, s) }

// Table renders rows under headers. Styled mode gets a rounded border and
// colored headers; plain mode gets a borderless, space-aligned layout.
func (p Printer) Table(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...)

	if p.Styled() {
		return t.
			Border(lipgloss.RoundedBorder()).
			BorderStyle(MutedStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return HeaderStyle
				}
				return CellStyle
			}).
			String()
	}

	return t.
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().PaddingRight(2)
		}).
		String()
}
