// Package toaster provides a notification banner drawn over the grid.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/gridline/internal/ui/overlay"
	"github.com/zjrosen/gridline/internal/ui/styles"
)

// Style determines the visual appearance of the toast.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

// maxWidth bounds the banner; longer messages wrap.
const maxWidth = 60

// Model holds the toaster state. Each Show bumps a generation so a
// dismissal scheduled for an older toast leaves a newer one alone.
type Model struct {
	message string
	style   Style
	visible bool
	gen     int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays message and returns a command that dismisses it after d.
func (m Model) Show(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	m.message = message
	m.style = style
	m.visible = true
	m.gen++
	gen := m.gen
	return m, tea.Tick(d, func(time.Time) tea.Msg { return DismissMsg{gen: gen} })
}

// Update handles DismissMsg.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.gen == m.gen {
		m.visible = false
		m.message = ""
	}
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the text currently shown.
func (m Model) Message() string {
	return m.message
}

func (m Model) decoration() (lipgloss.TerminalColor, string) {
	switch m.style {
	case StyleError:
		return styles.ToastBorderErrorColor, "✗ "
	case StyleInfo:
		return styles.ToastBorderInfoColor, "• "
	case StyleWarn:
		return styles.ToastBorderWarnColor, "! "
	default:
		return styles.ToastBorderSuccessColor, "✓ "
	}
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}
	color, icon := m.decoration()
	return lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Render(wordwrap.String(icon+m.message, maxWidth))
}

// Overlay renders the toast bottom-center on top of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     1,
	}, m.View(), bg)
}

// DismissMsg hides the toast it was scheduled for.
type DismissMsg struct {
	gen int
}
