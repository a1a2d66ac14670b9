// Package logoverlay shows the tail of the debug log on top of the grid.
// Lines arrive through Append, fed from a log.LogListener by the app.
package logoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/gridline/internal/log"
	"github.com/zjrosen/gridline/internal/ui/overlay"
	"github.com/zjrosen/gridline/internal/ui/styles"
)

const (
	maxEntries = 500
	maxHeight  = 25
	minHeight  = 5
	maxWidth   = 160
	minWidth   = 40
)

// CloseMsg is sent when the overlay closes itself.
type CloseMsg struct{}

// Model is the log overlay state.
type Model struct {
	visible  bool
	minLevel log.Level
	entries  []string
	dropped  int64
	width    int
	height   int
	viewport viewport.Model
}

// New creates a hidden overlay showing every level.
func New() Model {
	return Model{minLevel: log.LevelDebug}
}

// Append records a log line, dropping the oldest past the ring size.
func (m *Model) Append(line string) {
	line = strings.TrimSuffix(line, "\n")
	if line == "" {
		return
	}
	m.entries = append(m.entries, line)
	if over := len(m.entries) - maxEntries; over > 0 {
		m.entries = append(m.entries[:0], m.entries[over:]...)
	}
	if m.visible {
		follow := m.viewport.AtBottom()
		m.refresh()
		if follow {
			m.viewport.GotoBottom()
		}
	}
}

// SetDropped records how many log lines never reached the overlay
// because its subscription was full.
func (m *Model) SetDropped(n int64) { m.dropped = n }

// Len returns the number of buffered lines.
func (m Model) Len() int { return len(m.entries) }

// Update handles keys while visible.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			m.entries = nil
			m.refresh()
		case "d":
			m.setLevel(log.LevelDebug)
		case "i":
			m.setLevel(log.LevelInfo)
		case "w":
			m.setLevel(log.LevelWarn)
		case "e":
			m.setLevel(log.LevelError)
		case "j", "down":
			m.viewport.ScrollDown(1)
		case "k", "up":
			m.viewport.ScrollUp(1)
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		case "ctrl+x", "esc":
			m.visible = false
			return m, func() tea.Msg { return CloseMsg{} }
		}
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m *Model) setLevel(l log.Level) {
	m.minLevel = l
	m.refresh()
	m.viewport.GotoBottom()
}

// View renders the framed log box, or nothing while hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	body := m.viewport.View() + "\n" + m.filterHint()
	hint := "esc close"
	if m.dropped > 0 {
		hint = fmt.Sprintf("%d dropped · %s", m.dropped, hint)
	}
	return styles.Frame{
		Title:   "Logs",
		Hint:    hint,
		Width:   m.boxWidth(),
		Height:  m.viewport.Height + 3,
		Focused: true,
	}.Render(body)
}

// Overlay centres the box on bg while visible.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// Visible returns whether the overlay is showing.
func (m Model) Visible() bool { return m.visible }

// Toggle flips visibility, jumping to the newest line when opening.
func (m *Model) Toggle() {
	m.visible = !m.visible
	if m.visible {
		m.refresh()
		m.viewport.GotoBottom()
	}
}

// Hide closes the overlay.
func (m *Model) Hide() { m.visible = false }

// SetSize updates the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.refresh()
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, maxWidth), minWidth)
}

func (m *Model) refresh() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// border (2) and hint line (1)
	h := max(min(maxHeight, m.height-5), minHeight)
	w := m.boxWidth() - 2
	if m.viewport.Width != w || m.viewport.Height != h {
		m.viewport = viewport.New(w, h)
	}
	m.viewport.SetContent(m.content(w))
}

func (m Model) content(width int) string {
	var lines []string
	for _, e := range m.entries {
		if levelOf(e) >= m.minLevel {
			lines = append(lines, colorize(e, width))
		}
	}
	if len(lines) == 0 {
		return lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true).Render("No logs to display")
	}
	return strings.Join(lines, "\n")
}

// levelOf reads the level tag written by log.Format. Untagged lines count as errors
// so they are never filtered out.
func levelOf(entry string) log.Level {
	switch {
	case strings.Contains(entry, "[DEBUG]"):
		return log.LevelDebug
	case strings.Contains(entry, "[INFO]"):
		return log.LevelInfo
	case strings.Contains(entry, "[WARN]"):
		return log.LevelWarn
	default:
		return log.LevelError
	}
}

func colorize(entry string, width int) string {
	entry = ansi.Truncate(entry, width, "…")
	var color lipgloss.TerminalColor
	switch levelOf(entry) {
	case log.LevelDebug:
		color = styles.TextMutedColor
	case log.LevelInfo:
		color = styles.ToastBorderInfoColor
	case log.LevelWarn:
		color = styles.StatusWarningColor
	default:
		color = styles.StatusErrorColor
	}
	return lipgloss.NewStyle().Foreground(color).Render(entry)
}

func (m Model) filterHint() string {
	hint := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	active := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)
	parts := []string{hint.Render("[c] clear")}
	for _, f := range []struct {
		label string
		level log.Level
	}{
		{"[d] debug", log.LevelDebug},
		{"[i] info", log.LevelInfo},
		{"[w] warn", log.LevelWarn},
		{"[e] error", log.LevelError},
	} {
		if f.level == m.minLevel {
			parts = append(parts, active.Render(f.label))
		} else {
			parts = append(parts, hint.Render(f.label))
		}
	}
	return strings.Join(parts, "  ")
}
