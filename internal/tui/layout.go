package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var tabNames = []string{"Dashboard", "Banking", "Compliance"}

// ---------------------------------------------------------------------------
// Chrome rendering
// ---------------------------------------------------------------------------

func renderHeader(name string, activeTab, width int) string {
	app := headerAppStyle.Render(name)

	var tabs []string
	for i, tab := range tabNames {
		if i == activeTab {
			tabs = append(tabs, activeTabStyle.Render(tab))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tab))
		}
	}
	line := app + "  " + strings.Join(tabs, " ")
	if width <= 0 {
		return line
	}
	return padRight(line, width)
}

func (m Model) renderFooter(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+" "+helpStyle.Render(h.Desc))
	}
	content := strings.Join(parts, "  ")
	if m.width == 0 {
		return content
	}
	return padRight(content, m.width)
}

func (m Model) renderSection(title, content string) string {
	contentWidth := m.sectionContentWidth()
	header := padRight(sectionTitleStyle.Render(title), contentWidth)
	separator := mutedStyle.Render(strings.Repeat("─", contentWidth))
	section := sectionBoxStyle.Width(m.sectionWidth()).Render(header + "\n" + separator + "\n" + content)
	if m.width == 0 {
		return section
	}
	return lipgloss.Place(m.width, lipgloss.Height(section), lipgloss.Center, lipgloss.Top, section)
}

func (m Model) sectionWidth() int {
	if m.width == 0 {
		return 80
	}
	width := m.width - 4
	if width < 20 {
		width = m.width
	}
	return width
}

func (m Model) sectionContentWidth() int {
	frameH := sectionBoxStyle.GetHorizontalFrameSize()
	contentWidth := m.sectionWidth() - frameH
	if contentWidth < 1 {
		contentWidth = 1
	}
	return contentWidth
}

func (m Model) placeWithFooter(body, noticeLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + noticeLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + noticeLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Full-width lines avoid ghosting from the previous frame.
	lines := splitLines(main)
	for i, line := range lines {
		lines[i] = padRight(line, m.width)
	}
	return strings.Join(lines, "\n") + "\n" + noticeLine + "\n" + footer
}

func (m Model) composeModal(base, noticeLine, footer, body string) string {
	modal := modalStyle.Render(body)
	if m.width == 0 || m.height == 0 {
		return base + "\n\n" + modal + "\n" + noticeLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	placed := lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, modal)
	return placed + "\n" + noticeLine + "\n" + footer
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
