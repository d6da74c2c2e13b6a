package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nidhi-labs/nidhi/internal/linkflow"
)

// ---------------------------------------------------------------------------
// Institution picker (implements list.Item)
// ---------------------------------------------------------------------------

type instItem struct {
	inst linkflow.Institution
}

func (i instItem) Title() string       { return i.inst.Name }
func (i instItem) Description() string { return "" }
func (i instItem) FilterValue() string { return i.inst.Name }

type instDelegate struct{}

func (d instDelegate) Height() int  { return 1 }
func (d instDelegate) Spacing() int { return 0 }
func (d instDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}
func (d instDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(instItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = cursorStyle.Render("> ")
	}
	fmt.Fprint(w, padRight(prefix+entry.inst.Name, m.Width()))
}

func (m *Model) setInstItems(query string) {
	institutions := m.provider.Institutions(query)
	items := make([]list.Item, 0, len(institutions))
	for _, inst := range institutions {
		items = append(items, instItem{inst: inst})
	}
	m.instList.SetItems(items)
}

// ---------------------------------------------------------------------------
// Picker input
// ---------------------------------------------------------------------------

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// Walking away consumes the session; a fresh link attempt has to
		// mint a new token.
		if m.session != nil {
			m.session.Consume()
		}
		m.pickerOpen = false
		m.linking = false
		return m, nil
	case "enter":
		return m.selectInstitution()
	case "backspace":
		if m.instQuery != "" {
			m.instQuery = m.instQuery[:len(m.instQuery)-1]
			m.setInstItems(m.instQuery)
			m.instList.Select(0)
		}
		return m, nil
	case "up", "down":
		var cmd tea.Cmd
		m.instList, cmd = m.instList.Update(msg)
		return m, cmd
	}

	if msg.Type == tea.KeyRunes {
		m.instQuery += string(msg.Runes)
		m.setInstItems(m.instQuery)
		m.instList.Select(0)
		return m, nil
	}
	return m, nil
}

func (m Model) selectInstitution() (tea.Model, tea.Cmd) {
	item, ok := m.instList.SelectedItem().(instItem)
	if !ok {
		return m, m.notify(noticeInfo, "No bank matches that search.")
	}
	if m.session == nil || m.session.Consumed() {
		m.pickerOpen = false
		m.linking = false
		return m, nil
	}
	token := m.session.Token
	m.session.Consume()
	m.pickerOpen = false
	cmd := m.notify(noticeInfo, fmt.Sprintf("Authorizing with %s...", item.inst.Name))
	return m, tea.Batch(cmd, m.authorizeCmd(token, item.inst))
}

func (m Model) pickerView() string {
	prompt := mutedStyle.Render("Search: ") + m.instQuery + cursorStyle.Render("▌")
	return prompt + "\n\n" + m.instList.View()
}
