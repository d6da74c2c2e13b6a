package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var noticeLifetime = 5 * time.Second

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarning
	noticeError
)

// notice is the single transient status line shown under the header. Only
// one can be visible at a time; a new one replaces the old and restarts the
// expiry clock.
type notice struct {
	kind noticeKind
	text string
}

// notify replaces the current notice and schedules its expiry. The sequence
// number invalidates timers belonging to notices that have since been
// replaced, so a replacement always gets its full lifetime.
func (m *Model) notify(kind noticeKind, text string) tea.Cmd {
	m.noticeSeq++
	seq := m.noticeSeq
	m.notice = &notice{kind: kind, text: text}
	return tea.Tick(noticeLifetime, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (m *Model) handleNoticeExpired(msg noticeExpiredMsg) {
	if msg.seq == m.noticeSeq {
		m.notice = nil
	}
}

func (n *notice) render() string {
	if n == nil {
		return ""
	}
	switch n.kind {
	case noticeSuccess:
		return noticeSuccessStyle.Render(n.text)
	case noticeWarning:
		return noticeWarningStyle.Render(n.text)
	case noticeError:
		return noticeErrorStyle.Render(n.text)
	default:
		return noticeInfoStyle.Render(n.text)
	}
}
