package tui

import (
	"context"
	"database/sql"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) profileCmd() tea.Cmd {
	snapshots := m.snapshots
	return func() tea.Msg {
		if snapshots == nil {
			return nil
		}
		profile, err := snapshots.Profile(context.Background())
		return profileMsg{profile: profile, err: err}
	}
}

func (m Model) handleProfile(msg profileMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if !errors.Is(msg.err, sql.ErrNoRows) {
			logErr("profile load", msg.err)
		}
		return m, nil
	}
	m.profile = msg.profile
	return m, nil
}

// handleAnalyses merges the snapshot and live analysis lists. The snapshot
// paints first for a fast start; a live result always wins, and a snapshot
// arriving after the live fetch is discarded.
func (m Model) handleAnalyses(msg analysesMsg) (tea.Model, tea.Cmd) {
	if msg.fromCache {
		if msg.err != nil {
			logErr("analyses snapshot load", msg.err)
			return m, nil
		}
		if m.analysesFromAPI {
			return m, nil
		}
		m.analyses = msg.analyses
		return m, nil
	}

	m.loadingAnalyses = false
	if msg.err != nil {
		logErr("analyses fetch", msg.err)
		return m, nil
	}
	m.analyses = msg.analyses
	m.analysesFromAPI = true
	return m, nil
}

func (m Model) handleTaxSummary(msg taxSummaryMsg) (tea.Model, tea.Cmd) {
	m.loadingTax = false
	if msg.err != nil {
		logErr("deductions fetch", msg.err)
		m.taxLoadError = "Could not load the deduction summary."
		m.taxLoaded = true
		return m, nil
	}
	m.taxSummary = msg.summary
	m.taxLoadError = ""
	m.taxLoaded = true
	return m, nil
}
