package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nidhi-labs/nidhi/internal/banking"
)

// ---------------------------------------------------------------------------
// Banking tab: key handling
// ---------------------------------------------------------------------------

func (m Model) updateBankingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Connect):
		return m.startLink()
	case key.Matches(msg, m.keys.Accounts):
		if m.loadingAccounts {
			return m, nil
		}
		m.bankPane = paneAccounts
		m.loadingAccounts = true
		m.accountsSeq++
		return m, m.accountsCmd(m.accountsSeq)
	case key.Matches(msg, m.keys.Transactions):
		if m.loadingTransactions {
			return m, nil
		}
		m.bankPane = paneTransactions
		m.loadingTransactions = true
		m.transactionsSeq++
		return m, m.transactionsCmd(m.transactionsSeq)
	case key.Matches(msg, m.keys.Refresh):
		return m.refreshBanking()
	case key.Matches(msg, m.keys.Disconnect):
		if !m.conn.IsConnected || m.disconnecting {
			return m, nil
		}
		m.confirmDisconnect = true
		return m, nil
	case key.Matches(msg, m.keys.UpDown):
		if m.bankPane == paneTransactions {
			m.moveTxCursor(msg.String())
		}
		return m, nil
	}
	return m, nil
}

func (m Model) startLink() (tea.Model, tea.Cmd) {
	if m.linking {
		return m, nil
	}
	if m.conn.IsConnected && !m.conn.IsDemoMode {
		return m, m.notify(noticeInfo, "A bank is already connected. Press x to disconnect first.")
	}
	m.linking = true
	cmd := m.notify(noticeInfo, "Starting bank link...")
	return m, tea.Batch(cmd, m.createLinkSessionCmd())
}

func (m Model) refreshBanking() (tea.Model, tea.Cmd) {
	m.statusSeq++
	cmds := []tea.Cmd{m.resolveStatusCmd(m.statusSeq)}
	if m.bankPane == paneTransactions {
		if !m.loadingTransactions {
			m.loadingTransactions = true
			m.transactionsSeq++
			cmds = append(cmds, m.transactionsCmd(m.transactionsSeq))
		}
	} else if !m.loadingAccounts {
		m.loadingAccounts = true
		m.accountsSeq++
		cmds = append(cmds, m.accountsCmd(m.accountsSeq))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) moveTxCursor(dir string) {
	switch dir {
	case "up":
		if m.txCursor > 0 {
			m.txCursor--
		}
	case "down":
		limit := min(len(m.transactions), maxShownTransactions) - 1
		if m.txCursor < limit {
			m.txCursor++
		}
	}
}

// ---------------------------------------------------------------------------
// Disconnect confirmation
// ---------------------------------------------------------------------------

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmDisconnect = false
		m.disconnecting = true
		return m, m.disconnectCmd()
	case "n", "N", "esc":
		m.confirmDisconnect = false
		return m, nil
	case "ctrl+c", "q":
		return m, tea.Quit
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Message handlers
// ---------------------------------------------------------------------------

func (m Model) handleStatusResolved(msg statusResolvedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.statusSeq {
		return m, nil
	}
	if msg.err != nil {
		logErr("connection status", msg.err)
		m.conn = banking.Disconnected()
		m.connKnown = true
		return m, nil
	}
	m.conn = msg.status
	m.connKnown = true
	if m.conn.IsConnected && !m.loadingAccounts {
		m.loadingAccounts = true
		m.accountsSeq++
		return m, m.accountsCmd(m.accountsSeq)
	}
	return m, nil
}

func (m Model) handleLinkSession(msg linkSessionMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.linking = false
		cmd := m.notify(noticeError, fmt.Sprintf("Bank linking unavailable: %v. Showing demo data.", msg.err))
		return m, tea.Batch(cmd, m.fetchAccountsFallback())
	}
	switch msg.outcome.Kind {
	case banking.OutcomeRealSession:
		m.session = banking.NewLinkSession(msg.outcome.LinkToken)
		if !m.provider.Ready() {
			m.linking = false
			m.session.Consume()
			cmd := m.notify(noticeError, "Link provider is not available right now.")
			return m, tea.Batch(cmd, m.fetchAccountsFallback())
		}
		return m.openLinkFlow()
	case banking.OutcomeDemoWithError:
		m.linking = false
		cmd := m.notify(noticeWarning, fmt.Sprintf("Bank provider not configured: %s. Showing demo data.", msg.outcome.Reason))
		return m, tea.Batch(cmd, m.fetchAccountsFallback())
	default: // OutcomeDemoClean
		m.linking = false
		cmd := m.notify(noticeInfo, "Demo mode active. Showing sample data.")
		return m, tea.Batch(cmd, m.fetchAccountsFallback())
	}
}

// openLinkFlow opens the institution picker for the current session. The
// session gate makes this a no-op if the flow was already opened, so a
// duplicate message can never surface the picker twice.
func (m Model) openLinkFlow() (tea.Model, tea.Cmd) {
	if m.session == nil || !m.session.OpenFlow() {
		return m, nil
	}
	m.pickerOpen = true
	m.instQuery = ""
	m.setInstItems("")
	m.instList.Select(0)
	return m, nil
}

func (m *Model) fetchAccountsFallback() tea.Cmd {
	m.loadingAccounts = true
	m.accountsSeq++
	return m.accountsCmd(m.accountsSeq)
}

func (m Model) handleAuthorizeDone(msg authorizeDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.linking = false
		cmd := m.notify(noticeError, fmt.Sprintf("Bank authorization failed: %v", msg.err))
		return m, tea.Batch(cmd, m.fetchAccountsFallback())
	}
	return m, m.linkBankCmd(msg.result)
}

func (m Model) handleLinkDone(msg linkDoneMsg) (tea.Model, tea.Cmd) {
	m.linking = false
	if msg.err != nil {
		return m, m.notify(noticeError, fmt.Sprintf("Could not finish linking: %v", msg.err))
	}
	name := msg.result.InstitutionName
	if name == "" {
		name = msg.instName
	}
	if name == "" {
		name = "Bank"
	}
	cmd := m.notify(noticeSuccess, fmt.Sprintf("✓ %s connected", name))

	// Refresh only after the exchange resolved so the fetches see the new
	// connection, never the pre-link state.
	m.statusSeq++
	m.accountsSeq++
	m.loadingAccounts = true
	m.bankPane = paneAccounts
	return m, tea.Batch(cmd, m.resolveStatusCmd(m.statusSeq), m.accountsCmd(m.accountsSeq))
}

func (m Model) handleAccounts(msg accountsMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.accountsSeq {
		return m, nil
	}
	m.loadingAccounts = false
	if msg.err != nil {
		logErr("accounts fetch", msg.err)
		return m, m.notify(noticeError, "Could not load accounts.")
	}
	m.accounts = msg.accounts
	return m, nil
}

func (m Model) handleTransactions(msg transactionsMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.transactionsSeq {
		return m, nil
	}
	m.loadingTransactions = false
	if msg.err != nil {
		logErr("transactions fetch", msg.err)
		return m, m.notify(noticeError, "Could not load transactions.")
	}
	m.transactions = msg.transactions
	m.txCursor = 0
	return m, nil
}

func (m Model) handleDisconnectDone(msg disconnectDoneMsg) (tea.Model, tea.Cmd) {
	m.disconnecting = false
	if msg.err != nil {
		return m, m.notify(noticeError, fmt.Sprintf("Disconnect failed: %v", msg.err))
	}
	m.conn = banking.Disconnected()
	m.connKnown = true
	m.accounts = nil
	m.transactions = nil
	m.txCursor = 0
	m.bankPane = paneAccounts
	return m, m.notify(noticeSuccess, "Bank disconnected.")
}
