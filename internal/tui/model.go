package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nidhi-labs/nidhi/internal/api"
	"github.com/nidhi-labs/nidhi/internal/banking"
	"github.com/nidhi-labs/nidhi/internal/config"
	"github.com/nidhi-labs/nidhi/internal/linkflow"
	"github.com/nidhi-labs/nidhi/internal/store"
)

const appName = "Nidhi"

// Tab indices
const (
	tabDashboard  = 0
	tabBanking    = 1
	tabCompliance = 2
	tabCount      = 3
)

// Banking tab panes
const (
	paneAccounts = iota
	paneTransactions
)

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type Model struct {
	client    *api.Client
	provider  linkflow.Provider
	snapshots *store.Store
	cfg       config.Config
	keys      keyMap

	width     int
	height    int
	activeTab int

	// Banking: connection state
	conn      banking.ConnectionStatus
	connKnown bool
	statusSeq int

	// Banking: link flow
	session    *banking.LinkSession
	linking    bool
	pickerOpen bool
	instList   list.Model
	instQuery  string

	// Banking: data panes
	bankPane            int
	accounts            []banking.BankAccount
	accountsSeq         int
	loadingAccounts     bool
	transactions        []banking.Transaction
	transactionsSeq     int
	loadingTransactions bool
	txCursor            int

	// Banking: disconnect
	confirmDisconnect bool
	disconnecting     bool

	// Dashboard
	profile         api.Profile
	analyses        []api.Analysis
	analysesFromAPI bool
	loadingAnalyses bool

	// Compliance
	taxSummary   api.DeductionSummary
	taxLoaded    bool
	loadingTax   bool
	taxLoadError string

	notice    *notice
	noticeSeq int
}

func New(client *api.Client, provider linkflow.Provider, snapshots *store.Store, cfg config.Config) Model {
	instList := list.New([]list.Item{}, instDelegate{}, 0, 0)
	instList.Title = "Select your bank"
	instList.Styles.Title = titleStyle
	instList.Styles.NoItems = lipgloss.NewStyle()
	instList.SetShowStatusBar(false)
	instList.SetFilteringEnabled(false)
	instList.SetShowHelp(false)
	instList.DisableQuitKeybindings()

	return Model{
		client:    client,
		provider:  provider,
		snapshots: snapshots,
		cfg:       cfg,
		keys:      newKeyMap(),
		instList:  instList,
	}
}

// ---------------------------------------------------------------------------
// Bubble Tea interface: Init / Update / View
// ---------------------------------------------------------------------------

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.resolveStatusCmd(m.statusSeq),
		m.profileCmd(),
		m.cachedAnalysesCmd(),
		m.liveAnalysesCmd(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusResolvedMsg:
		return m.handleStatusResolved(msg)
	case linkSessionMsg:
		return m.handleLinkSession(msg)
	case authorizeDoneMsg:
		return m.handleAuthorizeDone(msg)
	case linkDoneMsg:
		return m.handleLinkDone(msg)
	case accountsMsg:
		return m.handleAccounts(msg)
	case transactionsMsg:
		return m.handleTransactions(msg)
	case disconnectDoneMsg:
		return m.handleDisconnectDone(msg)
	case profileMsg:
		return m.handleProfile(msg)
	case analysesMsg:
		return m.handleAnalyses(msg)
	case taxSummaryMsg:
		return m.handleTaxSummary(msg)
	case noticeExpiredMsg:
		m.handleNoticeExpired(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
		return m, nil
	case tea.KeyMsg:
		if m.pickerOpen {
			return m.updatePicker(msg)
		}
		if m.confirmDisconnect {
			return m.updateConfirm(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

func (m Model) View() string {
	header := renderHeader(appName, m.activeTab, m.width)
	noticeLine := m.notice.render()
	footer := m.renderFooter(m.footerBindings())

	var body string
	switch m.activeTab {
	case tabDashboard:
		body = m.dashboardView()
	case tabBanking:
		body = m.bankingView()
	case tabCompliance:
		body = m.complianceView()
	default:
		body = m.dashboardView()
	}

	main := header + "\n\n" + body

	if m.pickerOpen {
		return m.composeModal(main, noticeLine, footer, m.pickerView())
	}
	if m.confirmDisconnect {
		return m.composeModal(main, noticeLine, footer, m.confirmView())
	}
	return m.placeWithFooter(main, noticeLine, footer)
}

// ---------------------------------------------------------------------------
// Key-input handling
// ---------------------------------------------------------------------------

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.activeTab = (m.activeTab + 1) % tabCount
		return m.enterTab()
	case key.Matches(msg, m.keys.PrevTab):
		m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		return m.enterTab()
	}

	switch m.activeTab {
	case tabBanking:
		return m.updateBankingKeys(msg)
	case tabDashboard:
		if key.Matches(msg, m.keys.Refresh) {
			if m.loadingAnalyses {
				return m, nil
			}
			m.loadingAnalyses = true
			return m, m.liveAnalysesCmd()
		}
	}
	return m, nil
}

// enterTab runs the lazy work a tab needs the first time it becomes active.
func (m Model) enterTab() (tea.Model, tea.Cmd) {
	if m.activeTab == tabCompliance && !m.taxLoaded && !m.loadingTax {
		m.loadingTax = true
		return m, m.taxSummaryCmd()
	}
	return m, nil
}

func (m Model) footerBindings() []key.Binding {
	if m.pickerOpen {
		return []key.Binding{m.keys.UpDown, m.keys.Enter, m.keys.Close, m.keys.Quit}
	}
	if m.confirmDisconnect {
		return []key.Binding{
			key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "cancel")),
		}
	}
	if m.activeTab == tabBanking {
		if m.conn.IsConnected {
			return []key.Binding{m.keys.NextTab, m.keys.Accounts, m.keys.Transactions, m.keys.Refresh, m.keys.Disconnect, m.keys.Quit}
		}
		return []key.Binding{m.keys.NextTab, m.keys.Connect, m.keys.Quit}
	}
	return m.keys.ShortHelp()
}

func (m *Model) resizeList() {
	if m.width == 0 || m.height == 0 {
		return
	}
	listWidth := min(60, m.width-6)
	if listWidth < 36 {
		listWidth = 36
	}
	m.instList.SetWidth(listWidth)
	m.instList.SetHeight(min(12, m.height-10))
}

func logErr(op string, err error) {
	log.Printf("%s: %v", op, err)
}
