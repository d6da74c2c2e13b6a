package tui

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Dashboard tab
// ---------------------------------------------------------------------------

func (m Model) dashboardView() string {
	var profile strings.Builder
	if m.profile.CompanyName != "" {
		fmt.Fprintf(&profile, "%s", m.profile.CompanyName)
		if m.profile.Industry != "" {
			fmt.Fprintf(&profile, "  %s", mutedStyle.Render(m.profile.Industry))
		}
		fmt.Fprintf(&profile, "\n%s", statusStyle.Render(m.profile.Email))
	} else {
		profile.WriteString(mutedStyle.Render("No profile on record."))
	}

	company := m.renderSection("Company", profile.String())
	analyses := m.renderSection("Statement Analyses", m.renderAnalyses())
	return company + "\n\n" + analyses
}

func (m Model) renderAnalyses() string {
	if len(m.analyses) == 0 && !m.analysesFromAPI {
		return statusStyle.Render("Loading analyses...")
	}
	if len(m.analyses) == 0 {
		return mutedStyle.Render("No statement analyses yet. Upload a statement on the web dashboard.")
	}

	var b strings.Builder
	for i, a := range m.analyses {
		if i > 0 {
			b.WriteString("\n")
		}
		score := fmt.Sprintf("%5.1f", a.HealthScore)
		switch strings.ToLower(a.RiskBand) {
		case "low":
			score = scoreGoodStyle.Render(score)
		case "medium":
			score = scoreWatchStyle.Render(score)
		default:
			score = scoreBadStyle.Render(score)
		}
		fmt.Fprintf(&b, "%s  %s  %s",
			score,
			padRight(a.FileName, 36),
			mutedStyle.Render(a.CreatedAt.Format("2006-01-02")))
	}
	if !m.analysesFromAPI {
		b.WriteString("\n\n" + mutedStyle.Render("(cached)"))
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// Banking tab
// ---------------------------------------------------------------------------

func (m Model) bankingView() string {
	conn := m.renderSection("Connection", m.renderConnection())

	var pane string
	if m.bankPane == paneTransactions {
		pane = m.renderSection("Transactions", m.renderTransactions())
	} else {
		pane = m.renderSection("Accounts", m.renderAccounts())
	}
	return conn + "\n\n" + pane
}

func (m Model) renderConnection() string {
	if !m.connKnown {
		return statusStyle.Render("Resolving connection status...")
	}
	if !m.conn.IsConnected {
		line := mutedStyle.Render("Not connected.") + "  " + statusStyle.Render("Press c to link your bank.")
		if m.conn.IsDemoMode {
			line += "  " + demoBadgeStyle.Render("[demo data]")
		}
		return line
	}

	name := m.conn.InstitutionName
	if name == "" {
		name = "Bank"
	}
	line := connectedStyle.Render("● Connected") + "  " + name
	if m.conn.IsDemoMode {
		line += "  " + demoBadgeStyle.Render("[demo]")
	}
	if m.conn.LastSyncedAt != nil {
		line += "\n" + mutedStyle.Render("Last synced "+m.conn.LastSyncedAt.Format("2006-01-02 15:04"))
	}
	return line
}

func (m Model) renderAccounts() string {
	if m.loadingAccounts && len(m.accounts) == 0 {
		return statusStyle.Render("Loading accounts...")
	}
	if len(m.accounts) == 0 {
		return mutedStyle.Render("No accounts to show. Press a to fetch.")
	}

	nameWidth := 28
	typeWidth := 12
	var b strings.Builder
	b.WriteString(statusStyle.Render(fmt.Sprintf("%-*s  %-*s  %s", nameWidth, "Account", typeWidth, "Type", "Balance")))
	for _, a := range m.accounts {
		amount := a.Balance.Amount.StringFixed(2) + " " + a.CurrencyCode()
		fmt.Fprintf(&b, "\n%s  %s  %s",
			padRight(a.Name, nameWidth),
			padRight(a.AccountType, typeWidth),
			amount)
	}
	return b.String()
}

// maxShownTransactions caps the pane at the ten most recent rows in the
// server's order; the full fetch stays in memory.
const maxShownTransactions = 10

func (m Model) renderTransactions() string {
	if m.loadingTransactions && len(m.transactions) == 0 {
		return statusStyle.Render("Loading transactions...")
	}
	if len(m.transactions) == 0 {
		return mutedStyle.Render("No transactions to show. Press t to fetch.")
	}

	shown := m.transactions
	if len(shown) > maxShownTransactions {
		shown = shown[:maxShownTransactions]
	}

	dateWidth := 12
	amountWidth := 14
	sym := m.cfg.UI.CurrencySymbol
	var b strings.Builder
	b.WriteString(statusStyle.Render(fmt.Sprintf("  %-*s  %-*s  %s", dateWidth, "Date", amountWidth, "Amount", "Description")))
	for i, t := range shown {
		cursor := "  "
		if i == m.txCursor {
			cursor = cursorStyle.Render("> ")
		}
		amount := padRight(sym+t.Amount.StringFixed(2), amountWidth)
		if t.IsDebit() {
			amount = debitStyle.Render(amount)
		} else {
			amount = creditStyle.Render(amount)
		}
		fmt.Fprintf(&b, "\n%s%s  %s  %s",
			cursor,
			padRight(t.Date, dateWidth),
			amount,
			t.Name)
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// Compliance tab
// ---------------------------------------------------------------------------

func (m Model) complianceView() string {
	return m.renderSection("Tax Deductions "+m.cfg.UI.FinancialYear, m.renderTaxSummary())
}

func (m Model) renderTaxSummary() string {
	if m.loadingTax {
		return statusStyle.Render("Loading deduction summary...")
	}
	if m.taxLoadError != "" {
		return noticeErrorStyle.Render(m.taxLoadError)
	}
	if !m.taxLoaded {
		return mutedStyle.Render("Switch to this tab to load the deduction summary.")
	}

	sym := m.cfg.UI.CurrencySymbol
	var b strings.Builder
	fmt.Fprintf(&b, "Total claimed    %s\n", sym+m.taxSummary.TotalDeductions.StringFixed(2))
	fmt.Fprintf(&b, "Eligible         %s\n", connectedStyle.Render(sym+m.taxSummary.EligibleDeductions.StringFixed(2)))
	if len(m.taxSummary.Deductions) == 0 {
		b.WriteString("\n" + mutedStyle.Render("No deductions recorded for this financial year."))
		return b.String()
	}
	b.WriteString("\n")
	for _, d := range m.taxSummary.Deductions {
		mark := mutedStyle.Render("·")
		if d.IsEligible {
			mark = connectedStyle.Render("✓")
		}
		fmt.Fprintf(&b, "\n%s %-10s %s  %s",
			mark,
			d.Section,
			padRight(sym+d.Amount.StringFixed(2), 14),
			mutedStyle.Render(d.Description))
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// Disconnect confirmation
// ---------------------------------------------------------------------------

func (m Model) confirmView() string {
	name := m.conn.InstitutionName
	if name == "" {
		name = "your bank"
	}
	return confirmStyle.Render(fmt.Sprintf("Disconnect %s?\n\nAccounts and transactions will be cleared.\n\n%s / %s",
		name,
		noticeErrorStyle.Render("y: disconnect"),
		mutedStyle.Render("n: cancel")))
}
