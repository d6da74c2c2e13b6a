package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nidhi-labs/nidhi/internal/api"
	"github.com/nidhi-labs/nidhi/internal/linkflow"
)

// ---------------------------------------------------------------------------
// Async commands. Each runs one backend call off the event loop and reports
// back with a done-message; the HTTP client carries its own timeout.
// ---------------------------------------------------------------------------

func (m Model) resolveStatusCmd(seq int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		status, err := client.Status(context.Background())
		return statusResolvedMsg{seq: seq, status: status, err: err}
	}
}

func (m Model) createLinkSessionCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		outcome, err := client.CreateLinkSession(context.Background())
		return linkSessionMsg{outcome: outcome, err: err}
	}
}

func (m Model) authorizeCmd(token string, inst linkflow.Institution) tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		result, err := provider.Authorize(context.Background(), token, inst)
		return authorizeDoneMsg{result: result, err: err}
	}
}

func (m Model) linkBankCmd(result linkflow.Result) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		accounts := make([]api.LinkedAccount, 0, len(result.Accounts))
		for _, a := range result.Accounts {
			accounts = append(accounts, api.LinkedAccount{ID: a.ID, Name: a.Name})
		}
		res, err := client.LinkBank(context.Background(), api.LinkBankRequest{
			PublicToken:     result.PublicToken,
			InstitutionID:   result.InstitutionID,
			InstitutionName: result.InstitutionName,
			Accounts:        accounts,
		})
		return linkDoneMsg{instName: result.InstitutionName, result: res, err: err}
	}
}

func (m Model) accountsCmd(seq int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		accounts, err := client.Accounts(context.Background())
		return accountsMsg{seq: seq, accounts: accounts, err: err}
	}
}

func (m Model) transactionsCmd(seq int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		txs, err := client.Transactions(context.Background())
		return transactionsMsg{seq: seq, transactions: txs, err: err}
	}
}

func (m Model) disconnectCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return disconnectDoneMsg{err: client.Disconnect(context.Background())}
	}
}

func (m Model) cachedAnalysesCmd() tea.Cmd {
	snapshots := m.snapshots
	return func() tea.Msg {
		if snapshots == nil {
			return nil
		}
		analyses, err := snapshots.Analyses(context.Background())
		return analysesMsg{analyses: analyses, fromCache: true, err: err}
	}
}

func (m Model) liveAnalysesCmd() tea.Cmd {
	client := m.client
	snapshots := m.snapshots
	return func() tea.Msg {
		analyses, err := client.Analyses(context.Background())
		if err == nil && snapshots != nil {
			if serr := snapshots.ReplaceAnalyses(context.Background(), analyses); serr != nil {
				logErr("analyses snapshot", serr)
			}
		}
		return analysesMsg{analyses: analyses, err: err}
	}
}

func (m Model) taxSummaryCmd() tea.Cmd {
	client := m.client
	fy := m.cfg.UI.FinancialYear
	return func() tea.Msg {
		summary, err := client.DeductionsSummary(context.Background(), fy)
		return taxSummaryMsg{summary: summary, err: err}
	}
}
