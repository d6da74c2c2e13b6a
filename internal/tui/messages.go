package tui

import (
	"github.com/nidhi-labs/nidhi/internal/api"
	"github.com/nidhi-labs/nidhi/internal/banking"
	"github.com/nidhi-labs/nidhi/internal/linkflow"
)

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type statusResolvedMsg struct {
	seq    int
	status banking.ConnectionStatus
	err    error
}

type linkSessionMsg struct {
	outcome banking.LinkOutcome
	err     error
}

type authorizeDoneMsg struct {
	result linkflow.Result
	err    error
}

type linkDoneMsg struct {
	instName string
	result   api.LinkBankResult
	err      error
}

type accountsMsg struct {
	seq      int
	accounts []banking.BankAccount
	err      error
}

type transactionsMsg struct {
	seq          int
	transactions []banking.Transaction
	err          error
}

type disconnectDoneMsg struct {
	err error
}

type profileMsg struct {
	profile api.Profile
	err     error
}

type analysesMsg struct {
	analyses  []api.Analysis
	fromCache bool
	err       error
}

type taxSummaryMsg struct {
	summary api.DeductionSummary
	err     error
}

type noticeExpiredMsg struct {
	seq int
}
