package api

import (
	"context"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Analysis is one scored statement analysis, as listed on the dashboard.
type Analysis struct {
	ID          int       `json:"id"`
	FileName    string    `json:"file_name"`
	HealthScore float64   `json:"health_score"`
	RiskBand    string    `json:"risk_band"`
	CreatedAt   time.Time `json:"created_at"`
}

// Analyses lists all statement analyses for the user, newest first.
func (c *Client) Analyses(ctx context.Context) ([]Analysis, error) {
	var resp struct {
		Analyses []Analysis `json:"analyses"`
	}
	if err := c.get(ctx, "/api/analysis/list/all", &resp); err != nil {
		return nil, err
	}
	return resp.Analyses, nil
}

// Deduction is one recorded tax deduction.
type Deduction struct {
	Section     string          `json:"section"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	IsEligible  bool            `json:"is_eligible"`
}

// DeductionSummary aggregates the user's deductions for one financial year.
type DeductionSummary struct {
	FinancialYear      string          `json:"financial_year"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	EligibleDeductions decimal.Decimal `json:"eligible_deductions"`
	Deductions         []Deduction     `json:"deductions"`
}

// DeductionsSummary fetches the tax-deduction summary for a financial year.
func (c *Client) DeductionsSummary(ctx context.Context, financialYear string) (DeductionSummary, error) {
	path := "/api/tax/deductions/summary"
	if financialYear != "" {
		path += "?financial_year=" + url.QueryEscape(financialYear)
	}
	var summary DeductionSummary
	if err := c.get(ctx, path, &summary); err != nil {
		return DeductionSummary{}, err
	}
	return summary, nil
}
