package api

import (
	"context"

	"github.com/nidhi-labs/nidhi/internal/banking"
)

// Status reports whether a bank connection exists and in what mode.
func (c *Client) Status(ctx context.Context) (banking.ConnectionStatus, error) {
	var status banking.ConnectionStatus
	if err := c.get(ctx, "/api/banking/status", &status); err != nil {
		return banking.ConnectionStatus{}, err
	}
	return status, nil
}

// CreateLinkSession asks the backend for a short-lived linking token and
// classifies the polymorphic answer into a tagged outcome.
func (c *Client) CreateLinkSession(ctx context.Context) (banking.LinkOutcome, error) {
	var resp struct {
		LinkToken string `json:"link_token"`
		IsDemo    bool   `json:"is_demo"`
		Error     string `json:"error"`
	}
	if err := c.post(ctx, "/api/banking/create-link-token", nil, &resp); err != nil {
		return banking.LinkOutcome{}, err
	}
	return banking.ClassifyLinkResponse(resp.LinkToken, resp.IsDemo, resp.Error)
}

// LinkedAccount is the slim account shape the authorization flow hands back
// for the link-bank exchange.
type LinkedAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LinkBankRequest carries the authorization flow's success payload to the
// backend for the durable token exchange.
type LinkBankRequest struct {
	PublicToken     string          `json:"public_token"`
	InstitutionID   string          `json:"institution_id,omitempty"`
	InstitutionName string          `json:"institution_name,omitempty"`
	Accounts        []LinkedAccount `json:"accounts"`
}

// LinkBankResult is the backend's confirmation of a persisted connection.
type LinkBankResult struct {
	Message         string `json:"message"`
	InstitutionName string `json:"institution_name"`
	AccountsCount   int    `json:"accounts_count"`
}

// LinkBank exchanges the public token for a durable connection.
func (c *Client) LinkBank(ctx context.Context, req LinkBankRequest) (LinkBankResult, error) {
	var res LinkBankResult
	if err := c.post(ctx, "/api/banking/link-bank", req, &res); err != nil {
		return LinkBankResult{}, err
	}
	return res, nil
}

// Accounts fetches the connected institution's accounts. In demo mode the
// backend serves synthetic data from the same endpoint.
func (c *Client) Accounts(ctx context.Context) ([]banking.BankAccount, error) {
	var resp struct {
		Accounts []banking.BankAccount `json:"accounts"`
	}
	if err := c.get(ctx, "/api/banking/accounts", &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

// Transactions fetches recent transactions in server-provided order.
func (c *Client) Transactions(ctx context.Context) ([]banking.Transaction, error) {
	var resp struct {
		Transactions []banking.Transaction `json:"transactions"`
	}
	if err := c.get(ctx, "/api/banking/transactions", &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

// Disconnect tears down the persisted connection.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.post(ctx, "/api/banking/disconnect", nil, nil)
}
