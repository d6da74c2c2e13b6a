package banking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ConnectionStatus describes the backend's view of the user's bank link.
// It is refreshed after every mutating operation; no component trusts a
// stale copy after a mutation it did not perform itself.
type ConnectionStatus struct {
	IsConnected     bool       `json:"is_connected"`
	IsDemoMode      bool       `json:"is_demo_mode"`
	InstitutionName string     `json:"institution_name"`
	LastSyncedAt    *time.Time `json:"last_sync"`
}

// Disconnected is the local reset state applied after a successful
// disconnect, without a round trip.
func Disconnected() ConnectionStatus {
	return ConnectionStatus{IsConnected: false, IsDemoMode: true}
}

// Balance is the defensively decoded account balance. Providers are not
// uniform: some return a bare number, others an object with current and
// available sub-fields. Missing values decode to zero.
type Balance struct {
	Amount   decimal.Decimal
	Currency string
}

func (b *Balance) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		b.Amount = decimal.Zero
		return nil
	}

	var scalar json.Number
	if err := json.Unmarshal(data, &scalar); err == nil {
		amt, err := decimal.NewFromString(scalar.String())
		if err != nil {
			return fmt.Errorf("decode balance %q: %w", scalar.String(), err)
		}
		b.Amount = amt
		return nil
	}

	var obj struct {
		Current   *json.Number `json:"current"`
		Available *json.Number `json:"available"`
		Currency  string       `json:"currency"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decode balance object: %w", err)
	}
	b.Currency = obj.Currency
	pick := obj.Current
	if pick == nil {
		pick = obj.Available
	}
	if pick == nil {
		b.Amount = decimal.Zero
		return nil
	}
	amt, err := decimal.NewFromString(pick.String())
	if err != nil {
		return fmt.Errorf("decode balance field %q: %w", pick.String(), err)
	}
	b.Amount = amt
	return nil
}

// BankAccount is a read-only projection of a linked account. Identity is
// positional within the last fetch; nothing is cached across sessions.
type BankAccount struct {
	Name        string  `json:"name"`
	AccountType string  `json:"type"`
	Balance     Balance `json:"balance"`
	Currency    string  `json:"currency"`
}

// CurrencyCode prefers the balance object's currency, then the account's,
// then USD.
func (a BankAccount) CurrencyCode() string {
	if a.Balance.Currency != "" {
		return a.Balance.Currency
	}
	if a.Currency != "" {
		return a.Currency
	}
	return "USD"
}

// Transaction is a read-only projection of one bank transaction. Amount is
// signed: negative is a debit. Date stays in server form; ordering is the
// server's.
type Transaction struct {
	Name   string          `json:"name"`
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// IsDebit reports whether the amount represents money going out.
func (t Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}
