// Package linkflow is the boundary to the account-aggregation provider's
// hosted authorization UI. The application hands over a linking token and
// gets back either a success payload (public token plus institution and
// account metadata) or nothing at all when the user walks away.
package linkflow

import (
	"context"
	"fmt"
)

// Institution is one selectable financial provider.
type Institution struct {
	ID   string
	Name string
}

// AuthorizedAccount is one account the user approved during authorization.
type AuthorizedAccount struct {
	ID   string
	Name string
}

// Result is the success payload of one authorization run. The public token
// is single-use; the backend exchanges it for a durable credential.
type Result struct {
	PublicToken     string
	InstitutionID   string
	InstitutionName string
	Accounts        []AuthorizedAccount
}

// Provider abstracts the hosted flow. Ready reports whether the flow can be
// opened at all; Institutions backs the selection step; Authorize runs the
// user's approval for one institution. Dismissal is signalled by the caller
// never invoking Authorize, not by an error.
type Provider interface {
	Ready() bool
	Institutions(query string) []Institution
	Authorize(ctx context.Context, linkToken string, inst Institution) (Result, error)
}

// ErrNotReady is returned when Authorize is called before the provider is
// usable.
var ErrNotReady = fmt.Errorf("linkflow: provider not ready")
