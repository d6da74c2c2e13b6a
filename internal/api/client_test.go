package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nidhi-labs/nidhi/internal/banking"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, func() string { return "test-token" })
}

func TestBearerHeaderAttached(t *testing.T) {
	t.Parallel()
	var gotAuth string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"is_connected":false,"is_demo_mode":true}`))
	})
	_, err := c.Status(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer test-token", gotAuth)
}

func TestStatusConnected(t *testing.T) {
	t.Parallel()
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/banking/status", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"is_connected": true,
			"is_demo_mode": false,
			"institution_name": "State Bank",
			"last_sync": "2026-08-30T10:15:00Z"
		}`))
	})
	status, err := c.Status(context.Background())
	require.NoError(t, err)
	require.True(t, status.IsConnected)
	require.False(t, status.IsDemoMode)
	require.Equal(t, "State Bank", status.InstitutionName)
	require.NotNil(t, status.LastSyncedAt)
	require.Equal(t, 2026, status.LastSyncedAt.Year())
}

func TestCreateLinkSessionVariants(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		body string
		want banking.LinkOutcomeKind
	}{
		{"real session", `{"link_token":"link-sandbox-xyz","is_demo":false}`, banking.OutcomeRealSession},
		{"demo with error", `{"link_token":null,"is_demo":true,"error":"missing credentials"}`, banking.OutcomeDemoWithError},
		{"clean demo", `{"link_token":null,"is_demo":true}`, banking.OutcomeDemoClean},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := tc.body
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				_, _ = w.Write([]byte(body))
			})
			out, err := c.CreateLinkSession(context.Background())
			require.NoError(t, err)
			require.Equal(t, tc.want, out.Kind)
		})
	}
}

func TestCreateLinkSessionMalformed(t *testing.T) {
	t.Parallel()
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	_, err := c.CreateLinkSession(context.Background())
	require.Error(t, err)
}

func TestLinkBankServerError(t *testing.T) {
	t.Parallel()
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"token exchange failed"}`))
	})
	_, err := c.LinkBank(context.Background(), LinkBankRequest{PublicToken: "public-sandbox-1"})
	require.Error(t, err)
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Contains(t, apiErr.Message, "token exchange failed")
}

func TestAccountsBalanceShapes(t *testing.T) {
	t.Parallel()
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"accounts":[
			{"name":"Business Checking","type":"depository","balance":{"current":500}},
			{"name":"Business Savings","type":"depository","balance":500},
			{"name":"Legacy","type":"depository","balance":{}}
		]}`))
	})
	accounts, err := c.Accounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	require.Equal(t, "500", accounts[0].Balance.Amount.String())
	require.Equal(t, "500", accounts[1].Balance.Amount.String())
	require.True(t, accounts[2].Balance.Amount.IsZero())
}

func TestTransactionsOrderPreserved(t *testing.T) {
	t.Parallel()
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"transactions":[
			{"name":"Customer Payment","date":"2026-08-31","amount":50000},
			{"name":"Office Rent","date":"2026-08-30","amount":-25000}
		]}`))
	})
	txs, err := c.Transactions(context.Background())
	require.NoError(t, err)
	require.Len(t, txs, 2)
	require.Equal(t, "Customer Payment", txs[0].Name)
	require.True(t, txs[1].IsDebit())
}

func TestDisconnect(t *testing.T) {
	t.Parallel()
	var called bool
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Equal(t, "/api/banking/disconnect", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"Bank account disconnected successfully"}`))
	})
	require.NoError(t, c.Disconnect(context.Background()))
	require.True(t, called)
}

func TestLoginDecodesCredentials(t *testing.T) {
	t.Parallel()
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"access_token":"tok-1","user":{"email":"a@b.c","company_name":"Acme Traders","industry":"retail"}}`))
	})
	creds, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok-1", creds.AccessToken)
	require.Equal(t, "Acme Traders", creds.User.CompanyName)
}

func TestRegisterSendsProfileAndDecodesCredentials(t *testing.T) {
	t.Parallel()
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		var body struct {
			Email       string `json:"email"`
			Password    string `json:"password"`
			CompanyName string `json:"company_name"`
			Industry    string `json:"industry"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "new@acme.test", body.Email)
		require.Equal(t, "Acme Traders", body.CompanyName)
		require.Equal(t, "retail", body.Industry)
		_, _ = w.Write([]byte(`{"access_token":"tok-2","user":{"email":"new@acme.test","company_name":"Acme Traders","industry":"retail"}}`))
	})
	creds, err := c.Register(context.Background(), "new@acme.test", "pw", "Acme Traders", "retail")
	require.NoError(t, err)
	require.Equal(t, "tok-2", creds.AccessToken)
	require.Equal(t, "retail", creds.User.Industry)
}

func TestErrorMessageFallsBackToMessageField(t *testing.T) {
	t.Parallel()
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream","message":"aggregation provider unavailable"}`))
	})
	_, err := c.Accounts(context.Background())
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "aggregation provider unavailable", apiErr.Message)
}
